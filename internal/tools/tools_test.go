package tools

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/hotelzify"
)

// newTestClient points a real upstream client at an httptest server
// serving all four endpoints.
func newTestClient(t *testing.T, handler http.Handler) *hotelzify.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return hotelzify.NewClient(hotelzify.Options{
		HotelAPIBase:  srv.URL,
		SearchAPIBase: srv.URL,
		ChainID:       "1",
		ChainName:     "Sterling Resorts",
		Timeout:       5 * time.Second,
	}, zap.NewNop())
}

const chainBody = `{
	"status": 200,
	"data": {
		"chain": {"id": 1, "name": "Sterling Resorts"},
		"hotels": [
			{
				"id": 101,
				"name": "Sterling Goa Varca",
				"city": "Varca",
				"state": "Goa",
				"rating": 4.4,
				"HotelImages": [
					{"cdnImageUrl": "https://cdn.example.com/goa.jpg"},
					{"cdnImageUrl": "https://cdn.example.com/x/chatbot-converted-images"}
				]
			},
			{"id": 102, "name": "Sterling Ooty Elk Hill", "city": "Ooty", "state": "Tamil Nadu", "rating": 4.2}
		]
	}
}`

const searchBody = `{
	"hotels": [
		{
			"hotel_id": 101,
			"hotel_name": "Sterling Goa Varca",
			"rating": 0,
			"location": {"address": "Varca Beach", "city": "Varca", "state": "Goa"},
			"amenities_text": "pool, beach access, spa",
			"search_score": 0.92
		}
	],
	"total_results": 1,
	"query": "beach resort"
}`
