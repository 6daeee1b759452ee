package gateway

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/config"
	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/schema"
	"github.com/hotelzify/concierge/internal/widgets"
)

func newTestGateway(t *testing.T, upstream http.Handler) *Gateway {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := hotelzify.NewClient(hotelzify.Options{
		HotelAPIBase:  srv.URL,
		SearchAPIBase: srv.URL,
		ChainID:       "1",
		ChainName:     "Sterling Resorts",
		APIToken:      "test-token",
		Timeout:       5 * time.Second,
	}, zap.NewNop())

	widgetReg, err := widgets.NewRegistry()
	require.NoError(t, err)

	mcpStub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return New(config.ServerConfig{AllowOrigins: []string{"*"}}, client, widgetReg, mcpStub, zap.NewNop())
}

func validBookingBody() map[string]any {
	return map[string]any{
		"hotelId":      "101",
		"name":         "Asha Rao",
		"email":        "asha@example.com",
		"phone":        "+91 98765-43210",
		"checkInDate":  "2026-09-01",
		"checkOutDate": "2026-09-03",
		"adults":       2,
		"children":     1,
		"infants":      1,
		"roomName":     "Premier Room",
		"ratePlanName": "EP",
	}
}

func postBooking(t *testing.T, g *Gateway, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	g.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateBooking_Success(t *testing.T) {
	var captured hotelzify.BookingPayload
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hotel/authorised/v1/bookings/chatbot", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"data": {"bookingId": 55001, "status": "CONFIRMED"}}`))
	})

	rec := postBooking(t, newTestGateway(t, upstream), validBookingBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var conf schema.BookingConfirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conf))
	assert.True(t, conf.Success)
	assert.Equal(t, "55001", conf.BookingID, "numeric booking IDs are stringified")

	assert.Equal(t, "+91", captured.DialCode)
	assert.Equal(t, "9876543210", captured.Mobile)
	assert.Equal(t, 3, captured.TotalGuests, "infants are excluded from the guest total")
	assert.False(t, captured.ApplyExtraDiscount)
	require.Len(t, captured.HotelRooms, 1)
	assert.Equal(t, "Premier Room", captured.HotelRooms[0].Name)
	assert.Equal(t, "EP", captured.HotelRooms[0].RatePlanName)
}

func TestCreateBooking_UpstreamRejection(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Room unavailable for selected dates"}`))
	})

	rec := postBooking(t, newTestGateway(t, upstream), validBookingBody())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "upstream status is preserved")
	var failure schema.BookingFailure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.False(t, failure.Success)
	assert.Equal(t, "Room unavailable for selected dates", failure.Error)
}

func TestCreateBooking_UpstreamRejectionWithoutMessage(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	})

	rec := postBooking(t, newTestGateway(t, upstream), validBookingBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var failure schema.BookingFailure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Equal(t, "Booking failed", failure.Error)
}

func TestCreateBooking_Validation(t *testing.T) {
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected upstream call")
	}))

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing name", mutate: func(b map[string]any) { b["name"] = "" }},
		{name: "missing room", mutate: func(b map[string]any) { delete(b, "roomName") }},
		{name: "zero adults", mutate: func(b map[string]any) { b["adults"] = 0 }},
		{name: "reversed dates", mutate: func(b map[string]any) { b["checkOutDate"] = "2026-08-30" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := validBookingBody()
			tc.mutate(body)

			rec := postBooking(t, g, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var failure schema.BookingFailure
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
			assert.False(t, failure.Success)
			assert.NotEmpty(t, failure.Error)
		})
	}
}

func TestCreateBooking_MalformedBody(t *testing.T) {
	g := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected upstream call")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	g.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
