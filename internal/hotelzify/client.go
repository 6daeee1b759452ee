// Package hotelzify is the typed client for the Hotelzify hotel-management
// API: chain catalog lookup, hotel search, room availability and booking
// creation. Every call is a single round trip; there are no retries and no
// caching.
package hotelzify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	chainHotelsPath  = "/hotel/v2/hotel/chain-hotels-lite-v2"
	availabilityPath = "/hotel/v1/hotel/chatbot-availability"
	bookingPath      = "/hotel/authorised/v1/bookings/chatbot"
	searchPath       = "/search/hotels"
)

// Options configures a Client. APIToken is required for CreateBooking; it
// is never defaulted.
type Options struct {
	HotelAPIBase  string
	SearchAPIBase string
	ChainID       string
	ChainName     string
	APIToken      string
	Timeout       time.Duration
}

// Client calls the four upstream endpoints.
type Client struct {
	opts Options
	http *http.Client
	log  *zap.Logger
}

// NewClient builds a Client. log must not be nil.
func NewClient(opts Options, log *zap.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		opts: opts,
		http: &http.Client{Timeout: timeout},
		log:  log.Named("hotelzify"),
	}
}

// ChainID returns the configured chain identifier.
func (c *Client) ChainID() string { return c.opts.ChainID }

// ChainHotels fetches the chain catalog used for image, rating and
// hotel-name enrichment.
func (c *Client) ChainHotels(ctx context.Context) (*ChainCatalog, error) {
	u := c.opts.HotelAPIBase + chainHotelsPath + "?chainId=" + url.QueryEscape(c.opts.ChainID)

	var decoded chainResponse
	if err := c.getJSON(ctx, u, &decoded); err != nil {
		return nil, fmt.Errorf("chain hotels: %w", err)
	}

	name := decoded.Data.Chain.Name
	if name == "" {
		name = c.opts.ChainName
	}
	return NewChainCatalog(name, decoded.Data.Hotels), nil
}

// ChainHotelsBestEffort is the degrading variant of ChainHotels: catalog
// enrichment is non-essential, so any failure yields an empty catalog with
// the configured chain name instead of an error.
func (c *Client) ChainHotelsBestEffort(ctx context.Context) *ChainCatalog {
	catalog, err := c.ChainHotels(ctx)
	if err != nil {
		c.log.Warn("chain catalog unavailable, continuing without enrichment",
			zap.String("chainId", c.opts.ChainID),
			zap.Error(err))
		return NewChainCatalog(c.opts.ChainName, nil)
	}
	return catalog
}

// SearchHotels runs the relevance-ranked hotel search. k bounds the result
// count. Unlike the catalog fetch, failures here are fatal to the call:
// without search hits there is nothing to show.
func (c *Client) SearchHotels(ctx context.Context, query string, k int) ([]SearchHotel, error) {
	body := searchRequest{Query: query, ChainID: c.opts.ChainID, K: k}

	var decoded searchResponse
	if err := c.postJSON(ctx, c.opts.SearchAPIBase+searchPath, body, &decoded); err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	return decoded.Hotels, nil
}

// CheckAvailability queries rooms and pricing for a hotel and date range.
// The upstream answers with either a room list or alternate-date hints;
// the returned Availability has the shape decided already.
func (c *Client) CheckAvailability(ctx context.Context, p AvailabilityParams) (*Availability, error) {
	body := availabilityRequest{
		HotelID:      p.HotelID,
		CheckInDate:  p.CheckInDate,
		CheckOutDate: p.CheckOutDate,
		Adults:       p.Adults,
		Children:     p.Children,
		Infants:      p.Infants,
		TotalGuest:   p.Adults + p.Children + p.Infants,
	}

	var decoded availabilityResponse
	if err := c.postJSON(ctx, c.opts.HotelAPIBase+availabilityPath, body, &decoded); err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	return decodeAvailability(decoded.Data)
}

// CreateBooking submits a booking. A non-2xx response is a definitive
// booking failure and surfaces as *BookingError carrying the upstream
// message verbatim.
func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (*BookingResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("create booking: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.opts.HotelAPIBase+bookingPath, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("create booking: read response: %w", err)
	}

	var decoded bookingResponse
	// A malformed body on a failed request must not mask the failure, so
	// the decode error is only authoritative on 2xx.
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &BookingError{Status: resp.StatusCode, Message: decoded.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("create booking: decode response: %w", decodeErr)
	}

	result := &BookingResult{Data: decoded.Data}
	if id, ok := decoded.Data["bookingId"]; ok {
		result.BookingID = stringifyID(id)
	}
	if result.BookingID == "" && len(decoded.BookingID) > 0 {
		var top any
		if err := json.Unmarshal(decoded.BookingID, &top); err == nil {
			result.BookingID = stringifyID(top)
		}
	}
	return result, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.opts.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIToken)
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *Client) postJSON(ctx context.Context, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// stringifyID renders a JSON booking ID (string or number) as a string.
func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}
