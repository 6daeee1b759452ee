package hotelzify

import "encoding/json"

// ChainHotelImage is one catalog image record.
type ChainHotelImage struct {
	CDNImageURL string `json:"cdnImageUrl"`
}

// ChainHotel is one entry of the chain-hotels catalog. The catalog is used
// as an image/rating enrichment source and for hotel-name lookup.
type ChainHotel struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Country        string            `json:"country"`
	Address        string            `json:"address"`
	Rating         float64           `json:"rating"`
	HotelHighlight string            `json:"hotelHighlight"`
	Images         []ChainHotelImage `json:"HotelImages"`
}

type chainResponse struct {
	Status int `json:"status"`
	Data   struct {
		Chain struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"chain"`
		Hotels []ChainHotel `json:"hotels"`
	} `json:"data"`
}

// SearchLocation is the address block of a search hit.
type SearchLocation struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// SearchHotel is one hit from the relevance-ranked hotel search.
type SearchHotel struct {
	HotelID       int64          `json:"hotel_id"`
	HotelName     string         `json:"hotel_name"`
	Rating        float64        `json:"rating"`
	Location      SearchLocation `json:"location"`
	AmenitiesText string         `json:"amenities_text"`
	SearchScore   float64        `json:"search_score"`
}

type searchRequest struct {
	Query   string `json:"query"`
	ChainID string `json:"chain_id"`
	K       int    `json:"k"`
}

type searchResponse struct {
	Hotels       []SearchHotel `json:"hotels"`
	TotalResults int           `json:"total_results"`
	Query        string        `json:"query"`
}

// RoomPricing is one upstream rate plan for a room.
type RoomPricing struct {
	TotalPriceForEntireStay     float64 `json:"totalPriceForEntireStay"`
	RoomPricePerNight           float64 `json:"roomPricePerNight"`
	OriginalPriceBeforeDiscount float64 `json:"originalPriceBeforeDiscount"`
	DisplayRatePlanName         string  `json:"useOnlyForDisplayRatePlanName"`
	RatePlanName                string  `json:"ratePlanName"`
}

// RoomData is one available room type as returned by the availability
// endpoint.
type RoomData struct {
	RoomName       string        `json:"roomName"`
	ID             int64         `json:"id"`
	MaxAdultCount  int           `json:"maxAdultCount"`
	MaxChildCount  int           `json:"maxChildCount"`
	MaxInfantCount int           `json:"maxInfantCount"`
	Currency       string        `json:"currency"`
	Amenities      []string      `json:"amenities"`
	Images         []string      `json:"images"`
	Pricing        []RoomPricing `json:"pricing"`
	AvailableRooms int           `json:"availableRooms"`
	Nights         int           `json:"nights"`
}

// AlternateDates is the hint record the availability endpoint returns in
// place of a room list when nothing is available for the requested dates.
type AlternateDates struct {
	NextAvailablePastCheckInDate   string `json:"nextAvailablePastCheckInDate"`
	NextAvailableFutureCheckInDate string `json:"nextAvailableFutureCheckInDate"`
}

// Availability is the discriminated result of CheckAvailability. Exactly
// one of the two slices is populated; the shape is decided once, at decode
// time, by the presence of roomName on the first element.
type Availability struct {
	Rooms      []RoomData
	Alternates []AlternateDates
}

// Available reports whether any room was returned.
func (a *Availability) Available() bool {
	return len(a.Rooms) > 0
}

type availabilityRequest struct {
	HotelID      string `json:"hotelId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Infants      int    `json:"infants"`
	TotalGuest   int    `json:"totalGuest"`
}

type availabilityResponse struct {
	Status int               `json:"status"`
	Data   []json.RawMessage `json:"data"`
}

// AvailabilityParams are the inputs of CheckAvailability. TotalGuest is
// derived by the client as adults+children+infants.
type AvailabilityParams struct {
	HotelID      string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Children     int
	Infants      int
}

// HotelRoomSelection names the room and rate plan being booked.
type HotelRoomSelection struct {
	Name         string `json:"name"`
	RatePlanName string `json:"ratePlanName"`
}

// BookingPayload is the request body of the authorised booking endpoint.
// TotalGuests excludes infants.
type BookingPayload struct {
	HotelID            string               `json:"hotelId"`
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	DialCode           string               `json:"dialCode"`
	Mobile             string               `json:"mobile"`
	CheckInDate        string               `json:"checkInDate"`
	CheckOutDate       string               `json:"checkOutDate"`
	Adults             int                  `json:"adults"`
	Children           int                  `json:"children"`
	Infants            int                  `json:"infants"`
	TotalGuests        int                  `json:"totalGuests"`
	ApplyExtraDiscount bool                 `json:"applyExtraDiscount"`
	HotelRooms         []HotelRoomSelection `json:"hotelRooms"`
}

type bookingResponse struct {
	Message   string          `json:"message"`
	BookingID json.RawMessage `json:"bookingId"`
	Data      map[string]any  `json:"data"`
}

// BookingResult is the decoded outcome of a successful booking.
type BookingResult struct {
	BookingID string
	Data      map[string]any
}
