package schema

// Status is the explicit completion state carried in every structured
// payload. Consumers must branch on this (or Error), never on the absence
// of a field.
type Status string

const (
	StatusLoaded Status = "loaded"
	StatusFailed Status = "failed"
)

// GuestCounts echoes the requested party size.
type GuestCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// SearchResult is the structured content of the search_hotels tool.
// Count is always populated, including for empty and failed searches.
type SearchResult struct {
	Query     string         `json:"query"`
	Hotels    []HotelSummary `json:"hotels"`
	Count     int            `json:"count"`
	ChainName string         `json:"chainName"`
	Status    Status         `json:"status"`
	Error     bool           `json:"error"`
}

// AvailabilityResult is the structured content of check_room_availability.
// Available is always populated, including for failed checks.
type AvailabilityResult struct {
	HotelID      string       `json:"hotelId"`
	HotelName    string       `json:"hotelName"`
	CheckInDate  string       `json:"checkInDate"`
	CheckOutDate string       `json:"checkOutDate"`
	Guests       GuestCounts  `json:"guests"`
	Rooms        []RoomOption `json:"rooms"`
	Nights       int          `json:"nights"`
	Available    bool         `json:"available"`
	Status       Status       `json:"status"`
	Error        bool         `json:"error"`
}

// FAQResult is the structured content of the query_hotel_info tool.
type FAQResult struct {
	Query   string `json:"query"`
	Matched bool   `json:"matched"`
	Topic   string `json:"topic,omitempty"`
	Answer  string `json:"answer"`
	Status  Status `json:"status"`
	Error   bool   `json:"error"`
}
