package schema

// BookingInput is the request body of POST /api/book, submitted by the
// widget booking form. Phone is a single free-text string; the gateway
// decomposes it into dial code and mobile number before forwarding.
type BookingInput struct {
	HotelID      string `json:"hotelId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Infants      int    `json:"infants"`
	RoomName     string `json:"roomName"`
	RatePlanName string `json:"ratePlanName"`
}

// BookingConfirmation is the success body of POST /api/book.
type BookingConfirmation struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Data      any    `json:"data,omitempty"`
}

// BookingFailure is the error body of POST /api/book; the HTTP status of
// the response mirrors the upstream status when the upstream rejected the
// booking.
type BookingFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
