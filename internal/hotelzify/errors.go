package hotelzify

// BookingError is a definitive booking rejection from the upstream. The
// message is surfaced to the end user verbatim when present.
type BookingError struct {
	Status  int
	Message string
}

func (e *BookingError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Booking failed"
}
