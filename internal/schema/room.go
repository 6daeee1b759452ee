package schema

// Capacity is the guest limit of a room type.
type Capacity struct {
	MaxAdults   int `json:"maxAdults"`
	MaxChildren int `json:"maxChildren"`
	MaxInfants  int `json:"maxInfants"`
}

// RatePlan is one priced offer for a room type and date range.
// TotalPriceForEntireStay <= OriginalPrice unless no discount applies, in
// which case they are equal.
type RatePlan struct {
	TotalPriceForEntireStay float64 `json:"totalPriceForEntireStay"`
	PricePerNight           float64 `json:"pricePerNight"`
	OriginalPrice           float64 `json:"originalPrice"`
	DisplayName             string  `json:"displayName"`
	RatePlanCode            string  `json:"ratePlanCode"`
	// DiscountPercent is derived from OriginalPrice and
	// TotalPriceForEntireStay; 0 when no discount applies.
	DiscountPercent int `json:"discountPercent"`
}

// RoomOption is one available room type with its rate plans.
type RoomOption struct {
	RoomName       string     `json:"roomName"`
	ID             int64      `json:"id"`
	Capacity       Capacity   `json:"capacity"`
	Currency       string     `json:"currency"`
	Amenities      []string   `json:"amenities"`
	Images         []string   `json:"images"`
	Pricing        []RatePlan `json:"pricing"`
	AvailableRooms int        `json:"availableRooms"`
	Nights         int        `json:"nights"`
}
