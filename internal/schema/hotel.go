// Package schema contains the structured-content contracts shared between
// the tool handlers, the booking gateway and the widget templates. These
// shapes are the rendering contract; changing a JSON key here breaks the
// widgets.
package schema

// Location is the address block of a hotel.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// HotelSummary is one merged search result: a search hit joined with the
// chain catalog entry of the same hotel ID.
type HotelSummary struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	Location      Location `json:"location"`
	AmenitiesText string   `json:"amenitiesText"`
	SearchScore   float64  `json:"searchScore"`
	// Images is empty (never null) when the catalog has no entry for the
	// hotel or every image URL was filtered out.
	Images []string `json:"images"`
}
