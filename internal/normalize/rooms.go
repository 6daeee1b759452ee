package normalize

import (
	"fmt"
	"math"
	"time"

	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/schema"
)

// DateLayout is the wire format of all stay dates: ISO calendar dates
// with no timezone component.
const DateLayout = "2006-01-02"

// Nights computes the stay length from two calendar dates. A stay must be
// at least one night; checkOut <= checkIn is an input error, not an
// upstream concern.
func Nights(checkInDate, checkOutDate string) (int, error) {
	checkIn, err := time.Parse(DateLayout, checkInDate)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date %q: expected YYYY-MM-DD", checkInDate)
	}
	checkOut, err := time.Parse(DateLayout, checkOutDate)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date %q: expected YYYY-MM-DD", checkOutDate)
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return 0, fmt.Errorf("check-out date must be after check-in date")
	}
	return nights, nil
}

// ShapeRooms converts upstream room records into the public RoomOption
// schema. nights is the computed stay length; it backfills records where
// the upstream omitted the night count.
func ShapeRooms(rooms []hotelzify.RoomData, nights int) []schema.RoomOption {
	shaped := make([]schema.RoomOption, 0, len(rooms))
	for _, room := range rooms {
		roomNights := room.Nights
		if roomNights <= 0 {
			roomNights = nights
		}

		pricing := make([]schema.RatePlan, 0, len(room.Pricing))
		for _, p := range room.Pricing {
			pricing = append(pricing, schema.RatePlan{
				TotalPriceForEntireStay: p.TotalPriceForEntireStay,
				PricePerNight:           p.RoomPricePerNight,
				OriginalPrice:           p.OriginalPriceBeforeDiscount,
				DisplayName:             p.DisplayRatePlanName,
				RatePlanCode:            p.RatePlanName,
				DiscountPercent:         DiscountPercent(p.OriginalPriceBeforeDiscount, p.TotalPriceForEntireStay),
			})
		}

		shaped = append(shaped, schema.RoomOption{
			RoomName: room.RoomName,
			ID:       room.ID,
			Capacity: schema.Capacity{
				MaxAdults:   room.MaxAdultCount,
				MaxChildren: room.MaxChildCount,
				MaxInfants:  room.MaxInfantCount,
			},
			Currency:       room.Currency,
			Amenities:      emptyIfNil(room.Amenities),
			Images:         emptyIfNil(room.Images),
			Pricing:        pricing,
			AvailableRooms: room.AvailableRooms,
			Nights:         roomNights,
		})
	}
	return shaped
}

// DiscountPercent is the rounded percentage saved against the original
// price, clamped to 0 when no discount applies.
func DiscountPercent(original, final float64) int {
	if original <= final || original <= 0 {
		return 0
	}
	return int(math.Round((original - final) / original * 100))
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
