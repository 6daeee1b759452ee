package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/normalize"
	"github.com/hotelzify/concierge/internal/schema"
)

// CheckAvailabilityTool queries live room inventory for a hotel and stay
// window and shapes it into bookable room options.
type CheckAvailabilityTool struct {
	client *hotelzify.Client
	log    *zap.Logger
}

func NewCheckAvailabilityTool(client *hotelzify.Client, log *zap.Logger) *CheckAvailabilityTool {
	return &CheckAvailabilityTool{client: client, log: log.Named("check_room_availability")}
}

func (t *CheckAvailabilityTool) Name() ToolName { return ToolCheckAvailability }

func (t *CheckAvailabilityTool) Description() string {
	return "Check which rooms are available at a specific hotel for a stay window and " +
		"party size. Returns room types with rate plans, prices and discounts."
}

func (t *CheckAvailabilityTool) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"hotelId": {
				Type:        "string",
				Description: "Hotel ID from a previous search_hotels result.",
			},
			"hotelName": {
				Type:        "string",
				Description: "Hotel name for display. Resolved from the chain catalog when omitted.",
			},
			"checkInDate": {
				Type:        "string",
				Description: "Check-in date in YYYY-MM-DD format.",
			},
			"checkOutDate": {
				Type:        "string",
				Description: "Check-out date in YYYY-MM-DD format. Must be after the check-in date.",
			},
			"adults": {
				Type:        "integer",
				Description: "Number of adult guests. Defaults to 2.",
			},
			"children": {
				Type:        "integer",
				Description: "Number of children. Defaults to 0.",
			},
			"infants": {
				Type:        "integer",
				Description: "Number of infants. Defaults to 0.",
			},
		},
		Required: []string{"hotelId", "checkInDate", "checkOutDate"},
	}
}

func (t *CheckAvailabilityTool) Execute(ctx context.Context, args map[string]any) Result {
	params := hotelzify.AvailabilityParams{
		HotelID:      stringArg(args, "hotelId"),
		CheckInDate:  stringArg(args, "checkInDate"),
		CheckOutDate: stringArg(args, "checkOutDate"),
		Adults:       intArg(args, "adults", 2),
		Children:     intArg(args, "children", 0),
		Infants:      intArg(args, "infants", 0),
	}

	nights, err := validateStay(params)
	if err != nil {
		return availabilityFailure(params, err)
	}

	availability, err := t.client.CheckAvailability(ctx, params)
	if err != nil {
		t.log.Warn("availability check failed",
			zap.String("hotel_id", params.HotelID), zap.Error(err))
		return availabilityFailure(params, err)
	}

	hotelName := stringArg(args, "hotelName")
	if hotelName == "" {
		hotelName = t.resolveHotelName(ctx, params.HotelID)
	}

	if len(availability.Alternates) > 0 {
		t.log.Info("no rooms for requested dates, upstream suggested alternates",
			zap.String("hotel_id", params.HotelID),
			zap.Int("alternates", len(availability.Alternates)))
	}

	result := schema.AvailabilityResult{
		HotelID:      params.HotelID,
		HotelName:    hotelName,
		CheckInDate:  params.CheckInDate,
		CheckOutDate: params.CheckOutDate,
		Guests: schema.GuestCounts{
			Adults:   params.Adults,
			Children: params.Children,
			Infants:  params.Infants,
		},
		Rooms:     normalize.ShapeRooms(availability.Rooms, nights),
		Nights:    nights,
		Available: availability.Available(),
		Status:    schema.StatusLoaded,
	}

	text := fmt.Sprintf("%d room types available from %s to %s.",
		len(result.Rooms), params.CheckInDate, params.CheckOutDate)
	if !result.Available {
		text = fmt.Sprintf("No rooms available from %s to %s.",
			params.CheckInDate, params.CheckOutDate)
	}
	return Result{Text: text, Structured: result}
}

// resolveHotelName looks the hotel up in the chain catalog. Purely
// decorative, so a failed catalog fetch leaves the name empty.
func (t *CheckAvailabilityTool) resolveHotelName(ctx context.Context, hotelID string) string {
	catalog := t.client.ChainHotelsBestEffort(ctx)
	if entry, ok := catalog.ByStringID(hotelID); ok {
		return entry.Name
	}
	return ""
}

func validateStay(p hotelzify.AvailabilityParams) (int, error) {
	if p.HotelID == "" {
		return 0, fmt.Errorf("hotelId is required")
	}
	if p.Adults < 1 {
		return 0, fmt.Errorf("at least one adult guest is required")
	}
	if p.Children < 0 || p.Infants < 0 {
		return 0, fmt.Errorf("guest counts cannot be negative")
	}
	return normalize.Nights(p.CheckInDate, p.CheckOutDate)
}

func availabilityFailure(p hotelzify.AvailabilityParams, err error) Result {
	result := schema.AvailabilityResult{
		HotelID:      p.HotelID,
		CheckInDate:  p.CheckInDate,
		CheckOutDate: p.CheckOutDate,
		Guests: schema.GuestCounts{
			Adults:   p.Adults,
			Children: p.Children,
			Infants:  p.Infants,
		},
		Rooms:     []schema.RoomOption{},
		Available: false,
		Status:    schema.StatusFailed,
		Error:     true,
	}
	return Result{Text: "Error checking availability: " + err.Error(), Structured: result}
}
