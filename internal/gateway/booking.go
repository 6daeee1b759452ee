package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/normalize"
	"github.com/hotelzify/concierge/internal/schema"
)

// createBooking validates the widget's booking form, decomposes the
// phone number and forwards the booking upstream. Upstream rejections
// keep their status code and message; transport failures map to 502.
func (g *Gateway) createBooking(c *gin.Context) {
	var in schema.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, schema.BookingFailure{Error: "invalid request body"})
		return
	}
	if err := validateBooking(in); err != nil {
		c.JSON(http.StatusBadRequest, schema.BookingFailure{Error: err.Error()})
		return
	}

	dialCode, mobile := normalize.ParsePhone(in.Phone)
	payload := hotelzify.BookingPayload{
		HotelID:      in.HotelID,
		Name:         in.Name,
		Email:        in.Email,
		DialCode:     dialCode,
		Mobile:       mobile,
		CheckInDate:  in.CheckInDate,
		CheckOutDate: in.CheckOutDate,
		Adults:       in.Adults,
		Children:     in.Children,
		Infants:      in.Infants,
		// Infants share existing bedding, so they do not count toward
		// the billed guest total.
		TotalGuests: in.Adults + in.Children,
		HotelRooms: []hotelzify.HotelRoomSelection{
			{Name: in.RoomName, RatePlanName: in.RatePlanName},
		},
	}

	result, err := g.client.CreateBooking(c.Request.Context(), payload)
	if err != nil {
		var be *hotelzify.BookingError
		if errors.As(err, &be) {
			g.log.Warn("booking rejected",
				zap.String("request_id", c.GetString("request_id")),
				zap.String("hotel_id", in.HotelID),
				zap.Int("upstream_status", be.Status))
			c.JSON(be.Status, schema.BookingFailure{Error: be.Error()})
			return
		}

		g.log.Error("booking failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("hotel_id", in.HotelID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, schema.BookingFailure{Error: "booking service unavailable"})
		return
	}

	g.log.Info("booking created",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("hotel_id", in.HotelID),
		zap.String("booking_id", result.BookingID))

	c.JSON(http.StatusOK, schema.BookingConfirmation{
		Success:   true,
		BookingID: result.BookingID,
		Data:      result.Data,
	})
}

func validateBooking(in schema.BookingInput) error {
	missing := make([]string, 0, 4)
	for _, f := range []struct{ name, value string }{
		{"hotelId", in.HotelID},
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"roomName", in.RoomName},
		{"ratePlanName", in.RatePlanName},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if in.Adults < 1 {
		return fmt.Errorf("at least one adult guest is required")
	}
	if in.Children < 0 || in.Infants < 0 {
		return fmt.Errorf("guest counts cannot be negative")
	}
	if _, err := normalize.Nights(in.CheckInDate, in.CheckOutDate); err != nil {
		return err
	}
	return nil
}
