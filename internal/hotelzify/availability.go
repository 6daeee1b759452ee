package hotelzify

import (
	"encoding/json"
	"fmt"
)

// decodeAvailability discriminates the two shapes the availability
// endpoint can return. Elements carrying a roomName are rooms; anything
// else is treated as alternate-date hints. An empty array means no rooms.
func decodeAvailability(data []json.RawMessage) (*Availability, error) {
	if len(data) == 0 {
		return &Availability{}, nil
	}

	var probe struct {
		RoomName *string `json:"roomName"`
	}
	if err := json.Unmarshal(data[0], &probe); err != nil {
		return nil, fmt.Errorf("check availability: decode response: %w", err)
	}

	if probe.RoomName == nil {
		alternates := make([]AlternateDates, 0, len(data))
		for _, raw := range data {
			var alt AlternateDates
			if err := json.Unmarshal(raw, &alt); err != nil {
				return nil, fmt.Errorf("check availability: decode alternate dates: %w", err)
			}
			alternates = append(alternates, alt)
		}
		return &Availability{Alternates: alternates}, nil
	}

	rooms := make([]RoomData, 0, len(data))
	for _, raw := range data {
		var room RoomData
		if err := json.Unmarshal(raw, &room); err != nil {
			return nil, fmt.Errorf("check availability: decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return &Availability{Rooms: rooms}, nil
}
