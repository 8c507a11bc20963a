package schedule

import (
	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

// Generate builds the ordered slot grid covering [windowStart, windowEnd)
// in slotWidth steps. windowEnd may exceed 1440 for a window that wraps
// past midnight. Every slot starts free and unselected. If the window is
// not an exact multiple of slotWidth the final slot is truncated; a slot
// never ends past windowEnd.
//
// The grid is regenerated from scratch on every date or resource change
// rather than patched in place.
func Generate(windowStart, windowEnd, slotWidth int) ([]TimeSlot, error) {
	if slotWidth <= 0 {
		return nil, ErrInvalidSlotWidth
	}
	if windowStart < 0 || windowStart >= domain.MinutesPerDay || windowEnd <= windowStart {
		return nil, ErrInvalidWindow
	}
	// A window longer than a full day would make slots overlap themselves
	// once folded back onto the calendar day.
	if windowEnd-windowStart > domain.MinutesPerDay {
		return nil, ErrInvalidWindow
	}

	slots := make([]TimeSlot, 0, (windowEnd-windowStart+slotWidth-1)/slotWidth)
	for start := windowStart; start < windowEnd; start += slotWidth {
		end := start + slotWidth
		if end > windowEnd {
			end = windowEnd
		}
		slots = append(slots, TimeSlot{
			Start: start,
			End:   end,
			Label: slotLabel(start, end),
			Free:  true,
		})
	}
	return slots, nil
}
