// Package schedule implements the slot grid, the free/reserved
// classification and the two-click range selection protocol shared by
// every booking view. All interval arithmetic is half-open: a slot or
// reservation [start, end) includes its start and excludes its end, so
// touching boundaries never conflict.
package schedule

import (
	"fmt"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/types"
)

// TimeSlot is one cell of the day grid. Start and End are minutes since
// local midnight; for a window that wraps past midnight they keep growing
// beyond 1440 so the grid stays monotonic, and Label renders them mod 1440.
type TimeSlot struct {
	Start    int
	End      int
	Label    string
	Free     bool
	Selected bool
}

// Width returns the slot length in minutes
func (s TimeSlot) Width() int {
	return s.End - s.Start
}

// normalized returns the slot bounds folded onto a single calendar day,
// comparable against reservation minutes that are always in 0..1440.
func (s TimeSlot) normalized() (int, int) {
	start := s.Start % domain.MinutesPerDay
	return start, start + s.Width()
}

func slotLabel(start, end int) string {
	return fmt.Sprintf("%s - %s", types.MinuteOfDay(start), types.MinuteOfDay(end))
}
