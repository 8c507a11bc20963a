package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

func newTestSelector(t *testing.T, reservations ...*domain.Reservation) *Selector {
	t.Helper()
	slots, err := Generate(9*60, 12*60, 15)
	require.NoError(t, err)
	MarkResource(slots, reservations, 1)
	return NewSelector(slots)
}

func slotIndex(t *testing.T, s *Selector, startMinute int) int {
	t.Helper()
	for i, slot := range s.Slots() {
		if slot.Start == startMinute {
			return i
		}
	}
	t.Fatalf("no slot starting at %d", startMinute)
	return -1
}

func TestSelector_TwoClickRange(t *testing.T) {
	s := newTestSelector(t)

	require.NoError(t, s.Click(slotIndex(t, s, 9*60)))
	assert.False(t, s.Complete())

	require.NoError(t, s.Click(slotIndex(t, s, 10*60)))
	require.True(t, s.Complete())

	start, end, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, 9*60, start)
	assert.Equal(t, 10*60+15, end)

	for _, slot := range s.Slots() {
		inRange := slot.Start >= start && slot.End <= end
		assert.Equal(t, inRange, slot.Selected, "slot %s", slot.Label)
	}
}

func TestSelector_ReservedClickIgnored(t *testing.T) {
	s := newTestSelector(t, reservationOn(1, 10*60, 10*60+30))

	require.NoError(t, s.Click(slotIndex(t, s, 10*60)))
	_, started := s.Start()
	assert.False(t, started, "click on a reserved slot must not start a selection")
}

func TestSelector_RangeCollisionLeavesSelectionUnchanged(t *testing.T) {
	// Existing reservation 10:30-10:45; start 10:00-10:15, end 11:00-11:15.
	s := newTestSelector(t, reservationOn(1, 10*60+30, 10*60+45))

	require.NoError(t, s.Click(slotIndex(t, s, 10*60)))
	err := s.Click(slotIndex(t, s, 11*60))
	assert.ErrorIs(t, err, ErrRangeCollision)

	start, ok := s.Start()
	require.True(t, ok)
	assert.Equal(t, 10*60, start.Start, "selection stays {start: 10:00, end: nil}")
	assert.False(t, s.Complete())

	selected := 0
	for _, slot := range s.Slots() {
		if slot.Selected {
			selected++
		}
	}
	assert.Equal(t, 1, selected, "only the start slot stays marked")
}

func TestSelector_EarlierClickRestartsSelection(t *testing.T) {
	s := newTestSelector(t)

	require.NoError(t, s.Click(slotIndex(t, s, 10*60)))
	require.NoError(t, s.Click(slotIndex(t, s, 9*60+30)))

	start, ok := s.Start()
	require.True(t, ok)
	assert.Equal(t, 9*60+30, start.Start)
	assert.False(t, s.Complete())
}

func TestSelector_SameSlotClickRestartsSelection(t *testing.T) {
	s := newTestSelector(t)
	i := slotIndex(t, s, 10*60)

	require.NoError(t, s.Click(i))
	require.NoError(t, s.Click(i), "t.start <= s.start restarts, never errors")

	start, ok := s.Start()
	require.True(t, ok)
	assert.Equal(t, 10*60, start.Start)
}

func TestSelector_ClickAfterCompleteRestarts(t *testing.T) {
	s := newTestSelector(t)

	require.NoError(t, s.Click(slotIndex(t, s, 9*60)))
	require.NoError(t, s.Click(slotIndex(t, s, 9*60+45)))
	require.True(t, s.Complete())

	require.NoError(t, s.Click(slotIndex(t, s, 11*60)))
	assert.False(t, s.Complete())

	start, ok := s.Start()
	require.True(t, ok)
	assert.Equal(t, 11*60, start.Start)

	for _, slot := range s.Slots() {
		assert.Equal(t, slot.Start == 11*60, slot.Selected, "old range cleared, new start marked")
	}
}

func TestSelector_CompleteRangeNeverContainsReservedSlot(t *testing.T) {
	s := newTestSelector(t, reservationOn(1, 10*60, 10*60+15))

	for i := range s.Slots() {
		for j := range s.Slots() {
			s.Clear()
			_ = s.Click(i)
			_ = s.Click(j)
			if !s.Complete() {
				continue
			}
			start, end, _ := s.Range()
			for _, slot := range s.Slots() {
				if slot.Start >= start && slot.End <= end {
					assert.True(t, slot.Free, "complete range covers reserved slot %s", slot.Label)
				}
			}
		}
	}
}

func TestSelector_ClearResets(t *testing.T) {
	s := newTestSelector(t)
	require.NoError(t, s.Click(0))
	require.NoError(t, s.Click(3))
	require.True(t, s.Complete())

	s.Clear()
	assert.False(t, s.Complete())
	_, started := s.Start()
	assert.False(t, started)
	for _, slot := range s.Slots() {
		assert.False(t, slot.Selected)
	}
}

func TestSelector_InvalidIndex(t *testing.T) {
	s := newTestSelector(t)
	assert.ErrorIs(t, s.Click(-1), ErrInvalidSlot)
	assert.ErrorIs(t, s.Click(len(s.Slots())), ErrInvalidSlot)
}
