package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

func reservationOn(resourceID int64, startMinute, endMinute int) *domain.Reservation {
	return &domain.Reservation{
		ID:          int64(startMinute),
		ResourceID:  resourceID,
		BranchID:    1,
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartMinute: startMinute,
		EndMinute:   endMinute,
	}
}

func slotAt(t *testing.T, slots []TimeSlot, startMinute int) TimeSlot {
	t.Helper()
	for _, s := range slots {
		if s.Start == startMinute {
			return s
		}
	}
	t.Fatalf("no slot starting at %d", startMinute)
	return TimeSlot{}
}

func TestMarkResource_StrictHalfOpenOverlap(t *testing.T) {
	// Window 12:00-24:00, 15m slots, reservation 14:00-15:00 on resource 7.
	slots, err := Generate(12*60, 24*60, 15)
	require.NoError(t, err)

	MarkResource(slots, []*domain.Reservation{reservationOn(7, 14*60, 15*60)}, 7)

	assert.True(t, slotAt(t, slots, 13*60+45).Free, "13:45-14:00 touches the start, free")
	assert.False(t, slotAt(t, slots, 14*60).Free, "14:00-14:15 busy")
	assert.False(t, slotAt(t, slots, 14*60+45).Free, "14:45-15:00 busy")
	assert.True(t, slotAt(t, slots, 15*60).Free, "15:00-15:15 touches the end, free")
}

func TestMarkResource_IgnoresOtherResources(t *testing.T) {
	slots, err := Generate(12*60, 24*60, 15)
	require.NoError(t, err)

	MarkResource(slots, []*domain.Reservation{reservationOn(99, 14*60, 15*60)}, 7)

	for _, s := range slots {
		assert.True(t, s.Free, "reservation on another resource must not block %s", s.Label)
	}
}

func TestMarkResource_PartialOverlapBlocks(t *testing.T) {
	slots, err := Generate(12*60, 24*60, 15)
	require.NoError(t, err)

	// 14:10-14:20 clips two slots.
	MarkResource(slots, []*domain.Reservation{reservationOn(7, 14*60+10, 14*60+20)}, 7)

	assert.False(t, slotAt(t, slots, 14*60).Free)
	assert.False(t, slotAt(t, slots, 14*60+15).Free)
	assert.True(t, slotAt(t, slots, 14*60+30).Free)
}

func TestMarkPool_FreeWhenAnyResourceFree(t *testing.T) {
	slots, err := Generate(9*60, 12*60, 15)
	require.NoError(t, err)

	reservations := []*domain.Reservation{
		reservationOn(1, 10*60, 11*60),
		reservationOn(2, 10*60, 10*60+30),
	}

	MarkPool(slots, reservations, []int64{1, 2})

	assert.False(t, slotAt(t, slots, 10*60).Free, "both resources booked 10:00-10:30")
	assert.False(t, slotAt(t, slots, 10*60+15).Free, "both resources booked 10:15-10:30")
	assert.True(t, slotAt(t, slots, 10*60+30).Free, "resource 2 free from 10:30")
	assert.True(t, slotAt(t, slots, 9*60).Free, "both resources free at 09:00")
}

func TestFirstFreeResource_ResolvesPoolInOrder(t *testing.T) {
	// Pool [A=1, B=2], range 09:00-10:00; A booked 09:15-09:45, B free.
	reservations := []*domain.Reservation{reservationOn(1, 9*60+15, 9*60+45)}

	id, ok := FirstFreeResource(reservations, []int64{1, 2}, 9*60, 10*60)
	require.True(t, ok)
	assert.Equal(t, int64(2), id)
}

func TestFirstFreeResource_PoolExhausted(t *testing.T) {
	reservations := []*domain.Reservation{
		reservationOn(1, 9*60, 10*60),
		reservationOn(2, 9*60+30, 9*60+45),
	}

	_, ok := FirstFreeResource(reservations, []int64{1, 2}, 9*60, 10*60)
	assert.False(t, ok)
}

func TestResourceFree_TouchingBoundariesDoNotConflict(t *testing.T) {
	reservations := []*domain.Reservation{reservationOn(1, 10*60, 11*60)}

	assert.True(t, ResourceFree(reservations, 1, 9*60, 10*60))
	assert.True(t, ResourceFree(reservations, 1, 11*60, 12*60))
	assert.False(t, ResourceFree(reservations, 1, 10*60+59, 11*60+1))
}
