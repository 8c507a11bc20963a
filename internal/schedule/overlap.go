package schedule

import (
	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

// MarkResource sets Free on every slot for a single-resource view: a slot
// is free iff no reservation on resourceID overlaps it. Reservations must
// already be filtered to the active date. Overlap uses strict half-open
// comparison, so a reservation ending exactly where a slot starts does not
// block it.
func MarkResource(slots []TimeSlot, reservations []*domain.Reservation, resourceID int64) {
	for i := range slots {
		start, end := slots[i].normalized()
		slots[i].Free = !anyOverlap(reservations, resourceID, start, end)
	}
}

// MarkPool sets Free on every slot for a find-any-free-resource view: a
// slot is free iff at least one resource in the pool has no overlapping
// reservation for it.
func MarkPool(slots []TimeSlot, reservations []*domain.Reservation, resourceIDs []int64) {
	for i := range slots {
		start, end := slots[i].normalized()
		free := false
		for _, resourceID := range resourceIDs {
			if !anyOverlap(reservations, resourceID, start, end) {
				free = true
				break
			}
		}
		slots[i].Free = free
	}
}

// ResourceFree reports whether resourceID has no reservation overlapping
// the half-open range [startMinute, endMinute).
func ResourceFree(reservations []*domain.Reservation, resourceID int64, startMinute, endMinute int) bool {
	return !anyOverlap(reservations, resourceID, startMinute, endMinute)
}

// FirstFreeResource resolves a pool booking to a concrete resource: the
// first id in pool order that is free for the entire range. Returns false
// when every resource has a conflicting reservation.
func FirstFreeResource(reservations []*domain.Reservation, resourceIDs []int64, startMinute, endMinute int) (int64, bool) {
	for _, resourceID := range resourceIDs {
		if !anyOverlap(reservations, resourceID, startMinute, endMinute) {
			return resourceID, true
		}
	}
	return 0, false
}

func anyOverlap(reservations []*domain.Reservation, resourceID int64, startMinute, endMinute int) bool {
	for _, r := range reservations {
		if r.ResourceID != resourceID {
			continue
		}
		if r.Overlaps(startMinute, endMinute) {
			return true
		}
	}
	return false
}
