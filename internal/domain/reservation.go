package domain

import (
	"time"
)

// Reservation represents a booked time window on a single resource.
// StartMinute/EndMinute are minutes since local midnight and form the
// half-open interval [StartMinute, EndMinute).
type Reservation struct {
	ID         int64
	ResourceID int64
	BranchID   int64
	UserID     *int64 // nil = walk-in / unregistered booking
	Date       time.Time
	StartMinute int
	EndMinute   int
	IsPaid      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWalkIn returns true if the reservation has no registered user attached
func (r *Reservation) IsWalkIn() bool {
	return r.UserID == nil
}

// Overlaps reports whether the reservation overlaps the half-open interval
// [startMinute, endMinute). Touching boundaries are not a conflict.
func (r *Reservation) Overlaps(startMinute, endMinute int) bool {
	return startMinute < r.EndMinute && endMinute > r.StartMinute
}

// startEndSeconds returns the reservation bounds in seconds of day.
// A numerically inverted interval (end <= start) is treated as spanning
// midnight and the end is pushed a full day forward.
func (r *Reservation) startEndSeconds() (int, int) {
	start := r.StartMinute * 60
	end := r.EndMinute * 60
	if end <= start {
		end += SecondsPerDay
	}
	return start, end
}

// ActiveAt reports whether nowSeconds (seconds since local midnight) falls
// inside the reservation's half-open window.
func (r *Reservation) ActiveAt(nowSeconds int) bool {
	start, end := r.startEndSeconds()
	if nowSeconds >= start && nowSeconds < end {
		return true
	}
	// A window pushed past 86400 also covers the small hours of the next day.
	if end > SecondsPerDay && nowSeconds < end-SecondsPerDay {
		return true
	}
	return false
}

// RemainingSeconds returns how many seconds of the reservation are left at
// nowSeconds, never negative.
func (r *Reservation) RemainingSeconds(nowSeconds int) int {
	_, end := r.startEndSeconds()
	if end > SecondsPerDay && nowSeconds < end-SecondsPerDay {
		nowSeconds += SecondsPerDay
	}
	remaining := end - nowSeconds
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResourceReservationsFilter фильтр для выборки бронирований
type ResourceReservationsFilter struct {
	ResourceIDs []int64    // Обязательный параметр: один или несколько ресурсов
	Date        *time.Time // Конкретная дата (опционально, если nil - все даты)
	BranchID    *int64     // Фильтр по филиалу (опционально)
}
