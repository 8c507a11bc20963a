package domain

import "time"

// Resource represents a bookable station/item belonging to a branch.
// Resources are created and deleted by branch management; this service
// only reads them.
type Resource struct {
	ID       int64
	BranchID int64
	Name     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
