package schedule

import "errors"

var (
	// ErrInvalidWindow is returned for a business window the grid cannot cover
	ErrInvalidWindow = errors.New("schedule: invalid business window")

	// ErrInvalidSlotWidth is returned for a non-positive slot width
	ErrInvalidSlotWidth = errors.New("schedule: invalid slot width")

	// ErrInvalidSlot is returned when a click refers to a slot outside the grid
	ErrInvalidSlot = errors.New("schedule: slot index out of range")

	// ErrRangeCollision is returned when a candidate selection range covers a
	// reserved slot. Recoverable: the selection is left unchanged and the
	// caller surfaces it to the user.
	ErrRangeCollision = errors.New("schedule: selection overlaps an existing reservation")
)
