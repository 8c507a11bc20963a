package domain

// Time arithmetic constants
const (
	MinutesPerDay = 1440
	SecondsPerDay = 86400
)

// Default booking window configuration.
// The business day runs 12:00-24:00 in 15-minute slots unless overridden.
const (
	DefaultSlotWidthMinutes  = 15
	DefaultWindowStartMinute = 12 * 60
	DefaultWindowEndMinute   = 24 * 60
)

// Business validation constants
const (
	MinSlotWidthMinutes = 5
	MaxSlotWidthMinutes = 240
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
