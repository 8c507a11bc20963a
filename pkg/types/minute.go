// Package types содержит общие типы для работы со временем внутри суток.
package types

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 1440

// ErrInvalidTimeString возвращается при некорректной строке времени
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// MinuteOfDay время как количество минут от полуночи.
// Значения больше 1440 допустимы для окон, переходящих через полночь;
// форматирование всегда выполняется по модулю 1440.
type MinuteOfDay int

// NewMinuteOfDay создает MinuteOfDay из часа и минуты
func NewMinuteOfDay(hour, minute int) MinuteOfDay {
	return MinuteOfDay(hour*60 + minute)
}

// FromClock создает MinuteOfDay из времени time.Time (часы и минуты)
func FromClock(t time.Time) MinuteOfDay {
	return MinuteOfDay(t.Hour()*60 + t.Minute())
}

// ParseMinuteOfDay парсит строку формата "HH:MM"
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeString
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

// Hour возвращает час (0-23) по модулю суток
func (m MinuteOfDay) Hour() int {
	return (int(m) % MinutesPerDay) / 60
}

// Minute возвращает минуту внутри часа (0-59)
func (m MinuteOfDay) Minute() int {
	return int(m) % 60
}

// AddMinutes возвращает время, сдвинутое на delta минут
func (m MinuteOfDay) AddMinutes(delta int) MinuteOfDay {
	return m + MinuteOfDay(delta)
}

// IsBefore возвращает true, если m строго раньше other
func (m MinuteOfDay) IsBefore(other MinuteOfDay) bool {
	return m < other
}

// IsAfter возвращает true, если m строго позже other
func (m MinuteOfDay) IsAfter(other MinuteOfDay) bool {
	return m > other
}

// String форматирует время как "HH:MM" по модулю суток
func (m MinuteOfDay) String() string {
	v := ((int(m) % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", v/60, v%60)
}

// FormatClockSeconds форматирует секунды от полуночи как "HH:MM:SS" по модулю суток
func FormatClockSeconds(totalSeconds int) string {
	const secondsPerDay = 86400
	v := ((totalSeconds % secondsPerDay) + secondsPerDay) % secondsPerDay
	return fmt.Sprintf("%02d:%02d:%02d", v/3600, (v%3600)/60, v%60)
}
