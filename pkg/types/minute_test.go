package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinuteOfDay(t *testing.T) {
	m, err := ParseMinuteOfDay("14:30")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(870), m)

	m, err = ParseMinuteOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(0), m)

	_, err = ParseMinuteOfDay("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = ParseMinuteOfDay("1430")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestMinuteOfDay_String(t *testing.T) {
	assert.Equal(t, "14:30", MinuteOfDay(870).String())
	assert.Equal(t, "00:00", MinuteOfDay(0).String())

	// Значения за пределами суток форматируются по модулю
	assert.Equal(t, "00:00", MinuteOfDay(1440).String())
	assert.Equal(t, "00:30", MinuteOfDay(1470).String())
}

func TestMinuteOfDay_AddMinutes(t *testing.T) {
	m := NewMinuteOfDay(23, 45)
	shifted := m.AddMinutes(30)

	// Сдвиг через полночь остаётся монотонным
	assert.Equal(t, MinuteOfDay(1455), shifted)
	assert.Equal(t, "00:15", shifted.String())
}

func TestFormatClockSeconds(t *testing.T) {
	assert.Equal(t, "14:30:05", FormatClockSeconds(52205))
	assert.Equal(t, "00:00:00", FormatClockSeconds(86400))
	assert.Equal(t, "00:00:11", FormatClockSeconds(86411))
}
