package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CoversWindowExactly(t *testing.T) {
	slots, err := Generate(12*60, 24*60, 15)
	require.NoError(t, err)
	require.Len(t, slots, 48)

	assert.Equal(t, 12*60, slots[0].Start)
	assert.Equal(t, 24*60, slots[len(slots)-1].End)

	for i, s := range slots {
		assert.Equal(t, 15, s.Width(), "slot %d width", i)
		assert.True(t, s.Free, "slot %d starts free", i)
		assert.False(t, s.Selected, "slot %d starts unselected", i)
		if i > 0 {
			assert.Equal(t, slots[i-1].End, s.Start, "slot %d contiguous", i)
		}
	}
}

func TestGenerate_TruncatesFinalSlot(t *testing.T) {
	slots, err := Generate(9*60, 9*60+40, 15)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	last := slots[len(slots)-1]
	assert.Equal(t, 9*60+30, last.Start)
	assert.Equal(t, 9*60+40, last.End)
	for _, s := range slots {
		assert.LessOrEqual(t, s.End, 9*60+40, "no slot ends past the window")
	}
}

func TestGenerate_WrapsPastMidnight(t *testing.T) {
	// 23:00 - 01:00 next day
	slots, err := Generate(23*60, 25*60, 30)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, "23:30 - 00:00", slots[1].Label)
	assert.Equal(t, "00:00 - 00:30", slots[2].Label)
	assert.Equal(t, 25*60, slots[3].End, "grid stays monotonic past 1440")
}

func TestGenerate_Labels(t *testing.T) {
	slots, err := Generate(9*60, 10*60, 15)
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 09:15", slots[0].Label)
	assert.Equal(t, "09:45 - 10:00", slots[3].Label)
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := Generate(600, 600, 15)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = Generate(-10, 600, 15)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = Generate(0, 2000, 15)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = Generate(600, 700, 0)
	assert.ErrorIs(t, err, ErrInvalidSlotWidth)
}
