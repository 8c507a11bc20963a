package schedule

// Selector implements the two-click range selection over a slot grid.
//
// States: empty (nothing picked), start (first slot picked), complete
// (range picked). Clicking a reserved slot is always ignored. Clicking a
// slot at or before the current start restarts the selection there, so a
// user can change their mind without an extra click. The second click
// re-checks the whole candidate range against reserved slots and rejects
// with ErrRangeCollision when it straddles one, leaving the selection
// untouched. Any click after a complete selection restarts at the clicked
// slot.
//
// The Selector owns the Selected flags on the slice passed to NewSelector.
type Selector struct {
	slots    []TimeSlot
	startIdx int
	endIdx   int
}

// NewSelector wraps a slot grid. The grid is regenerated (not reused)
// whenever the date or resource changes, so the zero selection state of a
// fresh Selector matches a fresh grid.
func NewSelector(slots []TimeSlot) *Selector {
	return &Selector{slots: slots, startIdx: -1, endIdx: -1}
}

// Slots returns the underlying grid with current Selected flags
func (s *Selector) Slots() []TimeSlot {
	return s.slots
}

// Complete reports whether both ends of the range are picked
func (s *Selector) Complete() bool {
	return s.startIdx >= 0 && s.endIdx >= 0
}

// Range returns the selected half-open range in minutes. ok is false until
// the selection is complete.
func (s *Selector) Range() (startMinute, endMinute int, ok bool) {
	if !s.Complete() {
		return 0, 0, false
	}
	return s.slots[s.startIdx].Start, s.slots[s.endIdx].End, true
}

// Start returns the currently picked start slot, if any
func (s *Selector) Start() (TimeSlot, bool) {
	if s.startIdx < 0 {
		return TimeSlot{}, false
	}
	return s.slots[s.startIdx], true
}

// Click processes a click on slot i.
func (s *Selector) Click(i int) error {
	if i < 0 || i >= len(s.slots) {
		return ErrInvalidSlot
	}
	if !s.slots[i].Free {
		// Reserved slots are inert in every state.
		return nil
	}

	// Empty, or complete: restart at the clicked slot.
	if s.startIdx < 0 || s.endIdx >= 0 {
		s.restartAt(i)
		return nil
	}

	// Clicking at or before the current start moves the start.
	if s.slots[i].Start <= s.slots[s.startIdx].Start {
		s.restartAt(i)
		return nil
	}

	// Second click: the whole candidate range must be free.
	for j := s.startIdx; j <= i; j++ {
		if !s.slots[j].Free {
			return ErrRangeCollision
		}
	}

	for j := s.startIdx; j <= i; j++ {
		s.slots[j].Selected = true
	}
	s.endIdx = i
	return nil
}

// Clear resets the selection to empty. Called on date change, resource
// change and after a reservation is confirmed.
func (s *Selector) Clear() {
	for j := range s.slots {
		s.slots[j].Selected = false
	}
	s.startIdx = -1
	s.endIdx = -1
}

func (s *Selector) restartAt(i int) {
	s.Clear()
	s.slots[i].Selected = true
	s.startIdx = i
}
