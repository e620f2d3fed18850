package views

// Scroller keeps a highlighted row inside a window of visible rows.
// The highlight itself is owned by the design list controller.
type Scroller struct {
	height int
	offset int
}

// NewScroller creates a scroller showing height rows at a time
func NewScroller(height int) *Scroller {
	if height <= 0 {
		height = 10
	}
	return &Scroller{height: height}
}

// SetHeight changes the number of visible rows
func (s *Scroller) SetHeight(height int) {
	if height <= 0 {
		height = 1
	}
	s.height = height
}

// Height returns the number of visible rows
func (s *Scroller) Height() int {
	return s.height
}

// Follow scrolls the window so cursor is visible. A cursor of -1 keeps the
// current offset, clamped to total.
func (s *Scroller) Follow(cursor, total int) {
	switch {
	case cursor < 0:
	case cursor < s.offset:
		s.offset = cursor
	case cursor >= s.offset+s.height:
		s.offset = cursor - s.height + 1
	}
	if maxOffset := max(total-s.height, 0); s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// Range returns the visible rows as [start, end)
func (s *Scroller) Range(total int) (start, end int) {
	start = min(s.offset, total)
	end = min(s.offset+s.height, total)
	return start, end
}

// PageDown returns the row one window below cursor, clamped to total
func (s *Scroller) PageDown(cursor, total int) int {
	return min(max(cursor, 0)+s.height, total-1)
}

// PageUp returns the row one window above cursor
func (s *Scroller) PageUp(cursor int) int {
	return max(cursor-s.height, 0)
}

// Reset scrolls back to the top
func (s *Scroller) Reset() {
	s.offset = 0
}
