package gamemap

// Mask is a boolean grid parallel to a GameMap. It backs both the per-level
// explored set and field-of-view results.
type Mask struct {
	Width, Height int
	cells         []bool
}

// NewMask returns an all-false mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, cells: make([]bool, width*height)}
}

// Get returns the flag at (x, y); false outside the mask.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.cells[y*m.Width+x]
}

// Set stores v at (x, y). No-op outside the mask.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.cells[y*m.Width+x] = v
}

// Merge sets every cell that is set in other. Cells are never cleared.
func (m *Mask) Merge(other *Mask) {
	for i, v := range other.cells {
		if v && i < len(m.cells) {
			m.cells[i] = true
		}
	}
}

// All reports whether every cell is set.
func (m *Mask) All() bool {
	for _, v := range m.cells {
		if !v {
			return false
		}
	}
	return true
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}
