package model

// History remembers recent grid hashes for cycle detection
type History struct {
	hashes []string
	size   int
}

// NewHistory keeps at most size hashes. Sizes below 3 are raised to 3.
func NewHistory(size int) *History {
	if size < 3 {
		size = 3
	}
	return &History{size: size}
}

// Record adds the grid's current state to history and maintains size
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded states.
func (h *History) Len() int { return len(h.hashes) }

// Clear forgets every recorded state.
func (h *History) Clear() { h.hashes = nil }

// IsStagnant checks if the grid is back in one of its last three recorded
// states, i.e. static or cycling with period two or three.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
