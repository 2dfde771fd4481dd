package model

import (
	"math/rand/v2"
	"sort"
)

// Point is a (col, row) offset.
type Point struct {
	Col, Row int
}

// Pattern is a named set of live cells relative to a top-left origin.
type Pattern struct {
	Name  string
	Cells []Point
}

// ParsePattern builds a Pattern from rows of art where 'O', '#', '*' or '1'
// mark live cells and anything else is dead.
func ParsePattern(name string, rows ...string) Pattern {
	p := Pattern{Name: name}
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'O', '#', '*', '1':
				p.Cells = append(p.Cells, Point{Col: c, Row: r})
			}
		}
	}
	return p
}

// Translate returns a copy of p shifted by (dc, dr).
func (p Pattern) Translate(dc, dr int) Pattern {
	out := Pattern{Name: p.Name, Cells: make([]Point, len(p.Cells))}
	for i, pt := range p.Cells {
		out.Cells[i] = Point{Col: pt.Col + dc, Row: pt.Row + dr}
	}
	return out
}

// Bounds returns the width and height of the smallest box holding every live cell of p.
func (p Pattern) Bounds() (width, height int) {
	for _, pt := range p.Cells {
		width = max(width, pt.Col+1)
		height = max(height, pt.Row+1)
	}
	return
}

var (
	Block   = ParsePattern("block", "OO", "OO")
	Beehive = ParsePattern("beehive", ".OO.", "O..O", ".OO.")
	Boat    = ParsePattern("boat", ".OO", "O.O", "OO.")
	Blinker = ParsePattern("blinker", "OOO")
	Glider  = ParsePattern("glider", ".O.", "..O", "OOO")

	// Showcase mixes still lifes, oscillators and a glider on a 16x20 area.
	Showcase = combine("showcase",
		Beehive.Translate(2, 1),
		Block.Translate(3, 5),
		Boat.Translate(2, 8),
		Pattern{Cells: []Point{{10, 1}, {10, 2}, {10, 3}}},
		Blinker.Translate(6, 5),
		Blinker.Translate(12, 5),
		Pattern{Cells: []Point{{10, 7}, {10, 8}, {10, 9}}},
		Glider.Translate(1, 15),
	)
)

var patterns = map[string]Pattern{
	Block.Name:    Block,
	Beehive.Name:  Beehive,
	Boat.Name:     Boat,
	Blinker.Name:  Blinker,
	Glider.Name:   Glider,
	Showcase.Name: Showcase,
}

func combine(name string, parts ...Pattern) Pattern {
	p := Pattern{Name: name}
	for _, part := range parts {
		p.Cells = append(p.Cells, part.Cells...)
	}
	return p
}

// LookupPattern returns the named pattern from the built-in library.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place seeds p with its origin at (col, row). Coordinates wrap.
func (g *Grid) Place(p Pattern, col, row int) {
	for _, pt := range p.Cells {
		g.SetState(col+pt.Col, row+pt.Row, true)
	}
}

// Randomize brings cells to life with probability density. Live cells stay alive.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for row := range g.height {
		for col := range g.width {
			if rng.Float64() < density {
				g.SetState(col, row, true)
			}
		}
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	for range count {
		g.SetState(rng.IntN(g.width), rng.IntN(g.height), true)
	}
}

// AddInterestingPatterns seeds gliders and oscillators the way a fresh
// board is set up when no pattern is configured.
func (g *Grid) AddInterestingPatterns() {
	if g.width < 10 || g.height < 10 {
		return
	}
	g.Place(Glider, 5, 5)
	if g.width >= 20 && g.height >= 15 {
		g.Place(Glider, g.width-8, 5)
	}
	g.Place(Blinker, g.width/4, g.height/4)
	if g.width >= 30 {
		g.Place(Blinker, 3*g.width/4, 3*g.height/4)
	}
}
