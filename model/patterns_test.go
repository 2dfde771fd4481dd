package model

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestParsePattern(t *testing.T) {
	p := ParsePattern("glider", ".O.", "..O", "OOO")
	want := []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("Cells = %v, want %v", p.Cells, want)
	}
	if w, h := p.Bounds(); w != 3 || h != 3 {
		t.Fatalf("Bounds() = %d,%d, want 3,3", w, h)
	}
}

func TestLookupPattern(t *testing.T) {
	for _, name := range PatternNames() {
		p, ok := LookupPattern(name)
		if !ok || p.Name != name {
			t.Fatalf("LookupPattern(%q) = %v, %v", name, p.Name, ok)
		}
	}
	if _, ok := LookupPattern("spaceship"); ok {
		t.Fatal("LookupPattern found an unknown pattern")
	}
	if !slices.IsSorted(PatternNames()) {
		t.Fatalf("PatternNames() not sorted: %v", PatternNames())
	}
}

func TestStillLifesAreStable(t *testing.T) {
	for _, p := range []Pattern{Block, Beehive, Boat} {
		g := newTestGrid(t, 8, 8)
		g.Place(p, 2, 2)
		before := g.String()
		g.Advance()
		if got := g.String(); got != before {
			t.Fatalf("%s changed:\n%s\nwant\n%s", p.Name, got, before)
		}
	}
}

func TestShowcasePlacement(t *testing.T) {
	g := newTestGrid(t, 20, 20)
	g.Place(Showcase, 0, 0)
	if got := g.CountLivingCells(); got != len(Showcase.Cells) || got != 33 {
		t.Fatalf("CountLivingCells() = %d, want 33", got)
	}
	for _, p := range []Point{{3, 1}, {5, 2}, {3, 5}, {2, 9}, {10, 2}, {7, 5}, {13, 5}, {10, 8}, {3, 17}} {
		if !g.State(p.Col, p.Row) {
			t.Fatalf("cell %v not placed", p)
		}
	}
}

func TestPlaceWraps(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	g.Place(Blinker, 4, 0)
	for _, p := range []Point{{4, 0}, {0, 0}, {1, 0}} {
		if !g.State(p.Col, p.Row) {
			t.Fatalf("cell %v not placed", p)
		}
	}
}

func TestRandomize(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	g := newTestGrid(t, 6, 5)
	g.Randomize(rng, 0)
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("density 0 left %d cells alive", got)
	}
	g.Randomize(rng, 1)
	if got := g.CountLivingCells(); got != 30 {
		t.Fatalf("density 1 left %d cells alive, want 30", got)
	}
}

func TestInjectRandomLife(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	g.InjectRandomLife(rand.New(rand.NewPCG(5, 6)), 4)
	if got := g.CountLivingCells(); got < 1 || got > 4 {
		t.Fatalf("CountLivingCells() = %d, want 1..4", got)
	}
}

func TestAddInterestingPatterns(t *testing.T) {
	small := newTestGrid(t, 5, 5)
	small.AddInterestingPatterns()
	if small.CountLivingCells() != 0 {
		t.Fatal("small grids should be left empty")
	}

	g := newTestGrid(t, 30, 20)
	g.AddInterestingPatterns()
	// two gliders and two blinkers
	if got := g.CountLivingCells(); got != 16 {
		t.Fatalf("CountLivingCells() = %d, want 16", got)
	}
}
