package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/rules"
)

// minDimension is the smallest width or height whose eight wrapped neighbors are all distinct.
const minDimension = 3

// ErrGridTooSmall is returned when a grid would wrap a cell onto its own neighborhood twice.
var ErrGridTooSmall = errors.New("grid must be at least 3x3")

// Tracer receives diagnostic output from a Grid. *log.Logger satisfies it.
type Tracer interface {
	Printf(format string, v ...any)
}

// neighborOffsets lists the Moore neighborhood as (dc, dr) pairs.
var neighborOffsets = [maxNeighbors][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a toroidal board of cells wired to their eight neighbors
type Grid struct {
	width  int
	height int
	cells  [][]Cell // [row][col]
	tracer Tracer

	generation int

	// set when a seeded live cell was written dead; the pushed counts no longer match
	stale bool
}

// NewGrid creates a grid with the specified dimensions and wires every cell
// to its neighbors. tracer may be nil.
func NewGrid(width, height int, tracer Tracer) (*Grid, error) {
	if width < minDimension || height < minDimension {
		return nil, errors.Wrapf(ErrGridTooSmall, "[NewGrid] invalid dimensions %dx%d", width, height)
	}

	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  cells,
		tracer: tracer,
	}
	g.link()
	g.tracef("grid %dx%d: %d cells wired", width, height, width*height)
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns the number of Advance calls since construction or the last ResetAll.
func (g *Grid) Generation() int {
	return g.generation
}

// link subscribes every cell's neighbors to it, so a commit reaches the
// cells that count it.
func (g *Grid) link() {
	for row := range g.height {
		for col := range g.width {
			target := &g.cells[row][col]
			for _, off := range neighborOffsets {
				target.Subscribe(g.cell(col+off[0], row+off[1]))
			}
		}
	}
}

// wrap folds v into [0, n).
func wrap(v, n int) int {
	return (v%n + n) % n
}

func (g *Grid) cell(col, row int) *Cell {
	return &g.cells[wrap(row, g.height)][wrap(col, g.width)]
}

// Advance computes the next generation. Every cell decides before any cell
// commits, so traversal order does not matter.
func (g *Grid) Advance() {
	if g.stale {
		g.resync()
	}

	for row := range g.height {
		for col := range g.width {
			outcome := g.cells[row][col].DecideNextState()
			if outcome != rules.Unchanged && outcome != rules.Survival {
				g.tracef("gen %d: (%d,%d) %s", g.generation+1, col, row, outcome)
			}
		}
	}

	var born, died int
	for row := range g.height {
		for col := range g.width {
			c := &g.cells[row][col]
			c.Commit()
			if !c.Changed() {
				continue
			}
			if c.Alive() {
				born++
			} else {
				died++
			}
		}
	}

	g.generation++
	g.tracef("gen %d: %d born, %d died", g.generation, born, died)
}

// resync rebuilds every neighbor count from the current states.
func (g *Grid) resync() {
	for row := range g.height {
		for col := range g.width {
			g.cells[row][col].neighborAlive = 0
		}
	}
	for row := range g.height {
		for col := range g.width {
			g.cells[row][col].NotifyAll()
		}
	}
	g.stale = false
	g.tracef("gen %d: neighbor counts rebuilt", g.generation)
}

// State returns whether the cell at (col, row) is alive. Coordinates wrap.
func (g *Grid) State(col, row int) bool {
	return g.cell(col, row).Alive()
}

// SetState seeds the cell at (col, row) and pushes its new state to its
// neighbors. Coordinates wrap.
func (g *Grid) SetState(col, row int, alive bool) {
	c := g.cell(col, row)
	if c.Alive() == alive {
		return
	}
	c.SetCurrentState(StateOf(alive))
	c.NotifyAll()
	if !alive {
		g.stale = true
	}
}

// Toggle flips the cell at (col, row).
func (g *Grid) Toggle(col, row int) {
	g.SetState(col, row, !g.State(col, row))
}

// Changed reports whether the cell at (col, row) flipped in the last generation.
func (g *Grid) Changed(col, row int) bool {
	return g.cell(col, row).Changed()
}

// ResetAll kills every cell and clears the counters. The wiring is kept.
func (g *Grid) ResetAll() {
	for row := range g.height {
		for col := range g.width {
			g.cells[row][col].reset()
		}
	}
	g.generation = 0
	g.stale = false
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col].Alive() {
				count++
			}
		}
	}
	return
}

// CountChangedCells returns how many cells flipped in the last generation.
func (g *Grid) CountChangedCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col].Changed() {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for row := range g.height {
		for col := range g.width {
			h.Write([]byte{byte(g.cells[row][col].current)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String dumps the grid as rows of 0 and 1.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col].Alive() {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) tracef(format string, v ...any) {
	if g.tracer == nil {
		return
	}
	g.tracer.Printf(format, v...)
}
