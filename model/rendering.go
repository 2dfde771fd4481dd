package model

import (
	"fmt"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// Renderer draws a grid somewhere.
type Renderer interface {
	Display(g *Grid)
	Clear()
}

// TextRenderer implements basic terminal rendering
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer renders to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Display renders the grid to the writer
func (r *TextRenderer) Display(g *Grid) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col].Alive() {
				fmt.Fprint(r.w, gridPosBlock)
			} else {
				fmt.Fprint(r.w, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.w)
	}
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() {
	fmt.Fprint(r.w, ansiClear)
}
