package model

import "github.com/gdamore/tcell/v2"

const (
	cellRuneAlive = '█'
	cellRuneDead  = ' '
)

// ScreenRenderer draws a grid on a tcell screen, two columns per cell, with
// a status line under the last row.
type ScreenRenderer struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewScreenRenderer renders onto an initialized screen.
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack),
		status: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Display redraws every cell.
func (r *ScreenRenderer) Display(g *Grid) {
	for row := range g.height {
		for col := range g.width {
			r.drawCell(col, row, g.cells[row][col].Alive())
		}
	}
	r.screen.Show()
}

// Refresh redraws only the cells that flipped in the last generation.
func (r *ScreenRenderer) Refresh(g *Grid) {
	for row := range g.height {
		for col := range g.width {
			c := &g.cells[row][col]
			if c.Changed() {
				r.drawCell(col, row, c.Alive())
			}
		}
	}
	r.screen.Show()
}

// DrawCell redraws a single cell, e.g. after it was toggled.
func (r *ScreenRenderer) DrawCell(g *Grid, col, row int) {
	col, row = wrap(col, g.width), wrap(row, g.height)
	r.drawCell(col, row, g.cells[row][col].Alive())
	r.screen.Show()
}

func (r *ScreenRenderer) drawCell(col, row int, alive bool) {
	ch, style := cellRuneDead, r.dead
	if alive {
		ch, style = cellRuneAlive, r.alive
	}
	r.screen.SetContent(col*2, row, ch, nil, style)
	r.screen.SetContent(col*2+1, row, ch, nil, style)
}

// Status writes text on the line below the grid, clearing the rest of it.
func (r *ScreenRenderer) Status(g *Grid, text string) {
	width, _ := r.screen.Size()
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, g.height, ch, nil, r.status)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, g.height, ' ', nil, r.status)
	}
	r.screen.Show()
}

// Cursor places the terminal cursor on the cell at (col, row).
func (r *ScreenRenderer) Cursor(col, row int) {
	r.screen.ShowCursor(col*2, row)
	r.screen.Show()
}

// Clear blanks the whole screen.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}
