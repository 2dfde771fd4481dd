package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/model"
)

// errQuit ends the event loop when the user asks to leave.
var errQuit = errors.New("quit requested")

type command uint8

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
	cmdStart
	cmdStep
	cmdUp
	cmdDown
	cmdRight
	cmdLeft
	cmdToggle
	cmdRestart
	cmdClear
)

var runeCommands = map[rune]command{
	'q': cmdQuit,
	'p': cmdPause,
	's': cmdStart,
	'n': cmdStep,
	'k': cmdUp,
	'j': cmdDown,
	'l': cmdRight,
	'h': cmdLeft,
	'i': cmdToggle,
	' ': cmdToggle,
	'r': cmdRestart,
	'c': cmdClear,
}

var keyCommands = map[tcell.Key]command{
	tcell.KeyEscape: cmdQuit,
	tcell.KeyCtrlC:  cmdQuit,
	tcell.KeyEnter:  cmdStart,
	tcell.KeyUp:     cmdUp,
	tcell.KeyDown:   cmdDown,
	tcell.KeyRight:  cmdRight,
	tcell.KeyLeft:   cmdLeft,
}

func commandFor(ev *tcell.EventKey) command {
	if ev.Key() == tcell.KeyRune {
		return runeCommands[ev.Rune()]
	}
	return keyCommands[ev.Key()]
}

// Controller runs a Game on a tcell screen: it advances the game on a timer
// while running and edits the board under a cursor while paused.
type Controller struct {
	game     *Game
	screen   tcell.Screen
	renderer *model.ScreenRenderer
	interval time.Duration

	paused    bool
	cursorCol int
	cursorRow int
}

// NewController attaches game to an initialized screen. The controller
// finalizes the screen when Run returns.
func NewController(game *Game, screen tcell.Screen) *Controller {
	return &Controller{
		game:     game,
		screen:   screen,
		renderer: model.NewScreenRenderer(screen),
		interval: game.config.FrameRate,
		paused:   game.config.StartPaused,
	}
}

// Paused reports whether the timer is currently ignored.
func (c *Controller) Paused() bool { return c.paused }

// Cursor returns the cell under the cursor.
func (c *Controller) Cursor() (col, row int) { return c.cursorCol, c.cursorRow }

// Run polls screen events on one goroutine and owns the game on another, so
// generations are only ever advanced one at a time. It returns nil when the
// user quits or ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	eg.Go(func() error {
		pollEvents(ctx, c.screen, events)
		return nil
	})
	eg.Go(func() error {
		// unblocks PollEvent
		defer c.screen.Fini()
		return c.loop(ctx, events)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Controller) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.redraw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := c.handleEvent(ev); err != nil {
				return err
			}
		case <-ticker.C:
			if c.paused {
				continue
			}
			if err := c.advance(); err != nil {
				return err
			}
		}
	}
}

func (c *Controller) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.screen.Sync()
		c.redraw()
	case *tcell.EventKey:
		return c.handle(commandFor(ev))
	}
	return nil
}

func (c *Controller) handle(cmd command) error {
	grid := c.game.Grid()
	switch cmd {
	case cmdQuit:
		return errQuit
	case cmdPause:
		c.paused = true
	case cmdStart:
		if !c.game.Done() {
			c.paused = false
		}
	case cmdStep:
		c.paused = true
		return c.advance()
	case cmdUp:
		c.moveCursor(0, -1)
	case cmdDown:
		c.moveCursor(0, 1)
	case cmdRight:
		c.moveCursor(1, 0)
	case cmdLeft:
		c.moveCursor(-1, 0)
	case cmdToggle:
		grid.Toggle(c.cursorCol, c.cursorRow)
		c.renderer.DrawCell(grid, c.cursorCol, c.cursorRow)
	case cmdRestart:
		if err := c.game.Restart("manual restart"); err != nil {
			return err
		}
		c.redraw()
		return nil
	case cmdClear:
		c.game.Clear()
		c.redraw()
		return nil
	default:
		return nil
	}
	c.showStatus()
	return nil
}

func (c *Controller) moveCursor(dc, dr int) {
	grid := c.game.Grid()
	w, h := grid.GetWidth(), grid.GetHeight()
	c.cursorCol = (c.cursorCol + dc + w) % w
	c.cursorRow = (c.cursorRow + dr + h) % h
}

func (c *Controller) advance() error {
	reseeded, err := c.game.Step()
	if err != nil {
		return err
	}
	if c.game.Done() {
		c.paused = true
	}
	if reseeded {
		c.redraw()
		return nil
	}
	c.renderer.Refresh(c.game.Grid())
	c.showStatus()
	return nil
}

func (c *Controller) redraw() {
	c.screen.Clear()
	c.renderer.Display(c.game.Grid())
	c.showStatus()
}

func (c *Controller) showStatus() {
	c.renderer.Status(c.game.Grid(), c.game.Status(c.paused))
	c.renderer.Cursor(c.cursorCol, c.cursorRow)
}
