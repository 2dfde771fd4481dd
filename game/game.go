package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// Game drives a grid generation by generation. It is not safe for concurrent
// use; a single goroutine must own it.
type Game struct {
	config  utils.Config
	grid    *model.Grid
	pool    *model.GridPool
	history *model.History
	stats   *utils.Stats
	rng     *rand.Rand
	tracer  model.Tracer

	generation     int // total, across restarts
	stagnantCount  int
	lastRestartGen int
	lastStep       time.Time
}

// New sets up a seeded game. tracer may be nil.
func New(config utils.Config, tracer model.Tracer) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[game.New] invalid configuration")
	}
	if config.Pattern != "" {
		if _, ok := model.LookupPattern(config.Pattern); !ok {
			return nil, errors.Errorf("[game.New] unknown pattern %q, want one of %v", config.Pattern, model.PatternNames())
		}
	}

	g := &Game{
		config:   config,
		history:  model.NewHistory(config.HistorySize),
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewPCG(uint64(config.Seed), 0)),
		tracer:   tracer,
		lastStep: time.Now(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool(tracer)
	}

	grid, err := g.freshGrid()
	if err != nil {
		return nil, err
	}
	g.grid = grid
	g.stats.Population = grid.CountLivingCells()
	return g, nil
}

// freshGrid returns a seeded grid, recycled from the pool when there is one.
func (g *Game) freshGrid() (*model.Grid, error) {
	var (
		grid *model.Grid
		err  error
	)
	if g.pool != nil {
		grid, err = g.pool.Get(g.config.Width, g.config.Height)
	} else {
		grid, err = model.NewGrid(g.config.Width, g.config.Height, g.tracer)
	}
	if err != nil {
		return nil, errors.Wrap(err, "[freshGrid] failed to build grid")
	}
	g.seed(grid)
	return grid, nil
}

// seed places the configured pattern in the middle of the grid, or scatters
// gliders, blinkers and random life when no pattern is configured.
func (g *Game) seed(grid *model.Grid) {
	if p, ok := model.LookupPattern(g.config.Pattern); ok {
		w, h := p.Bounds()
		grid.Place(p, (grid.GetWidth()-w)/2, (grid.GetHeight()-h)/2)
		return
	}
	grid.AddInterestingPatterns()
	grid.Randomize(g.rng, g.config.RandomDensity)
}

// Grid returns the grid currently being simulated.
func (g *Game) Grid() *model.Grid { return g.grid }

// Stats returns the running statistics.
func (g *Game) Stats() *utils.Stats { return g.stats }

// Generation returns the number of generations stepped, across restarts.
func (g *Game) Generation() int { return g.generation }

// Done reports whether the configured generation limit was reached.
func (g *Game) Done() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}

/*
Step advances one generation and applies the restart policy: random life is
injected once the board has been stagnant for two steps, and the board is
reseeded on extinction or when stagnation reaches the configured threshold.

reseeded reports whether cells changed outside the generation advance, in
which case incremental redraws based on Changed are not enough.
*/
func (g *Game) Step() (reseeded bool, err error) {
	start := time.Now()

	g.history.Record(g.grid)
	g.grid.Advance()
	g.generation++

	population := g.grid.CountLivingCells()
	g.stats.Update(g.generation, population, g.grid.CountChangedCells(), start.Sub(g.lastStep))
	g.lastStep = start

	if g.history.IsStagnant(g.grid) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	if reason, restart := g.checkRestartConditions(population); restart && g.config.AutoRestart {
		if err = g.Restart(reason); err != nil {
			return false, err
		}
		return true, nil
	}

	if g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold && g.config.InjectionCount > 0 {
		g.grid.InjectRandomLife(g.rng, g.config.InjectionCount)
		return true, nil
	}
	return false, nil
}

// checkRestartConditions determines if the game should restart
func (g *Game) checkRestartConditions(population int) (string, bool) {
	if population == 0 {
		return "extinction", true
	}
	if g.config.StagnationThreshold > 0 && g.stagnantCount >= g.config.StagnationThreshold {
		return "stagnation detected", true
	}
	return "", false
}

// Restart discards the current grid and starts over on a freshly seeded one.
func (g *Game) Restart(reason string) error {
	next, err := g.freshGrid()
	if err != nil {
		return errors.Wrapf(err, "[Restart] restart due to %s failed", reason)
	}
	model.GridToPool(g.grid, g.pool)
	g.grid = next
	g.history.Clear()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.stats.Restarts++
	g.stats.Population = next.CountLivingCells()
	if g.tracer != nil {
		g.tracer.Printf("restart at generation %d: %s", g.generation, reason)
	}
	return nil
}

// Clear kills every cell, keeping the wiring.
func (g *Game) Clear() {
	g.grid.ResetAll()
	g.history.Clear()
	g.stagnantCount = 0
}

// Status summarizes the game in one line.
func (g *Game) Status(paused bool) string {
	living := g.grid.CountLivingCells()
	area := g.grid.GetWidth() * g.grid.GetHeight()
	density := float64(living) / float64(area) * 100

	state := "Active"
	switch {
	case living == 0:
		state = "Extinct"
	case g.stagnantCount > 0:
		state = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if paused {
		state += ", paused"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Restarts: %d | Since restart: %d | Status: %s",
		g.generation, living, density, g.stats.Restarts,
		g.generation-g.lastRestartGen, state)
}
