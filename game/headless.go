package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sheikhrachel/torus-life/model"
)

// RunHeadless prints the board to w after every generation until
// generations have been stepped (0 means the configured limit), the game is
// done, or ctx is cancelled.
func (g *Game) RunHeadless(ctx context.Context, w io.Writer, generations int) error {
	var renderer model.Renderer = model.NewTextRenderer(w)
	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	for stepped := 0; ; stepped++ {
		renderer.Clear()
		fmt.Fprintln(w, g.Status(false))
		renderer.Display(g.grid)

		if g.Done() || (generations > 0 && stepped >= generations) {
			break
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if _, err := g.Step(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		g.generation, g.stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
	return nil
}
