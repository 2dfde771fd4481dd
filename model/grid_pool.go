package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles wired grids so a restart does not rebuild the topology
type GridPool struct {
	pool   sync.Pool
	tracer Tracer
}

// NewGridPool creates a pool whose fresh grids trace to tracer.
func NewGridPool(tracer Tracer) *GridPool {
	return &GridPool{tracer: tracer}
}

// Get retrieves an all-dead grid of the given dimensions, reusing a pooled
// one when its dimensions match.
func (p *GridPool) Get(width, height int) (*Grid, error) {
	if v := p.pool.Get(); v != nil {
		g := v.(*Grid)
		if g.width == width && g.height == height {
			g.ResetAll()
			return g, nil
		}
	}
	return NewGrid(width, height, p.tracer)
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.ResetAll()
	p.pool.Put(g)
}
