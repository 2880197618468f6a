package antwar

import "math/rand"

// resourceField owns the set of resource source coordinates. Sources
// relocate wholesale every refresh period; in between, each unoccupied
// source stochastically materializes a resource on its cell. A materialized
// resource only disappears when an ant walks onto it.
type resourceField struct {
	count   int
	refresh int
	prob    float64
	sources []Coord
}

func newResourceField(cfg Config) *resourceField {
	return &resourceField{
		count:   cfg.NumResources,
		refresh: cfg.ResourceRefreshTicks,
		prob:    cfg.ResourceProbability,
	}
}

// relocate draws fresh source coordinates. The x axis spans the full grid;
// the y axis excludes the central row shared by both home centers, so a
// source never lands on a colony's doorstep.
func (rf *resourceField) relocate(g *Grid, rng *rand.Rand) {
	size := g.Size()
	mid := size / 2
	rf.sources = rf.sources[:0]
	for i := 0; i < rf.count; i++ {
		x := rng.Intn(size)
		y := rng.Intn(size - 1)
		if y >= mid {
			y++
		}
		rf.sources = append(rf.sources, Coord{X: x, Y: y})
	}
}

// step advances the field by one tick: relocation on period boundaries,
// then materialization on every source cell not occupied by an ant.
func (rf *resourceField) step(w *World) {
	if w.tick%rf.refresh == 0 {
		rf.relocate(w.grid, w.rng)
	}
	for _, src := range rf.sources {
		if _, occupied := w.ants[src]; occupied {
			continue
		}
		if w.rng.Float64() < rf.prob {
			w.grid.SetCell(src, CellResource)
		}
	}
}
