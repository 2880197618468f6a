package antwar

import "math/rand"

// AntState is an ant's behavioral mode.
type AntState uint8

const (
	// StateForaging: wander toward resources, trails or fights.
	StateForaging AntState = iota
	// StateReturning: head home laying a scent trail after eating.
	StateReturning
)

func (s AntState) String() string {
	if s == StateReturning {
		return "returning"
	}
	return "foraging"
}

// trailFalloffBias is added to the decay rate when computing how much a
// returning ant's deposit weakens per step away from the resource, so a
// trail always slopes toward the find even when decay is tiny.
const trailFalloffBias = 0.01

// Ant is a single agent. While alive it is addressed by coordinate through
// the world's directory; there is no separate identity.
type Ant struct {
	pos             Coord
	breed           Breed
	power           float64
	state           AntState
	stepsSinceFound int
	dead            bool
}

// chooseTarget runs the decision state machine over the ant's 3x3 torus
// neighborhood and returns the chosen coordinate together with the cell
// state observed there at decision time.
func (a *Ant) chooseTarget(w *World) (Coord, CellState) {
	ns := w.grid.Neighborhood(a.pos)
	var idx int
	if a.state == StateReturning {
		idx = a.chooseReturning(w, &ns)
	} else {
		idx = a.chooseForaging(w, &ns)
	}
	return ns[idx].Pos, ns[idx].Cell
}

// chooseForaging inspects the neighborhood in priority order: resources,
// then opposing ants, then empty cells along the strongest trail. With
// nothing actionable (everything held by its own breed) it picks any of the
// eight cells, which resolves as cooperation.
func (a *Ant) chooseForaging(w *World, ns *[8]NeighborReading) int {
	if cand := neighborIndices(ns, func(r NeighborReading) bool { return r.Cell == CellResource }); len(cand) > 0 {
		return pickIndex(w.rng, cand)
	}

	enemy := CellOf(a.breed.Opposite())
	if cand := neighborIndices(ns, func(r NeighborReading) bool { return r.Cell == enemy }); len(cand) > 0 {
		return pickIndex(w.rng, cand)
	}

	empty := neighborIndices(ns, func(r NeighborReading) bool { return r.Cell == CellEmpty })
	if len(empty) > 0 {
		maxScent := 0.0
		for _, i := range empty {
			if ns[i].Scent > maxScent {
				maxScent = ns[i].Scent
			}
		}
		if maxScent <= w.cfg.ScentThreshold {
			// No trail worth following, wander.
			return pickIndex(w.rng, empty)
		}
		best := empty[:0]
		for _, i := range empty {
			if ns[i].Scent == maxScent {
				best = append(best, i)
			}
		}
		return pickIndex(w.rng, best)
	}

	return w.rng.Intn(len(ns))
}

// chooseReturning lays a trail mark at the current cell, then moves through
// empty cells toward the home center, preferring scented ones among those
// at minimal toroidal Chebyshev distance. Within one cell of the center the
// delivery is done: the ant flips back to foraging and scatters.
func (a *Ant) chooseReturning(w *World, ns *[8]NeighborReading) int {
	mark := w.cfg.ScentDeposit - float64(a.stepsSinceFound)*(w.decayRate+trailFalloffBias)
	w.grid.RaiseScent(a.pos, mark)

	center := w.center(a.breed)
	size := w.grid.Size()
	if torusChebyshev(a.pos, center, size) <= 1 {
		a.state = StateForaging
		return w.rng.Intn(len(ns))
	}

	var idx int
	empty := neighborIndices(ns, func(r NeighborReading) bool { return r.Cell == CellEmpty })
	if len(empty) == 0 {
		idx = w.rng.Intn(len(ns))
	} else {
		minDist := size
		for _, i := range empty {
			if d := torusChebyshev(ns[i].Pos, center, size); d < minDist {
				minDist = d
			}
		}
		cand := empty[:0]
		for _, i := range empty {
			if torusChebyshev(ns[i].Pos, center, size) == minDist {
				cand = append(cand, i)
			}
		}
		maxScent := 0.0
		for _, i := range cand {
			if ns[i].Scent > maxScent {
				maxScent = ns[i].Scent
			}
		}
		if maxScent > 0 {
			best := cand[:0]
			for _, i := range cand {
				if ns[i].Scent == maxScent {
					best = append(best, i)
				}
			}
			cand = best
		}
		idx = pickIndex(w.rng, cand)
	}
	a.stepsSinceFound++
	return idx
}

// neighborIndices collects the indices of neighborhood cells satisfying the
// predicate, preserving the resolver's fixed ordering.
func neighborIndices(ns *[8]NeighborReading, pred func(NeighborReading) bool) []int {
	out := make([]int, 0, len(ns))
	for i, r := range ns {
		if pred(r) {
			out = append(out, i)
		}
	}
	return out
}

// pickIndex draws uniformly among candidate indices. Callers must pass a
// non-empty slice.
func pickIndex(rng *rand.Rand, candidates []int) int {
	return candidates[rng.Intn(len(candidates))]
}

// torusAxisDist is the shortest distance between two values on one wrapped
// axis: the minimum of the direct delta and the two wrap-around deltas.
func torusAxisDist(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrapped := size - d; wrapped < d {
		d = wrapped
	}
	return d
}

// torusChebyshev is the Chebyshev distance on the torus: the maximum of the
// per-axis shortest distances.
func torusChebyshev(a, b Coord, size int) int {
	dx := torusAxisDist(a.X, b.X, size)
	dy := torusAxisDist(a.Y, b.Y, size)
	if dx > dy {
		return dx
	}
	return dy
}
