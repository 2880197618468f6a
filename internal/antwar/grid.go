package antwar

import "fmt"

// ScentMax is the upper bound of scent intensity per cell.
const ScentMax = 100.0

// Grid is the toroidal lattice of cell states plus the parallel scent field.
// Cells and scent are stored as flat slices indexed x*size+y.
type Grid struct {
	size  int
	cells []CellState
	scent []float64
}

// NewGrid creates an empty grid of the given side length.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]CellState, size*size),
		scent: make([]float64, size*size),
	}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Wrap normalizes a coordinate that is at most one cell out of range,
// re-entering from the opposite edge. Coordinates further out than that
// indicate a corrupted position and are fatal.
func (g *Grid) Wrap(p Coord) Coord {
	if p.X < 0 {
		p.X += g.size
	} else if p.X >= g.size {
		p.X -= g.size
	}
	if p.Y < 0 {
		p.Y += g.size
	} else if p.Y >= g.size {
		p.Y -= g.size
	}
	if p.X < 0 || p.X >= g.size || p.Y < 0 || p.Y >= g.size {
		panic(fmt.Sprintf("antwar: coordinate %v out of range after wrap (size %d)", p, g.size))
	}
	return p
}

func (g *Grid) idx(p Coord) int {
	if p.X < 0 || p.X >= g.size || p.Y < 0 || p.Y >= g.size {
		panic(fmt.Sprintf("antwar: coordinate %v outside %dx%d grid", p, g.size, g.size))
	}
	return p.X*g.size + p.Y
}

// Cell returns the state of the cell at p.
func (g *Grid) Cell(p Coord) CellState {
	return g.cells[g.idx(p)]
}

// SetCell sets the state of the cell at p.
func (g *Grid) SetCell(p Coord, s CellState) {
	g.cells[g.idx(p)] = s
}

// Scent returns the scent intensity at p.
func (g *Grid) Scent(p Coord) float64 {
	return g.scent[g.idx(p)]
}

// AddScent adds delta to the scent at p, clamped to [0, ScentMax].
func (g *Grid) AddScent(p Coord, delta float64) {
	i := g.idx(p)
	v := g.scent[i] + delta
	if v < 0 {
		v = 0
	} else if v > ScentMax {
		v = ScentMax
	}
	g.scent[i] = v
}

// RaiseScent sets the scent at p to target if target is higher than the
// current value. A fresher mark never weakens an existing stronger one.
func (g *Grid) RaiseScent(p Coord, target float64) {
	if target > ScentMax {
		target = ScentMax
	}
	i := g.idx(p)
	if target > g.scent[i] {
		g.scent[i] = target
	}
}

// DecayScent subtracts rate from every cell, flooring at zero. The pass is
// skipped entirely while the whole field is already zero.
func (g *Grid) DecayScent(rate float64) {
	sum := 0.0
	for _, v := range g.scent {
		sum += v
	}
	if sum <= 0 {
		return
	}
	for i, v := range g.scent {
		v -= rate
		if v < 0 {
			v = 0
		}
		g.scent[i] = v
	}
}
