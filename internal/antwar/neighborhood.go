package antwar

// NeighborReading is one cell of an ant's 3x3 neighborhood: its wrapped
// coordinate, cell state and scent intensity at observation time.
type NeighborReading struct {
	Pos   Coord
	Cell  CellState
	Scent float64
}

// Neighborhood returns the 8 torus-adjacent cells of p in fixed row-major
// order, the center excluded:
//
//	0 1 2
//	3 . 4
//	5 6 7
//
// Tie-breaking elsewhere draws uniformly among qualifying indices, but the
// ordering itself must stay stable across calls.
func (g *Grid) Neighborhood(p Coord) [8]NeighborReading {
	var out [8]NeighborReading
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			np := g.Wrap(Coord{X: p.X + dx, Y: p.Y + dy})
			out[i] = NeighborReading{Pos: np, Cell: g.Cell(np), Scent: g.Scent(np)}
			i++
		}
	}
	return out
}
