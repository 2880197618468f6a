package antwar

import "fmt"

// Breed identifies one of the two ant colonies.
type Breed uint8

const (
	BreedRed Breed = iota
	BreedBlue
)

// Opposite returns the opposing breed.
func (b Breed) Opposite() Breed {
	if b == BreedRed {
		return BreedBlue
	}
	return BreedRed
}

func (b Breed) String() string {
	switch b {
	case BreedRed:
		return "red"
	case BreedBlue:
		return "blue"
	default:
		return fmt.Sprintf("Breed(%d)", uint8(b))
	}
}

// CellState is the content of one grid cell.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellResource
	CellRedAnt
	CellBlueAnt
)

// CellOf returns the cell state marking occupancy by the given breed.
func CellOf(b Breed) CellState {
	if b == BreedRed {
		return CellRedAnt
	}
	return CellBlueAnt
}

// Occupied reports whether the cell holds an ant of either breed.
func (c CellState) Occupied() bool {
	return c == CellRedAnt || c == CellBlueAnt
}

// Occupant returns the breed occupying the cell, if any.
func (c CellState) Occupant() (Breed, bool) {
	switch c {
	case CellRedAnt:
		return BreedRed, true
	case CellBlueAnt:
		return BreedBlue, true
	default:
		return 0, false
	}
}

func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellResource:
		return "resource"
	case CellRedAnt:
		return "red"
	case CellBlueAnt:
		return "blue"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(c))
	}
}

// Coord is a grid coordinate. Coordinates held by the world are always
// in range; raw neighbor offsets are normalized through Grid.Wrap.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}
