package antwar

import "testing"

func TestBreed_Opposite(t *testing.T) {
	if BreedRed.Opposite() != BreedBlue {
		t.Error("Expected red's opposite to be blue")
	}
	if BreedBlue.Opposite() != BreedRed {
		t.Error("Expected blue's opposite to be red")
	}
	for _, b := range []Breed{BreedRed, BreedBlue} {
		if b.Opposite().Opposite() != b {
			t.Errorf("Opposite is not an involution for %s", b)
		}
	}
}

func TestCellOf(t *testing.T) {
	if CellOf(BreedRed) != CellRedAnt {
		t.Error("Expected CellOf(red) to be the red occupancy state")
	}
	if CellOf(BreedBlue) != CellBlueAnt {
		t.Error("Expected CellOf(blue) to be the blue occupancy state")
	}
}

func TestCellState_Occupied(t *testing.T) {
	if CellEmpty.Occupied() || CellResource.Occupied() {
		t.Error("Empty and resource cells must not count as occupied")
	}
	if !CellRedAnt.Occupied() || !CellBlueAnt.Occupied() {
		t.Error("Ant cells must count as occupied")
	}
}

func TestCellState_Occupant(t *testing.T) {
	if b, ok := CellRedAnt.Occupant(); !ok || b != BreedRed {
		t.Errorf("Expected red occupant, got %v/%v", b, ok)
	}
	if b, ok := CellBlueAnt.Occupant(); !ok || b != BreedBlue {
		t.Errorf("Expected blue occupant, got %v/%v", b, ok)
	}
	if _, ok := CellEmpty.Occupant(); ok {
		t.Error("Empty cell must have no occupant")
	}
	if _, ok := CellResource.Occupant(); ok {
		t.Error("Resource cell must have no occupant")
	}
}
