package antwar

import (
	"math/rand"
	"testing"
)

func TestResourceField_RelocateStaysOffCenterRow(t *testing.T) {
	cfg := newTestConfig()
	cfg.NumResources = 3
	rf := newResourceField(cfg)
	g := NewGrid(cfg.GridSize)
	rng := rand.New(rand.NewSource(1))
	mid := cfg.GridSize / 2

	for trial := 0; trial < 200; trial++ {
		rf.relocate(g, rng)
		if len(rf.sources) != cfg.NumResources {
			t.Fatalf("Expected %d sources, got %d", cfg.NumResources, len(rf.sources))
		}
		for _, src := range rf.sources {
			if src.X < 0 || src.X >= cfg.GridSize || src.Y < 0 || src.Y >= cfg.GridSize {
				t.Fatalf("Source %v out of range", src)
			}
			if src.Y == mid {
				t.Fatalf("Source %v landed on the home center row", src)
			}
		}
	}
}

func TestResourceField_RelocatesOnPeriodBoundary(t *testing.T) {
	cfg := newTestConfig()
	cfg.NumResources = 2
	cfg.ResourceRefreshTicks = 5
	cfg.ResourceProbability = 0
	w := newTestWorld(t, cfg)
	rf := w.resources

	sentinel := []Coord{{X: 1, Y: 1}, {X: 2, Y: 2}}
	rf.sources = append(rf.sources[:0], sentinel...)

	w.tick = 1
	rf.step(w)
	if rf.sources[0] != sentinel[0] || rf.sources[1] != sentinel[1] {
		t.Error("Expected sources untouched off the period boundary")
	}

	w.tick = 5
	rf.step(w)
	if rf.sources[0] == sentinel[0] && rf.sources[1] == sentinel[1] {
		t.Error("Expected sources redrawn on the period boundary")
	}
}

func TestResourceField_MaterializeSkipsOccupiedSources(t *testing.T) {
	cfg := newTestConfig()
	cfg.NumResources = 2
	cfg.ResourceProbability = 1
	w := newTestWorld(t, cfg)
	rf := w.resources

	occupied := Coord{X: 2, Y: 2}
	free := Coord{X: 7, Y: 7}
	rf.sources = append(rf.sources[:0], occupied, free)
	placeAnt(w, occupied, BreedRed, 90)

	w.tick = 1 // off the relocation boundary
	rf.step(w)

	if w.grid.Cell(occupied) != CellRedAnt {
		t.Errorf("Expected the occupied source to keep its ant, got %s", w.grid.Cell(occupied))
	}
	if w.grid.Cell(free) != CellResource {
		t.Errorf("Expected the free source to materialize a resource, got %s", w.grid.Cell(free))
	}
}

func TestResourceField_ResourcePersistsUntilEaten(t *testing.T) {
	cfg := newTestConfig()
	cfg.NumResources = 1
	cfg.ResourceProbability = 0
	w := newTestWorld(t, cfg)

	res := Coord{X: 7, Y: 7}
	w.grid.SetCell(res, CellResource)

	for i := 0; i < 10; i++ {
		w.Step()
	}
	if w.grid.Cell(res) != CellResource {
		t.Errorf("Expected an untouched resource to persist, got %s", w.grid.Cell(res))
	}
}
