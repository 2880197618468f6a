package antwar

import (
	"encoding/json"
	"fmt"
)

// AntView is the read-only projection of a live ant exposed in snapshots.
type AntView struct {
	Pos   Coord    `json:"pos"`
	Breed Breed    `json:"breed"`
	Power float64  `json:"power"`
	State AntState `json:"state"`
}

// Snapshot is a point-in-time capture of the world handed to renderers and
// other external collaborators. Cells and scent are flat slices indexed
// x*size+y, matching the grid layout.
type Snapshot struct {
	Tick       int         `json:"tick"`
	Phase      Phase       `json:"phase,omitempty"`
	Size       int         `json:"size"`
	Cells      []CellState `json:"cells"`
	Scent      []float64   `json:"scent"`
	Ants       []AntView   `json:"ants"`
	Sources    []Coord     `json:"sources"`
	RedCenter  Coord       `json:"red_center"`
	BlueCenter Coord       `json:"blue_center"`
}

// Snapshot captures the current state. Ants appear in activation order, red
// list first, so two identically seeded runs produce identical snapshots.
func (w *World) Snapshot(phase Phase) Snapshot {
	s := Snapshot{
		Tick:       w.tick,
		Phase:      phase,
		Size:       w.grid.Size(),
		Cells:      make([]CellState, len(w.grid.cells)),
		Scent:      make([]float64, len(w.grid.scent)),
		Ants:       make([]AntView, 0, len(w.ants)),
		Sources:    make([]Coord, len(w.resources.sources)),
		RedCenter:  w.redCenter,
		BlueCenter: w.blueCenter,
	}
	copy(s.Cells, w.grid.cells)
	copy(s.Scent, w.grid.scent)
	copy(s.Sources, w.resources.sources)
	for _, a := range w.red {
		if !a.dead {
			s.Ants = append(s.Ants, AntView{Pos: a.pos, Breed: a.breed, Power: a.power, State: a.state})
		}
	}
	for _, a := range w.blue {
		if !a.dead {
			s.Ants = append(s.Ants, AntView{Pos: a.pos, Breed: a.breed, Power: a.power, State: a.state})
		}
	}
	return s
}

// ValidateSnapshot checks a snapshot's internal consistency:
//   - cell and scent slices match the declared grid size
//   - scent intensities stay within [0, ScentMax]
//   - every ant sits in range on a cell marked with its breed
//   - no two ants share a coordinate
//   - every occupied cell has a matching ant
//
// Returns an error describing the first violation found, nil otherwise.
func ValidateSnapshot(s Snapshot) error {
	if s.Size <= 0 {
		return fmt.Errorf("snapshot has non-positive size %d", s.Size)
	}
	n := s.Size * s.Size
	if len(s.Cells) != n {
		return fmt.Errorf("snapshot has %d cells, want %d", len(s.Cells), n)
	}
	if len(s.Scent) != n {
		return fmt.Errorf("snapshot has %d scent values, want %d", len(s.Scent), n)
	}
	for i, v := range s.Scent {
		if v < 0 || v > ScentMax {
			return fmt.Errorf("scent at index %d out of bounds: %g", i, v)
		}
	}

	seen := make(map[Coord]Breed, len(s.Ants))
	for i, a := range s.Ants {
		if a.Pos.X < 0 || a.Pos.X >= s.Size || a.Pos.Y < 0 || a.Pos.Y >= s.Size {
			return fmt.Errorf("ant at index %d has out-of-range position %v", i, a.Pos)
		}
		if _, dup := seen[a.Pos]; dup {
			return fmt.Errorf("duplicate ant position: %v", a.Pos)
		}
		seen[a.Pos] = a.Breed
		if got := s.Cells[a.Pos.X*s.Size+a.Pos.Y]; got != CellOf(a.Breed) {
			return fmt.Errorf("cell %v is %s but ant list claims a %s ant there", a.Pos, got, a.Breed)
		}
	}
	for i, c := range s.Cells {
		if breed, ok := c.Occupant(); ok {
			pos := Coord{X: i / s.Size, Y: i % s.Size}
			if got, ok := seen[pos]; !ok || got != breed {
				return fmt.Errorf("cell %v is %s but no matching ant exists", pos, c)
			}
		}
	}
	return nil
}

// EncodeSnapshotJSON encodes a snapshot to JSON format.
func EncodeSnapshotJSON(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshotJSON decodes a snapshot from JSON format.
func DecodeSnapshotJSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}
