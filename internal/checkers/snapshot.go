package checkers

import (
	"encoding/json"
	"errors"
	"fmt"
)

const maxPiecesPerSide = 12

// Snapshot is the serialized form of a State.
type Snapshot struct {
	Cells       [NumCells]Cell `json:"cells"`
	Turn        Side           `json:"turn"`
	Winner      Winner         `json:"winner,omitempty"`
	DrawCounter *DrawCounter   `json:"drawCounter,omitempty"`
}

// Snapshot returns the serialized form of the state.
func (s State) Snapshot() Snapshot {
	clone := s.Clone()
	return Snapshot{
		Cells:       clone.Board,
		Turn:        clone.Turn,
		Winner:      clone.Winner,
		DrawCounter: clone.DrawCounter,
	}
}

// StateFromSnapshot validates a snapshot and returns the state it describes.
func StateFromSnapshot(snap Snapshot) (State, error) {
	if err := snap.Validate(); err != nil {
		return State{}, err
	}

	state := State{
		Board:       snap.Cells,
		Turn:        snap.Turn,
		Winner:      snap.Winner,
		DrawCounter: snap.DrawCounter,
	}
	return state.Clone(), nil
}

// Validate checks the board layout, piece counts and draw counter of the snapshot.
func (snap Snapshot) Validate() error {
	counts := map[Side]int{}

	for i, c := range snap.Cells {
		if c < Absent || c > BlackKing {
			return fmt.Errorf("cell %d: invalid value %d", i, c)
		}

		if !IsDark(i) {
			if c != Absent {
				return fmt.Errorf("cell %d: light square must be absent, got %s", i, c)
			}
			continue
		}

		if c == Absent {
			return fmt.Errorf("cell %d: dark square cannot be absent", i)
		}

		if side, ok := SideOf(c); ok {
			counts[side]++
		}
	}

	for _, side := range [2]Side{White, Black} {
		if counts[side] > maxPiecesPerSide {
			return fmt.Errorf("%s has %d pieces, at most %d allowed", side, counts[side], maxPiecesPerSide)
		}
	}

	if snap.Turn != White && snap.Turn != Black {
		return fmt.Errorf("invalid turn %d", snap.Turn)
	}

	if snap.DrawCounter != nil && snap.DrawCounter.Count < 1 {
		return errors.New("draw counter count must be at least 1")
	}

	return nil
}

// Equal checks if two snapshots are structurally equal.
func (snap Snapshot) Equal(other Snapshot) bool {
	a := State{Board: snap.Cells, Turn: snap.Turn, Winner: snap.Winner, DrawCounter: snap.DrawCounter}
	b := State{Board: other.Cells, Turn: other.Turn, Winner: other.Winner, DrawCounter: other.DrawCounter}
	return a.Equal(b)
}

var cellNames = map[Cell]string{
	Free:      " ",
	WhiteMan:  "w",
	BlackMan:  "b",
	WhiteKing: "W",
	BlackKing: "B",
}

// MarshalJSON encodes absent cells as null and all others as a one-character string.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c == Absent {
		return []byte("null"), nil
	}

	name, ok := cellNames[c]
	if !ok {
		return nil, fmt.Errorf("invalid cell value %d", c)
	}
	return json.Marshal(name)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Absent
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("cell must be a string or null: %w", err)
	}

	for cell, n := range cellNames {
		if n == name {
			*c = cell
			return nil
		}
	}
	return fmt.Errorf("invalid cell %q", name)
}

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("side must be a string: %w", err)
	}

	side, err := ParseSide(name)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

func (w Winner) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Winner) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*w = NoWinner
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("winner must be a string: %w", err)
	}

	winner, err := ParseWinner(name)
	if err != nil {
		return err
	}
	*w = winner
	return nil
}

type moveJSON struct {
	To        int  `json:"to"`
	Captured  *int `json:"captured"`
	Direction int  `json:"direction"`
}

// MarshalJSON encodes the direction as its flat index offset and a missing capture as null.
func (m Move) MarshalJSON() ([]byte, error) {
	raw := moveJSON{To: m.To, Direction: m.Direction.Delta()}
	if m.IsCapture() {
		captured := m.Captured
		raw.Captured = &captured
	}
	return json.Marshal(raw)
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var raw moveJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d, err := DirectionFromDelta(raw.Direction)
	if err != nil {
		return err
	}

	*m = Move{To: raw.To, Captured: NoCell, Direction: d}
	if raw.Captured != nil {
		m.Captured = *raw.Captured
	}
	return nil
}
