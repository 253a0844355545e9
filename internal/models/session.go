package models

import (
	"fmt"
	"time"

	"github.com/lk16/checkers/internal/checkers"
)

// Session is a game in progress as it is persisted between requests.
type Session struct {
	ID                 string            `json:"id"`
	Snapshot           checkers.Snapshot `json:"snapshot"`
	Progress           checkers.Progress `json:"progress,omitempty"`
	Highlighted        []checkers.Move   `json:"highlighted,omitempty"`
	CapturingMandatory bool              `json:"capturing_mandatory"`
	Turns              int               `json:"turns"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// NewSession creates a session for a game in its starting position.
func NewSession(id string, now time.Time) Session {
	session := Session{
		ID:        id,
		CreatedAt: now,
	}
	session.Update(checkers.NewGame(), now)
	return session
}

// Game restores the game driver from the session.
func (s Session) Game() (*checkers.Game, error) {
	state, err := checkers.StateFromSnapshot(s.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot in session %s: %w", s.ID, err)
	}

	return &checkers.Game{
		State:              state,
		Progress:           s.Progress,
		Highlighted:        s.Highlighted,
		CapturingMandatory: s.CapturingMandatory,
	}, nil
}

// Update copies the game driver into the session.
func (s *Session) Update(game *checkers.Game, now time.Time) {
	s.Snapshot = game.State.Snapshot()
	s.Progress = game.Progress
	s.Highlighted = game.Highlighted
	s.CapturingMandatory = game.CapturingMandatory
	s.UpdatedAt = now
}
