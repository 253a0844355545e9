package repository

import (
	"context"
	"errors"

	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/models"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrHistoryEmpty = errors.New("no earlier position")
)

// SessionStore persists games in progress and their undo history.
type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	Load(ctx context.Context, id string) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	PushHistory(ctx context.Context, id string, snapshot checkers.Snapshot) error
	PopHistory(ctx context.Context, id string) (checkers.Snapshot, error)
	ClearHistory(ctx context.Context, id string) error
}
