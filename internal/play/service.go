package play

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/repository"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// Service runs games on behalf of the HTTP and websocket handlers. Every mutation is written
// through to the session store before it returns.
type Service struct {
	sessions repository.SessionStore
	archive  repository.Archive
	now      func() time.Time

	mu    sync.Mutex
	locks map[string]*gameLock
}

// gameLock is dropped from Service.locks once no operation holds or waits for it.
type gameLock struct {
	sync.Mutex
	refs int
}

// NewService creates a Service on top of the given stores.
func NewService(sessions repository.SessionStore, archive repository.Archive) *Service {
	return &Service{
		sessions: sessions,
		archive:  archive,
		now:      time.Now,
		locks:    make(map[string]*gameLock),
	}
}

// lock serializes all operations on one game within this process.
func (s *Service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &gameLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Create starts a new game in the starting position.
func (s *Service) Create(ctx context.Context) (models.Session, error) {
	session := models.NewSession(uuid.NewString(), s.now())

	if err := s.sessions.Create(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("failed to create game: %w", err)
	}

	slog.Info("Created game", "id", session.ID)
	return session, nil
}

// Get returns a game by ID.
func (s *Service) Get(ctx context.Context, id string) (models.Session, error) {
	return s.sessions.Load(ctx, id)
}

// Destinations returns the candidates of a cell without changing the game.
func (s *Service) Destinations(ctx context.Context, id string, cell int) ([]checkers.Move, error) {
	session, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	game, err := session.Game()
	if err != nil {
		return nil, err
	}

	return game.Destinations(cell)
}

// Click applies a click on a cell. The position at the start of a turn is pushed onto the
// undo history when the turn's first leg is played.
func (s *Service) Click(ctx context.Context, id string, cell int) (checkers.ClickResult, models.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.sessions.Load(ctx, id)
	if err != nil {
		return checkers.ClickResult{}, models.Session{}, err
	}

	game, err := session.Game()
	if err != nil {
		return checkers.ClickResult{}, models.Session{}, err
	}

	turnStart := game.State.Snapshot()
	opening := !game.Continuing()

	result, err := game.Click(cell)
	if err != nil {
		return checkers.ClickResult{}, models.Session{}, err
	}

	if result.Moved != nil && opening {
		if err = s.sessions.PushHistory(ctx, id, turnStart); err != nil {
			return checkers.ClickResult{}, models.Session{}, err
		}
	}

	if result.TurnEnded {
		session.Turns++
	}

	session.Update(game, s.now())
	if err = s.sessions.Save(ctx, session); err != nil {
		return checkers.ClickResult{}, models.Session{}, err
	}

	if result.Evaluation != nil && result.Evaluation.Outcome != checkers.NoWinner {
		s.recordFinished(ctx, session, game.State)
	}

	return result, session, nil
}

func (s *Service) recordFinished(ctx context.Context, session models.Session, state checkers.State) {
	slog.Info("Game over", "id", session.ID, "winner", state.Winner.String(), "turns", session.Turns)

	finished := models.FinishedGame{
		ID:         uuid.NewString(),
		GameID:     session.ID,
		Winner:     state.Winner.String(),
		Board:      state.Board.String(),
		Turns:      session.Turns,
		FinishedAt: session.UpdatedAt,
	}

	// The game itself is already saved, a missing archive row is not fatal.
	if err := s.archive.Record(ctx, finished); err != nil {
		slog.Error("Failed to archive game", "id", session.ID, "error", err)
	}
}

// Undo restores the position at the start of the previous turn, or at the start of the
// current turn when a capture sequence is in progress.
func (s *Service) Undo(ctx context.Context, id string) (models.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.sessions.Load(ctx, id)
	if err != nil {
		return models.Session{}, err
	}

	snapshot, err := s.sessions.PopHistory(ctx, id)
	if errors.Is(err, repository.ErrHistoryEmpty) {
		return models.Session{}, ErrNothingToUndo
	}

	if err != nil {
		return models.Session{}, err
	}

	state, err := checkers.StateFromSnapshot(snapshot)
	if err != nil {
		return models.Session{}, fmt.Errorf("invalid snapshot in history of %s: %w", id, err)
	}

	if len(session.Progress) <= 1 && session.Turns > 0 {
		session.Turns--
	}

	session.Update(checkers.NewGameFromState(state), s.now())
	if err = s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// Restart puts the game back in the starting position and clears its history.
func (s *Service) Restart(ctx context.Context, id string) (models.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.sessions.Load(ctx, id)
	if err != nil {
		return models.Session{}, err
	}

	restarted := models.NewSession(id, s.now())
	restarted.CreatedAt = session.CreatedAt

	if err = s.sessions.ClearHistory(ctx, id); err != nil {
		return models.Session{}, err
	}

	if err = s.sessions.Save(ctx, restarted); err != nil {
		return models.Session{}, err
	}

	return restarted, nil
}

// RecentGames returns the most recently finished games.
func (s *Service) RecentGames(ctx context.Context, limit int) ([]models.FinishedGame, error) {
	return s.archive.Recent(ctx, limit)
}

// ArchiveStats counts finished games by result.
func (s *Service) ArchiveStats(ctx context.Context) (models.ArchiveStats, error) {
	return s.archive.Stats(ctx)
}
