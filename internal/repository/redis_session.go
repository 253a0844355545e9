package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/config"
	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/services"
	"github.com/redis/go-redis/v9"
)

const gameKeyPrefix = "game:"

func gameKey(id string) string {
	return gameKeyPrefix + id
}

func historyKey(id string) string {
	return gameKeyPrefix + id + ":history"
}

// RedisSessionStore keeps sessions as JSON values and undo history as lists.
type RedisSessionStore struct {
	redis *redis.Client
}

func NewRedisSessionStoreFromServices(services *services.Services) *RedisSessionStore {
	return &RedisSessionStore{
		redis: services.Redis,
	}
}

// Create stores a new session, failing if the ID is taken.
func (repo *RedisSessionStore) Create(ctx context.Context, session models.Session) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	created, err := repo.redis.SetNX(ctx, gameKey(session.ID), jsonData, config.SessionTTL).Result()
	if err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	if !created {
		return ErrGameExists
	}

	return nil
}

// Load retrieves a session by ID.
func (repo *RedisSessionStore) Load(ctx context.Context, id string) (models.Session, error) {
	jsonData, err := repo.redis.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrGameNotFound
	}

	if err != nil {
		return models.Session{}, fmt.Errorf("error getting session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(jsonData, &session); err != nil {
		return models.Session{}, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return session, nil
}

// Save overwrites a session and resets the TTL of the session and its history.
func (repo *RedisSessionStore) Save(ctx context.Context, session models.Session) error {
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	pipe := repo.redis.TxPipeline()
	pipe.Set(ctx, gameKey(session.ID), jsonData, config.SessionTTL)
	pipe.Expire(ctx, historyKey(session.ID), config.SessionTTL)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// PushHistory appends a snapshot to the undo stack, dropping the oldest beyond MaxUndoDepth.
func (repo *RedisSessionStore) PushHistory(ctx context.Context, id string, snapshot checkers.Snapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}

	key := historyKey(id)

	pipe := repo.redis.TxPipeline()
	pipe.RPush(ctx, key, jsonData)
	pipe.LTrim(ctx, key, -config.MaxUndoDepth, -1)
	pipe.Expire(ctx, key, config.SessionTTL)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error pushing history: %w", err)
	}

	return nil
}

// PopHistory removes and returns the most recent snapshot of the undo stack.
func (repo *RedisSessionStore) PopHistory(ctx context.Context, id string) (checkers.Snapshot, error) {
	jsonData, err := repo.redis.RPop(ctx, historyKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return checkers.Snapshot{}, ErrHistoryEmpty
	}

	if err != nil {
		return checkers.Snapshot{}, fmt.Errorf("error popping history: %w", err)
	}

	var snapshot checkers.Snapshot
	if err = json.Unmarshal(jsonData, &snapshot); err != nil {
		return checkers.Snapshot{}, fmt.Errorf("error unmarshaling snapshot: %w", err)
	}

	return snapshot, nil
}

// ClearHistory drops the undo stack.
func (repo *RedisSessionStore) ClearHistory(ctx context.Context, id string) error {
	if err := repo.redis.Del(ctx, historyKey(id)).Err(); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}
	return nil
}
