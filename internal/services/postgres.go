package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Load the postgres driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS finished_games (
		id          UUID PRIMARY KEY,
		game_id     UUID NOT NULL,
		winner      TEXT NOT NULL,
		cells       TEXT[] NOT NULL,
		turns       INTEGER NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS finished_games_finished_at_idx ON finished_games (finished_at DESC);
	CREATE INDEX IF NOT EXISTS finished_games_game_id_idx ON finished_games (game_id);
`

// InitPostgres initializes the database connection and creates the schema if needed.
func InitPostgres(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return db, nil
}
