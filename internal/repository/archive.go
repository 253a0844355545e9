package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/services"
)

// Archive records finished games.
type Archive interface {
	Record(ctx context.Context, game models.FinishedGame) error
	Recent(ctx context.Context, limit int) ([]models.FinishedGame, error)
	Stats(ctx context.Context) (models.ArchiveStats, error)
}

// PostgresArchive stores finished games in the finished_games table.
type PostgresArchive struct {
	postgres *sqlx.DB
}

func NewPostgresArchiveFromServices(services *services.Services) *PostgresArchive {
	return &PostgresArchive{
		postgres: services.Postgres,
	}
}

type finishedGameRow struct {
	ID         string         `db:"id"`
	GameID     string         `db:"game_id"`
	Winner     string         `db:"winner"`
	Cells      pq.StringArray `db:"cells"`
	Turns      int            `db:"turns"`
	FinishedAt time.Time      `db:"finished_at"`
}

// Record inserts a finished game. Every finish of a session is a separate row.
func (repo *PostgresArchive) Record(ctx context.Context, game models.FinishedGame) error {
	query := `
		INSERT INTO finished_games (id, game_id, winner, cells, turns, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	cells := strings.Split(game.Board, "")

	_, err := repo.postgres.ExecContext(
		ctx, query, game.ID, game.GameID, game.Winner, pq.Array(cells), game.Turns, game.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("error recording finished game: %w", err)
	}

	return nil
}

// Recent returns the most recently finished games, newest first.
func (repo *PostgresArchive) Recent(ctx context.Context, limit int) ([]models.FinishedGame, error) {
	query := `
		SELECT id, game_id, winner, cells, turns, finished_at
		FROM finished_games
		ORDER BY finished_at DESC
		LIMIT $1
	`

	var rows []finishedGameRow
	if err := repo.postgres.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("error querying finished games: %w", err)
	}

	games := make([]models.FinishedGame, len(rows))
	for i, row := range rows {
		games[i] = models.FinishedGame{
			ID:         row.ID,
			GameID:     row.GameID,
			Winner:     row.Winner,
			Board:      strings.Join(row.Cells, ""),
			Turns:      row.Turns,
			FinishedAt: row.FinishedAt,
		}
	}

	return games, nil
}

// Stats counts finished games by result.
func (repo *PostgresArchive) Stats(ctx context.Context) (models.ArchiveStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE winner = 'white') AS white_wins,
			COUNT(*) FILTER (WHERE winner = 'black') AS black_wins,
			COUNT(*) FILTER (WHERE winner = 'draw') AS draws
		FROM finished_games
	`

	var stats models.ArchiveStats
	if err := repo.postgres.GetContext(ctx, &stats, query); err != nil {
		return models.ArchiveStats{}, fmt.Errorf("error querying archive stats: %w", err)
	}

	return stats, nil
}

// NoopArchive discards finished games. It is used when no database is configured.
type NoopArchive struct{}

func (NoopArchive) Record(context.Context, models.FinishedGame) error {
	return nil
}

func (NoopArchive) Recent(context.Context, int) ([]models.FinishedGame, error) {
	return []models.FinishedGame{}, nil
}

func (NoopArchive) Stats(context.Context) (models.ArchiveStats, error) {
	return models.ArchiveStats{}, nil
}
