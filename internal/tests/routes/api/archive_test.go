package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticArchive struct {
	games []models.FinishedGame
	err   error
}

func (a staticArchive) Record(context.Context, models.FinishedGame) error {
	return a.err
}

func (a staticArchive) Recent(_ context.Context, limit int) ([]models.FinishedGame, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.games[:min(limit, len(a.games))], nil
}

func (a staticArchive) Stats(context.Context) (models.ArchiveStats, error) {
	if a.err != nil {
		return models.ArchiveStats{}, a.err
	}

	var stats models.ArchiveStats
	for _, game := range a.games {
		stats.Total++
		switch game.Winner {
		case "white":
			stats.WhiteWins++
		case "black":
			stats.BlackWins++
		case "draw":
			stats.Draws++
		}
	}
	return stats, nil
}

func TestGetRecentGames(t *testing.T) {
	finishedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	archive := staticArchive{games: []models.FinishedGame{
		{ID: "a", Winner: "white", Turns: 31, FinishedAt: finishedAt},
		{ID: "b", Winner: "draw", Turns: 80, FinishedAt: finishedAt},
		{ID: "c", Winner: "black", Turns: 44, FinishedAt: finishedAt},
	}}
	app := tests.NewTestApp(archive)

	tests := []struct {
		name           string
		query          string
		wantStatusCode int
		wantIDs        []string
	}{
		{
			name:           "default limit",
			wantStatusCode: http.StatusOK,
			wantIDs:        []string{"a", "b", "c"},
		},
		{
			name:           "limited",
			query:          "?limit=2",
			wantStatusCode: http.StatusOK,
			wantIDs:        []string{"a", "b"},
		},
		{
			name:           "limit too low",
			query:          "?limit=0",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "limit too high",
			query:          "?limit=201",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodGet, "/api/archive"+tt.query, nil, "test-token")

			if tt.wantStatusCode != http.StatusOK {
				defer resp.Body.Close()
				assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
				return
			}

			require.Equal(t, http.StatusOK, resp.StatusCode)
			games := decode[[]models.FinishedGame](t, resp)

			ids := []string{}
			for _, game := range games {
				ids = append(ids, game.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetArchiveStats(t *testing.T) {
	archive := staticArchive{games: []models.FinishedGame{
		{ID: "a", Winner: "white"},
		{ID: "b", Winner: "white"},
		{ID: "c", Winner: "draw"},
	}}
	app := tests.NewTestApp(archive)

	resp := doRequest(t, app, http.MethodGet, "/api/archive/stats", nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decode[models.ArchiveStats](t, resp)
	assert.Equal(t, models.ArchiveStats{Total: 3, WhiteWins: 2, Draws: 1}, stats)
}

func TestArchiveUnavailable(t *testing.T) {
	app := tests.NewTestApp(staticArchive{err: errors.New("connection refused")})

	resp := doRequest(t, app, http.MethodGet, "/api/archive/stats", nil, tests.TestToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
