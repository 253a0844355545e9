package api

import (
	"net/http"
	"testing"

	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	app := tests.NewTestApp(nil)

	game := createGame(t, app)

	assert.NotEmpty(t, game.ID)
	assert.Equal(t, checkers.White, game.State.Turn)
	assert.Equal(t, checkers.NoWinner, game.State.Winner)
	assert.Equal(t, checkers.NewState().String()[:checkers.NumCells/2], game.Board)
	assert.Nil(t, game.Selected)
	assert.Empty(t, game.Highlighted)
	assert.Equal(t, 0, game.Turns)
}

func TestAuth(t *testing.T) {
	app := tests.NewTestApp(nil)

	tests := []struct {
		name           string
		token          string
		basicAuth      bool
		wantStatusCode int
	}{
		{
			name:           "no auth",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong token",
			token:          "wrong",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "token",
			token:          "test-token",
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "basic auth",
			basicAuth:      true,
			wantStatusCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/games", nil)
			require.NoError(t, err)

			if tt.token != "" {
				req.Header.Set("x-token", tt.token)
			}
			if tt.basicAuth {
				req.SetBasicAuth("test-user", "test-password")
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}

func TestGetGame(t *testing.T) {
	app := tests.NewTestApp(nil)
	game := createGame(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/games/"+game.ID, nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[models.GameView](t, resp)
	assert.Equal(t, game.ID, got.ID)
	assert.True(t, game.State.Equal(got.State))

	resp = doRequest(t, app, http.MethodGet, "/api/games/missing", nil, tests.TestToken)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetDestinations(t *testing.T) {
	app := tests.NewTestApp(nil)
	game := createGame(t, app)

	tests := []struct {
		name           string
		cell           string
		wantStatusCode int
		wantTo         []int
	}{
		{
			name:           "white man",
			cell:           "44",
			wantStatusCode: http.StatusOK,
			wantTo:         []int{37, 35},
		},
		{
			name:           "blocked white man",
			cell:           "58",
			wantStatusCode: http.StatusOK,
			wantTo:         []int{},
		},
		{
			name:           "black man",
			cell:           "17",
			wantStatusCode: http.StatusOK,
			wantTo:         []int{},
		},
		{
			name:           "off the board",
			cell:           "64",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "not a number",
			cell:           "e4",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/api/games/" + game.ID + "/destinations/" + tt.cell
			resp := doRequest(t, app, http.MethodGet, url, nil, "test-token")

			if tt.wantStatusCode != http.StatusOK {
				defer resp.Body.Close()
				assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
				return
			}

			require.Equal(t, http.StatusOK, resp.StatusCode)
			got := decode[models.DestinationsResponse](t, resp)

			to := []int{}
			for _, move := range got.Destinations {
				to = append(to, move.To)
			}
			assert.ElementsMatch(t, tt.wantTo, to)
		})
	}
}

func TestClickUndoRestart(t *testing.T) {
	app := tests.NewTestApp(nil)
	game := createGame(t, app)
	base := "/api/games/" + game.ID

	// Select the white man on (5,4)
	resp := doRequest(t, app, http.MethodPost, base+"/click", cellRequest(44), tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	clicked := decode[models.ClickResponse](t, resp)
	assert.Nil(t, clicked.Moved)
	assert.False(t, clicked.TurnEnded)
	require.NotNil(t, clicked.Game.Selected)
	assert.Equal(t, 44, *clicked.Game.Selected)
	assert.Len(t, clicked.Game.Highlighted, 2)

	// Move it to (4,5)
	row, col := 4, 5
	resp = doRequest(t, app, http.MethodPost, base+"/click", models.ClickRequest{Row: &row, Col: &col}, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	moved := decode[models.ClickResponse](t, resp)
	require.NotNil(t, moved.Moved)
	assert.Equal(t, 37, moved.Moved.To)
	assert.True(t, moved.TurnEnded)
	assert.Equal(t, checkers.Black, moved.Game.State.Turn)
	assert.Equal(t, checkers.WhiteMan, moved.Game.State.Cells[37])
	assert.Equal(t, checkers.Free, moved.Game.State.Cells[44])
	assert.Equal(t, 1, moved.Game.Turns)

	// Undo restores the starting position
	resp = doRequest(t, app, http.MethodPost, base+"/undo", nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	undone := decode[models.GameView](t, resp)
	assert.True(t, game.State.Equal(undone.State))
	assert.Equal(t, 0, undone.Turns)

	resp = doRequest(t, app, http.MethodPost, base+"/undo", nil, tests.TestToken)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Restart after another move
	resp = doRequest(t, app, http.MethodPost, base+"/click", cellRequest(42), tests.TestToken)
	resp.Body.Close()
	resp = doRequest(t, app, http.MethodPost, base+"/click", cellRequest(33), tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, base+"/restart", nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	restarted := decode[models.GameView](t, resp)
	assert.True(t, game.State.Equal(restarted.State))
	assert.Equal(t, 0, restarted.Turns)
}

func TestClickErrors(t *testing.T) {
	app := tests.NewTestApp(nil)
	game := createGame(t, app)
	base := "/api/games/" + game.ID

	outside := 9
	zero := 0

	tests := []struct {
		name           string
		url            string
		body           any
		wantStatusCode int
	}{
		{
			name:           "missing cell",
			url:            base + "/click",
			body:           models.ClickRequest{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "row and col off the board",
			url:            base + "/click",
			body:           models.ClickRequest{Row: &outside, Col: &zero},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "cell off the board",
			url:            base + "/click",
			body:           cellRequest(-1),
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown game",
			url:            "/api/games/missing/click",
			body:           cellRequest(44),
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, tt.url, tt.body, "test-token")
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
