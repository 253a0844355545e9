package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/tests"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, app *fiber.App, method, url string, body any, token string) *http.Response {
	t.Helper()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, payload)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-token", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var value T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&value))
	return value
}

func createGame(t *testing.T, app *fiber.App) models.GameView {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/games", nil, tests.TestToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decode[models.GameView](t, resp)
}

func cellRequest(cell int) models.ClickRequest {
	return models.ClickRequest{Cell: &cell}
}
