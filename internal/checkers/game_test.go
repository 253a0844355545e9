package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGame_PlainMove(t *testing.T) {
	game := NewGame()

	result, err := game.Click(44)
	require.NoError(t, err)
	require.Equal(t, []Move{plainMove(35, NorthWest), plainMove(37, NorthEast)}, result.Highlighted)
	require.Equal(t, NewProgress(44), game.Progress)

	result, err = game.Click(37)
	require.NoError(t, err)
	require.True(t, result.TurnEnded)
	require.NotNil(t, result.Moved)
	require.Equal(t, 37, result.Moved.To)
	require.False(t, result.Moved.IsCapture())
	require.NotNil(t, result.Evaluation)
	require.False(t, result.Evaluation.CapturingMandatory)

	require.Equal(t, Free, game.State.Board[44])
	require.Equal(t, WhiteMan, game.State.Board[37])
	require.Equal(t, Black, game.State.Turn)
	require.False(t, game.CapturingMandatory)
	require.Empty(t, game.Progress)
	require.Empty(t, game.Highlighted)
}

func TestGame_SelectWithoutDestinations(t *testing.T) {
	game := NewGame()

	for _, index := range []int{0, 33, 17, 53} {
		result, err := game.Click(index)
		require.NoError(t, err)
		require.Empty(t, result.Highlighted)
		require.Empty(t, game.Progress)
	}
}

func TestGame_Reselect(t *testing.T) {
	game := NewGame()

	_, err := game.Click(44)
	require.NoError(t, err)

	result, err := game.Click(42)
	require.NoError(t, err)
	require.Equal(t, []Move{plainMove(33, NorthWest), plainMove(35, NorthEast)}, result.Highlighted)
	require.Equal(t, NewProgress(42), game.Progress)

	// Clicking an empty square that is not highlighted drops the selection.
	result, err = game.Click(28)
	require.NoError(t, err)
	require.Empty(t, result.Highlighted)
	require.Empty(t, game.Progress)
	require.Equal(t, White, game.State.Turn)
}

func TestGame_MultiCapture(t *testing.T) {
	game := NewGameFromState(State{
		Board: boardWith(t, map[int]Cell{44: WhiteMan, 40: WhiteMan, 37: BlackMan, 21: BlackMan, 1: BlackMan}),
		Turn:  White,
	})
	require.True(t, game.CapturingMandatory)

	// The plain move of 40 is suppressed while a capture exists elsewhere.
	result, err := game.Click(40)
	require.NoError(t, err)
	require.Empty(t, result.Highlighted)

	result, err = game.Click(44)
	require.NoError(t, err)
	require.Equal(t, []Move{{To: 30, Captured: 37, Direction: NorthEast}}, result.Highlighted)

	result, err = game.Click(30)
	require.NoError(t, err)
	require.False(t, result.TurnEnded)
	require.Equal(t, []Move{{To: 12, Captured: 21, Direction: NorthWest}}, result.Highlighted)
	require.True(t, game.Continuing())

	_, err = game.Click(40)
	require.ErrorIs(t, err, ErrIllegalContinuation)

	result, err = game.Click(12)
	require.NoError(t, err)
	require.True(t, result.TurnEnded)
	require.Equal(t, Black, game.State.Turn)
	require.Equal(t, Free, game.State.Board[37])
	require.Equal(t, Free, game.State.Board[21])
	require.Equal(t, WhiteMan, game.State.Board[12])
	require.False(t, game.CapturingMandatory)
}

func TestGame_PromotionEndsTurn(t *testing.T) {
	game := NewGameFromState(State{
		Board: boardWith(t, map[int]Cell{10: WhiteMan, 62: BlackMan, 40: WhiteMan}),
		Turn:  White,
	})

	_, err := game.Click(10)
	require.NoError(t, err)

	result, err := game.Click(1)
	require.NoError(t, err)
	require.True(t, result.Promoted)
	require.True(t, result.TurnEnded)
	require.Equal(t, WhiteKing, game.State.Board[1])
}

func TestGame_LastCaptureWins(t *testing.T) {
	game := NewGameFromState(State{
		Board: boardWith(t, map[int]Cell{44: WhiteMan, 37: BlackMan}),
		Turn:  White,
	})

	_, err := game.Click(44)
	require.NoError(t, err)

	result, err := game.Click(30)
	require.NoError(t, err)
	require.True(t, result.TurnEnded)
	require.Equal(t, WhiteWins, result.Evaluation.Outcome)
	require.Equal(t, WhiteWins, game.State.Winner)

	_, err = game.Click(30)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestGame_PromotedManKeepsCapturingAsKing(t *testing.T) {
	game := NewGameFromState(State{
		Board: boardWith(t, map[int]Cell{21: WhiteMan, 12: BlackMan, 17: BlackMan}),
		Turn:  White,
	})

	_, err := game.Click(21)
	require.NoError(t, err)

	// Reaching the back rank crowns the man without ending the turn.
	result, err := game.Click(3)
	require.NoError(t, err)
	require.True(t, result.Promoted)
	require.False(t, result.TurnEnded)
	require.Equal(t, WhiteKing, game.State.Board[3])

	// The new king flies past 10 to take 17, which a man could not reach.
	require.Equal(t, []Move{{To: 24, Captured: 17, Direction: SouthWest}}, result.Highlighted)

	result, err = game.Click(24)
	require.NoError(t, err)
	require.True(t, result.TurnEnded)
	require.Equal(t, WhiteKing, game.State.Board[24])
	require.Equal(t, Free, game.State.Board[17])
	require.Equal(t, WhiteWins, game.State.Winner)
}

func TestGame_CaptureResetsDrawCounter(t *testing.T) {
	game := NewGameFromState(State{
		Board:       boardWith(t, map[int]Cell{56: WhiteKing, 42: BlackMan, 1: BlackMan}),
		Turn:        White,
		DrawCounter: &DrawCounter{Count: 9, Side: White},
	})

	_, err := game.Click(56)
	require.NoError(t, err)

	result, err := game.Click(35)
	require.NoError(t, err)
	require.True(t, result.TurnEnded)
	require.Equal(t, 1, game.State.DrawCounter.Count)
}

func TestGame_InvalidCell(t *testing.T) {
	game := NewGame()

	_, err := game.Click(64)
	require.ErrorIs(t, err, ErrInvalidCell)

	_, err = game.Destinations(-1)
	require.ErrorIs(t, err, ErrInvalidCell)

	moves, err := game.Destinations(44)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	require.Empty(t, game.Progress)
}
