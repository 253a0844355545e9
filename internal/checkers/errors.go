package checkers

import "errors"

var (
	ErrGameOver            = errors.New("game is over")
	ErrInvalidCell         = errors.New("cell is not on the board")
	ErrIllegalContinuation = errors.New("capture sequence must continue with a highlighted cell")
)
