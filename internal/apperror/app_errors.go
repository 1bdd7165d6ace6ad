package apperror

import "errors"

var (
	ErrInvalidSquare     = errors.New("not a valid square")
	ErrSquareFilled      = errors.New("square is already filled")
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrInputClosed       = errors.New("input closed before the game ended")
)
