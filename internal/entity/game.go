package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "Tie"

	// NoPlayer is the turn before the first move and the winner of an unfinished game.
	NoPlayer = ""
)

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   string `json:"player_turn"`
	Winner string `json:"winner"`
	Status string `json:"status"`
	Moves  int    `json:"moves"`
}

// NewGame returns an ongoing game with an empty board and nobody on the move yet.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   NoPlayer,
		Winner: NoPlayer,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// IsMark reports whether value is one of the two player marks.
func IsMark(value string) bool {
	return value == PlayerX || value == PlayerO
}
