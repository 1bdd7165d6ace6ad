package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ValidationResult describes a player's raw input after it has been checked against the board.
// CleanedInput is kept even when the input is rejected.
type ValidationResult struct {
	IsValid      bool
	CleanedInput string
	Err          error
}

// Validate trims and lower-cases raw and checks that it names an empty square of board.
// It never mutates board.
func Validate(raw string, board entity.Board) ValidationResult {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	value, ok := board.Get(cleaned)
	if !ok {
		return ValidationResult{
			CleanedInput: cleaned,
			Err:          fmt.Errorf("%w: \"%s\"", apperror.ErrInvalidSquare, cleaned),
		}
	}

	if entity.IsMark(value) {
		return ValidationResult{
			CleanedInput: cleaned,
			Err:          fmt.Errorf("%w: %s", apperror.ErrSquareFilled, cleaned),
		}
	}

	return ValidationResult{IsValid: true, CleanedInput: cleaned}
}

// NextPlayer returns the mark that moves after current. X opens the game.
func NextPlayer(current string) string {
	if current == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// Winner returns the mark owning a full line, PlayerTie for a full board with no such line,
// or NoPlayer while the game goes on.
func Winner(board entity.Board) string {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if entity.IsMark(a) && a == b && b == c {
			return a
		}
	}

	// lines are checked first so a win on the last square is not reported as a tie
	if board.IsFull() {
		return entity.PlayerTie
	}

	return entity.NoPlayer
}

// MakeTurn places player's mark into square and updates the game outcome.
func MakeTurn(gameInstance *entity.Game, player, square string) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	cleaned, err := validateMove(gameInstance, player, square)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Set(cleaned, player)
	gameInstance.Turn = player
	gameInstance.Moves++
	updateGameStatus(gameInstance)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, player, square string) (string, error) {
	if player != NextPlayer(gameInstance.Turn) {
		return "", apperror.ErrNotYourTurn
	}

	result := Validate(square, gameInstance.Board)
	if !result.IsValid {
		return "", result.Err
	}

	return result.CleanedInput, nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game) {
	switch winner := Winner(gameInstance.Board); winner {
	case entity.PlayerX, entity.PlayerO, entity.PlayerTie:
		gameInstance.Winner = winner
		gameInstance.Status = entity.StatusFinished
	default:
		gameInstance.Status = entity.StatusOngoing
	}
}
