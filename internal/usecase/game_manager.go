package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type gameConsole interface {
	Welcome(board entity.Board) error
	ShowBoard(board entity.Board) error
	ReadMove(ctx context.Context, player string) (string, error)
	ShowRejection(result tictactoe.ValidationResult) error
	ShowOutcome(game *entity.Game) error
}

// GameManager runs one game between two players sharing a console.
type GameManager struct {
	logger  *slog.Logger
	console gameConsole
}

func NewGameManager(logger *slog.Logger, terminal gameConsole) *GameManager {
	return &GameManager{
		logger:  logger,
		console: terminal,
	}
}

// Play runs the turn loop until a player wins or the board fills up.
// The returned game is never nil, even when an error cuts the game short.
func (that *GameManager) Play(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())
	log := that.logger.With("method", "Play", "game_id", game.ID)

	if err := that.console.Welcome(game.Board); err != nil {
		return game, fmt.Errorf("failed to show welcome: %w", err)
	}

	log.Info("game started")

	for !game.IsFinished() {
		player := tictactoe.NextPlayer(game.Turn)

		square, err := that.nextMove(ctx, log, player, game.Board)
		if err != nil {
			return game, fmt.Errorf("failed to get move of player %s: %w", player, err)
		}

		if err = tictactoe.MakeTurn(game, player, square); err != nil {
			return game, fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("move accepted", "player", player, "square", square, "moves", game.Moves)

		if err = that.console.ShowBoard(game.Board); err != nil {
			return game, fmt.Errorf("failed to show board: %w", err)
		}
	}

	log.Info("game finished", "winner", game.Winner, "moves", game.Moves)

	if err := that.console.ShowOutcome(game); err != nil {
		return game, fmt.Errorf("failed to show outcome: %w", err)
	}

	return game, nil
}

// nextMove keeps asking player until they name an empty square.
func (that *GameManager) nextMove(ctx context.Context, log *slog.Logger, player string, board entity.Board) (string, error) {
	for {
		raw, err := that.console.ReadMove(ctx, player)
		if err != nil {
			return "", err
		}

		result := tictactoe.Validate(raw, board)
		if result.IsValid {
			return result.CleanedInput, nil
		}

		log.Debug("input rejected", "player", player, "input", result.CleanedInput, "error", result.Err)

		if err = that.console.ShowRejection(result); err != nil {
			return "", fmt.Errorf("failed to show rejection: %w", err)
		}
	}
}
