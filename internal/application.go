package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs one game on the process terminal.
func RunApp(logger *slog.Logger) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, os.Stdin, os.Stdout)
}

// Run plays a single game reading moves from in and printing to out.
// Cancelling ctx ends the game early without an error.
func Run(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	terminal := console.New(in, out)
	defer terminal.Close()

	gameManager := usecase.NewGameManager(logger, terminal)

	game, err := gameManager.Play(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Game aborted", "game_id", game.ID, "moves", game.Moves)

		if err = terminal.ShowAbort(); err != nil {
			return fmt.Errorf("could not report abort: %w", err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
