package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// Console is the terminal side of a game: it prints the board and messages to out
// and reads one line per prompt from in.
type Console struct {
	out io.Writer

	lines   chan string
	done    chan struct{}
	scanErr error

	closeOnce sync.Once
}

// New starts reading lines from in. Call Close once the game is over.
func New(in io.Reader, out io.Writer) *Console {
	that := &Console{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}

	go that.scan(in)

	return that
}

// scan feeds lines to ReadMove so a blocked read never stops cancellation.
// Lines of any length are delivered; validation decides what they mean.
func (that *Console) scan(in io.Reader) {
	defer close(that.lines)

	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			select {
			case that.lines <- strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"):
			case <-that.done:
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.scanErr = err
			}
			return
		}
	}
}

// Close stops the reader. It is safe to call more than once.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// Welcome prints the intro message and the empty board.
func (that *Console) Welcome(board entity.Board) error {
	if err := that.println(introMessage); err != nil {
		return err
	}

	return that.ShowBoard(board)
}

func (that *Console) ShowBoard(board entity.Board) error {
	return that.println(RenderBoard(board))
}

// ReadMove prompts player and returns the raw line they typed.
func (that *Console) ReadMove(ctx context.Context, player string) (string, error) {
	if _, err := fmt.Fprintf(that.out, nextTurnMessage, player); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			if that.scanErr != nil {
				return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, that.scanErr)
			}
			return "", apperror.ErrInputClosed
		}
		return line, nil
	}
}

// ShowRejection explains why the last input was refused.
func (that *Console) ShowRejection(result tictactoe.ValidationResult) error {
	switch {
	case errors.Is(result.Err, apperror.ErrSquareFilled):
		return that.println(fmt.Sprintf(unavailableSquareMessage, result.CleanedInput))
	default:
		return that.println(fmt.Sprintf(invalidSquareMessage, result.CleanedInput))
	}
}

// ShowOutcome prints the final message of a finished game.
func (that *Console) ShowOutcome(game *entity.Game) error {
	if game.IsTie() {
		return that.println(tieMessage)
	}

	return that.println(fmt.Sprintf(winnerMessage, game.Winner))
}

// ShowAbort tells the players the game was interrupted.
func (that *Console) ShowAbort() error {
	return that.println("\n" + abortMessage)
}

func (that *Console) println(message string) error {
	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}
