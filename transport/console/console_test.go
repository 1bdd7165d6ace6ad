package console_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyBoard = `
      ||      ||
  1a  ||  1b  ||  1c
      ||      ||
======================
      ||      ||
  2a  ||  2b  ||  2c
      ||      ||
======================
      ||      ||
  3a  ||  3b  ||  3c
      ||      ||
`

func TestRenderBoard(t *testing.T) {
	t.Run("Empty squares show their labels", func(t *testing.T) {
		assert.Equal(t, emptyBoard, console.RenderBoard(entity.NewBoard()))
	})

	t.Run("Marks are padded to the label width", func(t *testing.T) {
		// Given: X in 1a and O in 3c
		board := entity.NewBoard()
		board.Set("1a", entity.PlayerX)
		board.Set("3c", entity.PlayerO)

		// When: rendering
		rendered := console.RenderBoard(board)

		// Then: marks replace labels without shifting the grid
		assert.Contains(t, rendered, "\n  X   ||  1b  ||  1c\n")
		assert.Contains(t, rendered, "\n  3a  ||  3b  ||  O \n")
	})
}

func TestConsole_Welcome(t *testing.T) {
	_, st := suite.New(t)
	terminal := st.Console()

	require.NoError(t, terminal.Welcome(entity.NewBoard()))

	assert.Equal(t, "Welcome to tic-tac-toe!\n"+emptyBoard+"\n", st.Output.String())
}

func TestConsole_ReadMove(t *testing.T) {
	t.Run("Prompts the player and returns the raw line", func(t *testing.T) {
		ctx, st := suite.New(t)
		terminal := st.Console("  2B ")

		line, err := terminal.ReadMove(ctx, entity.PlayerO)

		require.NoError(t, err)
		assert.Equal(t, "  2B ", line)
		assert.Equal(t, "Player O: Pick a square (1a-3c). ", st.Output.String())
	})

	t.Run("Delivers lines longer than any scanner buffer", func(t *testing.T) {
		ctx, st := suite.New(t)
		long := strings.Repeat("z", 70*1024)
		terminal := st.Console(long, "1a\r")

		line, err := terminal.ReadMove(ctx, entity.PlayerX)
		require.NoError(t, err)
		assert.Equal(t, long, line)

		line, err = terminal.ReadMove(ctx, entity.PlayerX)
		require.NoError(t, err)
		assert.Equal(t, "1a", line)
	})

	t.Run("Returns ErrInputClosed at end of input", func(t *testing.T) {
		ctx, st := suite.New(t)
		terminal := st.Console()

		_, err := terminal.ReadMove(ctx, entity.PlayerX)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Returns the context error when cancelled", func(t *testing.T) {
		// Given: an input that never delivers a line
		ctx, st := suite.New(t)
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		terminal := console.New(reader, st.Output)
		t.Cleanup(terminal.Close)

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// When: reading a move
		_, err := terminal.ReadMove(ctx, entity.PlayerX)

		// Then: the cancellation is reported
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Wraps read errors", func(t *testing.T) {
		ctx, st := suite.New(t)
		errBroken := errors.New("broken pipe")

		terminal := console.New(io.MultiReader(strings.NewReader("1a"), &failingReader{err: errBroken}), st.Output)
		t.Cleanup(terminal.Close)

		// the partial line before the failure still counts
		line, err := terminal.ReadMove(ctx, entity.PlayerX)
		require.NoError(t, err)
		assert.Equal(t, "1a", line)

		_, err = terminal.ReadMove(ctx, entity.PlayerO)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		require.ErrorIs(t, err, errBroken)
	})
}

type failingReader struct {
	err error
}

func (that *failingReader) Read([]byte) (int, error) {
	return 0, that.err
}

func TestConsole_ShowRejection(t *testing.T) {
	t.Run("Unknown square", func(t *testing.T) {
		_, st := suite.New(t)
		terminal := st.Console()

		result := tictactoe.Validate("5C", entity.NewBoard())
		require.NoError(t, terminal.ShowRejection(result))

		assert.Equal(t, "\"5c\" is not a valid input. Please type an empty square value (1a-3c).\n", st.Output.String())
	})

	t.Run("Quotes in the input are printed as typed", func(t *testing.T) {
		_, st := suite.New(t)
		terminal := st.Console()

		result := tictactoe.Validate(`a"b`, entity.NewBoard())
		require.NoError(t, terminal.ShowRejection(result))

		assert.Equal(t, "\"a\"b\" is not a valid input. Please type an empty square value (1a-3c).\n", st.Output.String())
	})

	t.Run("Filled square", func(t *testing.T) {
		_, st := suite.New(t)
		terminal := st.Console()

		board := entity.NewBoard()
		board.Set("1a", entity.PlayerX)

		result := tictactoe.Validate("1a", board)
		require.NoError(t, terminal.ShowRejection(result))

		assert.Equal(t, "Square 1a is already filled in. Please pick another square (1a-3c). \n", st.Output.String())
	})
}

func TestConsole_ShowOutcome(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		_, st := suite.New(t)
		terminal := st.Console()

		game := &entity.Game{Status: entity.StatusFinished, Winner: entity.PlayerO}
		require.NoError(t, terminal.ShowOutcome(game))

		assert.Equal(t, "We have a winner - Player O! Great job!! \n", st.Output.String())
	})

	t.Run("Tie", func(t *testing.T) {
		_, st := suite.New(t)
		terminal := st.Console()

		game := &entity.Game{Status: entity.StatusFinished, Winner: entity.PlayerTie}
		require.NoError(t, terminal.ShowOutcome(game))

		assert.Equal(t, "Oops - Tie Game! No winners or losers here. :) \n", st.Output.String())
	})
}

func TestConsole_WriteFailure(t *testing.T) {
	terminal := console.New(suite.Input(), &failingWriter{})
	t.Cleanup(terminal.Close)

	err := terminal.ShowBoard(entity.NewBoard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write to console")
}

type failingWriter struct{}

func (that *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
