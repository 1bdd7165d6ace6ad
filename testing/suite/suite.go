package suite

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs collects everything written through Logger.
	Logs *bytes.Buffer
	// Output collects everything a Console built by the suite prints.
	Output *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,
		Output: &bytes.Buffer{},
	}
}

// Input joins lines into what a player would type, one entry per line.
func Input(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Console returns a console reading the given lines and printing into Output.
func (that *Suite) Console(lines ...string) *console.Console {
	that.Helper()

	terminal := console.New(Input(lines...), that.Output)
	that.Cleanup(terminal.Close)

	return terminal
}
