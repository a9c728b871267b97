package uci

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// errQuit ends RunCli without being reported.
var errQuit = errors.New("quit")

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

// RunCli feeds input lines to handler until quit, EOF or ctx is done. Handler errors are logged.
func RunCli(ctx context.Context, in io.Reader, logger zerolog.Logger, handler CommandHandler) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "" {
			continue
		}
		var err = handler.Handle(ctx, commandLine)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			logger.Error().Err(err).Str("command", commandLine).Msg("uci")
		}
	}
	return scanner.Err()
}
