package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/haider92/ChessAI/pkg/common"
	"github.com/haider92/ChessAI/pkg/engine"
)

// Engine is the part of an agent the protocol drives.
type Engine interface {
	NewRun() error
	EndRun() error
	Think(p *common.Position, depth int) (common.Move, engine.Result, error)
}

// Protocol answers UCI commands for one agent. Searches run synchronously.
type Protocol struct {
	name     string
	author   string
	version  string
	options  []Option
	engine   Engine
	position common.Position
	out      io.Writer
	logger   zerolog.Logger
	inRun    bool
	depth    int
}

func New(name, author, version string, eng Engine, options []Option,
	out io.Writer, logger zerolog.Logger) *Protocol {
	var initPosition, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		panic(err)
	}
	var uci = &Protocol{
		name:     name,
		author:   author,
		version:  version,
		engine:   eng,
		position: initPosition,
		out:      out,
		logger:   logger,
		depth:    -1,
	}
	// -1 keeps the depth the agent was built with
	uci.options = append([]Option{
		&IntOption{Name: "Depth", Min: -1, Max: engine.MaxDepth, Value: &uci.depth},
	}, options...)
	return uci
}

// Run serves commands from in until quit or EOF, then closes the current run.
func (uci *Protocol) Run(ctx context.Context, in io.Reader) error {
	var err = RunCli(ctx, in, uci.logger, uci)
	if endErr := uci.endRun(); err == nil {
		err = endErr
	}
	return err
}

func (uci *Protocol) Handle(ctx context.Context, commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "quit":
		return errQuit
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("unhandled option %v", name)
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	if err := uci.endRun(); err != nil {
		return err
	}
	if err := uci.engine.NewRun(); err != nil {
		return pkgerrors.Wrap(err, "new run")
	}
	uci.inRun = true
	return nil
}

func (uci *Protocol) endRun() error {
	if !uci.inRun {
		return nil
	}
	uci.inRun = false
	return pkgerrors.Wrap(uci.engine.EndRun(), "end run")
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var args = fields
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return pkgerrors.Wrap(err, "position")
	}
	if movesIndex >= 0 {
		for _, smove := range args[movesIndex+1:] {
			if !p.MakeMoveLAN(smove) {
				return fmt.Errorf("parse move failed: %v", smove)
			}
		}
	}
	uci.position = p
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var depth = parseDepth(fields)
	if depth < 0 {
		depth = uci.depth
	}
	var move, result, err = uci.engine.Think(&uci.position, depth)
	if err != nil {
		fmt.Fprintln(uci.out, "bestmove 0000")
		return pkgerrors.Wrap(err, "search")
	}
	fmt.Fprintln(uci.out, searchResultToUci(result))
	fmt.Fprintf(uci.out, "bestmove %v\n", move)
	return nil
}

func searchResultToUci(result engine.Result) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", result.Depth)
	var score = result.UciScore()
	if score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", score.Centipawns)
	}
	var timeMs = result.Time.Milliseconds()
	var nps = result.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", result.Nodes, timeMs, nps)
	if result.Move != common.MoveEmpty {
		fmt.Fprintf(sb, " pv %v", result.Move)
	}
	return sb.String()
}

// parseDepth returns -1 when the go command has no depth limit.
func parseDepth(args []string) int {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if depth, err := strconv.Atoi(args[i+1]); err == nil {
				return depth
			}
		}
	}
	return -1
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
