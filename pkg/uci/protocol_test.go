package uci

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/haider92/ChessAI/pkg/agent"
	"github.com/haider92/ChessAI/pkg/common"
	"github.com/haider92/ChessAI/pkg/engine"
)

type recordingEngine struct {
	*agent.Agent
	events []string
	depths []int
}

func (e *recordingEngine) NewRun() error {
	e.events = append(e.events, "newrun")
	return e.Agent.NewRun()
}

func (e *recordingEngine) EndRun() error {
	e.events = append(e.events, "endrun")
	return e.Agent.EndRun()
}

func (e *recordingEngine) Think(p *common.Position, depth int) (common.Move, engine.Result, error) {
	e.depths = append(e.depths, depth)
	return e.Agent.Think(p, depth)
}

func newTestProtocol(t *testing.T) (*Protocol, *recordingEngine, *bytes.Buffer) {
	var a, err = agent.New(agent.AlphaBeta, agent.WithDepth(0))
	require.NoError(t, err)
	var eng = &recordingEngine{Agent: a}
	var out = &bytes.Buffer{}
	return New("ChessAI", "test", "dev", eng, nil, out, zerolog.Nop()), eng, out
}

func TestTranscript(t *testing.T) {
	var protocol, eng, out = newTestProtocol(t)
	var input = strings.Join([]string{
		"uci",
		"isready",
		"ucinewgame",
		"position startpos moves e2e4 e7e5",
		"go",
		"go depth 1",
		"setoption name Depth value 1",
		"position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		"go",
		"bogus",
		"quit",
		"isready",
	}, "\n")
	require.NoError(t, protocol.Run(context.Background(), strings.NewReader(input)))

	var lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "id name ChessAI dev", lines[0])
	require.Equal(t, "id author test", lines[1])
	require.Equal(t, "option name Depth type spin default -1 min -1 max 64", lines[2])
	require.Equal(t, "uciok", lines[3])
	require.Equal(t, "readyok", lines[4])
	require.True(t, strings.HasPrefix(lines[5], "info depth 0 score cp "), lines[5])
	require.True(t, strings.HasPrefix(lines[6], "bestmove "), lines[6])
	require.True(t, strings.HasPrefix(lines[7], "info depth 1 score cp "), lines[7])
	require.True(t, strings.HasPrefix(lines[8], "bestmove "), lines[8])
	require.True(t, strings.HasPrefix(lines[9], "info depth 1 score mate 1 "), lines[9])
	require.Equal(t, "bestmove a1a8", lines[10])
	require.Len(t, lines, 11)

	require.Equal(t, []string{"newrun", "endrun"}, eng.events)
	require.Equal(t, []int{-1, 1, 1}, eng.depths)
}

func TestPositionCommand(t *testing.T) {
	var protocol, _, _ = newTestProtocol(t)
	var ctx = context.Background()

	require.NoError(t, protocol.Handle(ctx, "position startpos moves e2e4 c7c5 g1f3"))
	require.Equal(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 1", protocol.position.String())

	require.Error(t, protocol.Handle(ctx, "position startpos moves e2e5"))
	require.Error(t, protocol.Handle(ctx, "position fen 8/8/8 w - - 0 1"))
	require.Error(t, protocol.Handle(ctx, "position"))
	require.Error(t, protocol.Handle(ctx, "setoption name Depth value 99"))
	require.Error(t, protocol.Handle(ctx, "setoption name Hash value 16"))
}

func TestGoWithoutLegalMoves(t *testing.T) {
	var protocol, _, out = newTestProtocol(t)
	var ctx = context.Background()
	require.NoError(t, protocol.Handle(ctx, "position fen R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1"))
	require.Error(t, protocol.Handle(ctx, "go depth 2"))
	require.Equal(t, "bestmove 0000\n", out.String())
}

func TestPrintPosition(t *testing.T) {
	var p, err = common.NewPositionFromFEN(common.InitialPositionFen)
	require.NoError(t, err)
	var out = &bytes.Buffer{}
	PrintPosition(out, &p)
	var lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	require.Contains(t, lines[0], blackRook)
	require.Contains(t, lines[7], whiteKing)
	require.Equal(t, common.InitialPositionFen, lines[9])
}
