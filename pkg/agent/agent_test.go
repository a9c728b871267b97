package agent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/haider92/ChessAI/pkg/common"
	"github.com/haider92/ChessAI/pkg/engine"
	eval "github.com/haider92/ChessAI/pkg/eval/pst"
)

func TestAction(t *testing.T) {
	require.Equal(t, "12,28", Action{From: SquareE2, To: SquareE4}.String())
	require.Equal(t, "0,0", ForfeitAction.String())
	require.True(t, ForfeitAction.IsForfeit())

	var a, err = ParseAction(" 12, 28\n")
	require.NoError(t, err)
	require.Equal(t, Action{From: 12, To: 28}, a)

	for _, bad := range []string{"", "12", "a,b", "12,64", "-1,3"} {
		_, err = ParseAction(bad)
		require.Error(t, err, bad)
	}
}

func TestFindMove(t *testing.T) {
	var p, err = NewPositionFromFEN("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var move, ok = FindMove(&p, Action{From: SquareA7, To: SquareB8})
	require.True(t, ok)
	require.Equal(t, "a7b8q", move.String())

	move, ok = FindMove(&p, Action{From: SquareE1, To: SquareE2})
	require.True(t, ok)
	require.Equal(t, "e1e2", move.String())

	_, ok = FindMove(&p, Action{From: SquareE1, To: SquareE3})
	require.False(t, ok)
}

func TestGetActionForfeits(t *testing.T) {
	for _, name := range Names {
		var a, err = New(name, WithSeed(1))
		require.NoError(t, err)
		require.NoError(t, a.NewRun())
		require.Equal(t, ForfeitAction, a.GetAction("not a fen"), name)
		// checkmated
		require.Equal(t, ForfeitAction, a.GetAction("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1"), name)
		require.NoError(t, a.EndRun())
	}
}

func TestGetActionReturnsLegalMove(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	}
	for _, name := range Names {
		var a, err = New(name, WithSeed(7), WithDepth(1))
		require.NoError(t, err)
		for _, fen := range fens {
			var action = a.GetAction(fen)
			var p, err = NewPositionFromFEN(fen)
			require.NoError(t, err)
			var _, ok = FindMove(&p, action)
			require.True(t, ok, "%v %v %v", name, fen, action)
		}
	}
}

func TestRandomStrategyIsSeeded(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	var s1 = NewRandomStrategy(42)
	var s2 = NewRandomStrategy(42)
	var seen = make(map[Move]bool)
	for i := 0; i < 50; i++ {
		m1, err := s1.ChooseMove(&p)
		require.NoError(t, err)
		m2, err := s2.ChooseMove(&p)
		require.NoError(t, err)
		require.Equal(t, m1, m2)
		seen[m1] = true
	}
	require.Greater(t, len(seen), 1)
}

func TestCaptureStrategyPrefersCaptures(t *testing.T) {
	var p, err = NewPositionFromFEN("4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	var s = NewCaptureStrategy(3)
	for i := 0; i < 20; i++ {
		var move, err = s.ChooseMove(&p)
		require.NoError(t, err)
		require.True(t, move.IsCapture(), move.String())
	}

	p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	move, err := s.ChooseMove(&p)
	require.NoError(t, err)
	require.Contains(t, p.GenerateLegalMoves(), move)
}

func TestSearchAgentMatchesEngine(t *testing.T) {
	var fen = "r2qk2r/pppb1ppp/2np4/1Bb5/4n3/5N2/PPP2PPP/RNBQR1K1 b kq - 1 1"
	var p, err = NewPositionFromFEN(fen)
	require.NoError(t, err)
	var options = engine.NewOptions(eval.NewEvaluationService())
	options.Depth = 2
	result, err := engine.AlphaBeta(&p, options)
	require.NoError(t, err)

	for _, name := range []string{Minimax, AlphaBeta} {
		var a, err = New(name, WithDepth(2))
		require.NoError(t, err)
		require.Equal(t, ActionFromMove(result.Move), a.GetAction(fen), name)
	}
}

func TestDefaultDepths(t *testing.T) {
	var a, err = New(Minimax)
	require.NoError(t, err)
	require.Equal(t, defaultMinimaxDepth, a.strategy.(*SearchStrategy).Options.Depth)

	a, err = New(AlphaBeta, WithMateScore(false))
	require.NoError(t, err)
	var ss = a.strategy.(*SearchStrategy)
	require.Equal(t, defaultAlphaBetaDepth, ss.Options.Depth)
	require.False(t, ss.Options.MateScore)

	_, err = New("stockfish")
	require.Error(t, err)
}

func TestThinkOverridesDepthOnce(t *testing.T) {
	var a, err = New(AlphaBeta, WithDepth(3))
	require.NoError(t, err)
	var p, err2 = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err2)
	var before = p

	move, result, err := a.Think(&p, 1)
	require.NoError(t, err)
	require.Equal(t, 1, result.Depth)
	require.Equal(t, move, result.Move)
	require.Equal(t, before, p)
	require.Equal(t, 3, a.strategy.(*SearchStrategy).Options.Depth)
}

func TestAgentIsSafeForConcurrentUse(t *testing.T) {
	var a, err = New(Random, WithSeed(5))
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.False(t, a.GetAction(InitialPositionFen).IsForfeit())
			}
		}()
	}
	wg.Wait()
}
