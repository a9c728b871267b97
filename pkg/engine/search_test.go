package engine

import (
	"testing"

	. "github.com/haider92/ChessAI/pkg/common"
	eval "github.com/haider92/ChessAI/pkg/eval/pst"
	"github.com/stretchr/testify/require"
)

var testFENs = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/p1P5/P7/3p4/5p1p/3p1P1P/K2p2pp/3R2nk w - - 0 1",
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"r2qk2r/pppb1ppp/2np4/1Bb5/4n3/5N2/PPP2PPP/RNBQR1K1 b kq - 1 1",
	"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
	"7k/8/8/6Q1/8/8/8/K7 w - - 0 1",
}

func newTestOptions(depth int, mateScore bool) Options {
	var options = NewOptions(eval.NewEvaluationService())
	options.Depth = depth
	options.MateScore = mateScore
	return options
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for _, mateScore := range []bool{true, false} {
		for depth := 0; depth <= 2; depth++ {
			var options = newTestOptions(depth, mateScore)
			for _, fen := range testFENs {
				var p, err = NewPositionFromFEN(fen)
				require.NoError(t, err)

				mm, err := Minimax(&p, options)
				require.NoError(t, err)
				ab, err := AlphaBeta(&p, options)
				require.NoError(t, err)

				require.Equal(t, mm.Move, ab.Move, "%v depth %v mate %v", fen, depth, mateScore)
				require.Equal(t, mm.Score, ab.Score, "%v depth %v mate %v", fen, depth, mateScore)
				require.LessOrEqual(t, ab.Leaves, mm.Leaves)
				require.LessOrEqual(t, ab.Nodes, mm.Nodes)
			}
		}
	}
}

func TestSearchRestoresPosition(t *testing.T) {
	var options = newTestOptions(2, true)
	for _, search := range []SearchFunc{Minimax, AlphaBeta} {
		for _, fen := range testFENs {
			var p, err = NewPositionFromFEN(fen)
			require.NoError(t, err)
			var before = p
			_, err = search(&p, options)
			require.NoError(t, err)
			require.Equal(t, before, p, fen)
		}
	}
}

func TestDepthZeroIsGreedy(t *testing.T) {
	var e = eval.NewEvaluationService()
	var options = NewOptions(e)
	options.Depth = 0
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		require.NoError(t, err)

		var ml = p.GenerateLegalMoves()
		var bestMove = MoveEmpty
		var bestScore = 0
		for i, move := range ml {
			var undo Undo
			require.True(t, p.MakeMove(move, &undo))
			var score = -e.Evaluate(&p)
			p.UnmakeMove(move, &undo)
			if i == 0 || score > bestScore {
				bestMove = move
				bestScore = score
			}
		}

		for _, search := range []SearchFunc{Minimax, AlphaBeta} {
			result, err := search(&p, options)
			require.NoError(t, err)
			require.Equal(t, bestMove, result.Move, fen)
			require.Equal(t, bestScore, result.Score, fen)
			require.Equal(t, int64(len(ml)), result.Leaves, fen)
		}
	}
}

func TestAlphaBetaVisitsFewerLeaves(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	var options = newTestOptions(3, true)

	mm, err := Minimax(&p, options)
	require.NoError(t, err)
	ab, err := AlphaBeta(&p, options)
	require.NoError(t, err)

	require.Equal(t, int64(197281), mm.Leaves)
	require.Less(t, ab.Leaves, mm.Leaves)
	require.Less(t, ab.Nodes, mm.Nodes)
	require.Equal(t, mm.Move, ab.Move)
	require.Equal(t, mm.Score, ab.Score)
}

func TestInitialPosition(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	var legal = p.GenerateLegalMoves()
	require.Len(t, legal, 20)

	var options = newTestOptions(2, true)
	mm, err := Minimax(&p, options)
	require.NoError(t, err)
	ab, err := AlphaBeta(&p, options)
	require.NoError(t, err)

	require.Contains(t, legal, mm.Move)
	require.Equal(t, mm.Move, ab.Move)
	require.Equal(t, mm.Score, ab.Score)
	require.Equal(t, 2, mm.Depth)
}

func TestSearchIsDeterministic(t *testing.T) {
	var options = newTestOptions(2, true)
	for _, search := range []SearchFunc{Minimax, AlphaBeta} {
		for _, fen := range testFENs {
			var p, err = NewPositionFromFEN(fen)
			require.NoError(t, err)
			first, err := search(&p, options)
			require.NoError(t, err)
			second, err := search(&p, options)
			require.NoError(t, err)
			require.Equal(t, first.Move, second.Move)
			require.Equal(t, first.Score, second.Score)
			require.Equal(t, first.Nodes, second.Nodes)
		}
	}
}

func TestMateInOne(t *testing.T) {
	var p, err = NewPositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	for _, search := range []SearchFunc{Minimax, AlphaBeta} {
		result, err := search(&p, newTestOptions(1, true))
		require.NoError(t, err)
		require.Equal(t, "a1a8", result.Move.String())
		require.Equal(t, winIn(1), result.Score)
		require.Equal(t, UciScore{Mate: 1}, result.UciScore())

		result, err = search(&p, newTestOptions(1, false))
		require.NoError(t, err)
		require.Equal(t, "a1a8", result.Move.String())
		require.Equal(t, valueInfinity, result.Score)
	}
}

func TestTerminalNodes(t *testing.T) {
	var tests = []struct {
		name      string
		fen       string
		mateScore bool
		score     int
	}{
		{"checkmate", "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1", true, lossIn(1)},
		{"stalemate", "7k/8/6Q1/8/8/8/8/K7 b - - 0 1", true, valueDraw},
		{"checkmate without mate scoring", "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1", false, -valueInfinity},
		{"stalemate without mate scoring", "7k/8/6Q1/8/8/8/8/K7 b - - 0 1", false, -valueInfinity},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var p, err = NewPositionFromFEN(test.fen)
			require.NoError(t, err)
			var options = newTestOptions(2, test.mateScore)

			var s = newSearcher(&p, &options)
			require.Equal(t, test.score, s.minimax(2, 1))
			s = newSearcher(&p, &options)
			require.Equal(t, test.score, s.alphaBeta(-valueInfinity, valueInfinity, 2, 1))

			_, err = Minimax(&p, options)
			require.ErrorIs(t, err, ErrNoLegalMoves)
			_, err = AlphaBeta(&p, options)
			require.ErrorIs(t, err, ErrNoLegalMoves)
		})
	}
}

func TestInvalidOptions(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)

	_, err = Minimax(&p, Options{Depth: 1})
	require.ErrorIs(t, err, ErrNoEvaluator)

	_, err = AlphaBeta(&p, newTestOptions(-1, true))
	require.ErrorIs(t, err, ErrInvalidDepth)

	_, err = Minimax(&p, newTestOptions(MaxDepth+1, true))
	require.ErrorIs(t, err, ErrInvalidDepth)
}
