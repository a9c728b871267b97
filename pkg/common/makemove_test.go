package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testFENs = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/p1P5/P7/3p4/5p1p/3p1P1P/K2p2pp/3R2nk w - - 0 1",
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"1K1k4/8/5n2/3p4/8/1BN2B2/6b1/7b w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"r2qk2r/pppb1ppp/2np4/1Bb5/4n3/5N2/PPP2PPP/RNBQR1K1 b kq - 1 1",
	"Bn1N3R/ppPpNR1r/BnBr1NKR/k3pP2/3PR2R/N7/3P2P1/4Q2R w - e6 0 1",
	"rnb1kbnr/pp1ppppp/8/1q6/2PpP3/5N2/PP3PPP/RNBQ1K1R b kq c3 0 6",
	"r3r3/bpp1Nk1p/p1bq1Bp1/5p2/PPP3n1/R7/3QBPPP/5RK1 w - - 0 1",
	"rnbqk3/p7/2P5/1B6/8/8/8/4K3 w q - 0 1",
}

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		require.NoError(t, err, fen)
		var before = p
		var undo Undo
		for _, move := range p.GenerateLegalMoves() {
			require.True(t, p.MakeMove(move, &undo), "%v %v", fen, move)
			require.Equal(t, p.computeKey(), p.Key, "incremental key after %v in %v", move, fen)
			require.Equal(t, move.CapturedPiece(), undo.Captured())
			p.UnmakeMove(move, &undo)
			require.Equal(t, before, p, "%v %v", fen, move)
		}
	}
}

func TestIllegalMoveLeavesPositionUnchanged(t *testing.T) {
	// the knight on d7 is pinned against the king on e8
	var p, err = NewPositionFromFEN("4k3/3n4/8/1B6/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	var before = p
	var buffer [MaxMoves]Move
	var undo Undo
	var rejected = 0
	for _, move := range p.GenerateMoves(buffer[:]) {
		if move.From() != SquareD7 {
			continue
		}
		require.False(t, p.MakeMove(move, &undo), move.String())
		require.Equal(t, before, p)
		rejected++
	}
	require.Equal(t, 6, rejected)
}

func TestMakeMoveSpecialMoves(t *testing.T) {
	var tests = []struct {
		name  string
		fen   string
		move  string
		after string
	}{
		{
			name:  "white castles king side",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:  "e1g1",
			after: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:  "black castles queen side",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:  "e8c8",
			after: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 1",
		},
		{
			name:  "en passant capture",
			fen:   "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			move:  "e5d6",
			after: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:  "under promotion with capture",
			fen:   "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:  "a7b8n",
			after: "1N2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:  "rook capture removes castling right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:  "a1a8",
			after: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var p, err = NewPositionFromFEN(test.fen)
			require.NoError(t, err)
			var before = p
			var move, ok = p.ParseMoveLAN(test.move)
			require.True(t, ok)
			var undo Undo
			require.True(t, p.MakeMove(move, &undo))
			require.Equal(t, test.after, p.String())
			p.UnmakeMove(move, &undo)
			require.Equal(t, before, p)
		})
	}
}
