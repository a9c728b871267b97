package common

import (
	"sort"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesMatchReference(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		require.NoError(t, err, fen)

		var got []string
		for _, move := range p.GenerateLegalMoves() {
			got = append(got, move.String())
		}

		opt, err := chess.FEN(fen)
		require.NoError(t, err, fen)
		var game = chess.NewGame(opt)
		var want []string
		for _, move := range game.ValidMoves() {
			want = append(want, move.String())
		}

		sort.Strings(got)
		sort.Strings(want)
		require.Equal(t, want, got, fen)
	}
}

func TestGenerateLegalCaptures(t *testing.T) {
	var p, err = NewPositionFromFEN("1n2k3/P7/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	var got []string
	for _, move := range p.GenerateLegalCaptures() {
		got = append(got, move.String())
	}
	sort.Strings(got)
	require.Equal(t, []string{"a7a8q", "a7b8q", "e4d5"}, got)

	var all = p.GenerateLegalMoves()
	require.Contains(t, all, mustParse(t, &p, "a7b8n"))
}

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	require.Len(t, p.GenerateLegalMoves(), 20)
	require.Empty(t, p.GenerateLegalCaptures())
}

func mustParse(t *testing.T, p *Position, lan string) Move {
	t.Helper()
	var move, ok = p.ParseMoveLAN(lan)
	require.True(t, ok, lan)
	return move
}
