package eval

import (
	"testing"

	. "github.com/haider92/ChessAI/pkg/common"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		fen   string
		score int
	}{
		{InitialPositionFen, 0},
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", 100},
		{"4k3/8/8/8/8/8/4P3/4K3 b - - 0 1", -100},
		{"3qk3/8/8/8/8/8/8/RN2K3 w - - 0 1", 600 + 400 - 1200},
		{"r1b1k3/8/8/8/8/8/8/4K3 b - - 0 1", 1000},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		require.NoError(t, err)
		require.Equal(t, test.score, e.Evaluate(&p), test.fen)
		var mirror = MirrorPosition(&p)
		require.Equal(t, test.score, e.Evaluate(&mirror), test.fen)
	}
}
