package evalbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haider92/ChessAI/pkg/common"
)

func TestGet(t *testing.T) {
	var p, err = common.NewPositionFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	var want = map[string]int{"": 80, "pst": 80, "material": 100}
	for key, score := range want {
		var build, err = Get(key)
		require.NoError(t, err, key)
		require.Equal(t, score, build().Evaluate(&p), key)
	}

	_, err = Get("nnue")
	require.Error(t, err)
}
