package engine

import (
	. "github.com/haider92/ChessAI/pkg/common"
)

// Minimax searches every line to options.Depth plies below the root move and returns the best root move.
// p is used as scratch space and is identical to its input on return.
func Minimax(p *Position, options Options) (Result, error) {
	if err := options.validate(); err != nil {
		return Result{}, err
	}
	var s = newSearcher(p, &options)
	return s.searchRoot(&options, func(depth int) int {
		return s.minimax(depth, 1)
	})
}

func (s *searcher) minimax(depth, height int) int {
	s.nodes++
	if depth == 0 {
		return s.evaluate()
	}
	var p = s.position
	var best = -valueInfinity
	var hasLegalMove = false
	for _, move := range p.GenerateMoves(s.stack[height].moveList[:]) {
		var undo Undo
		if !p.MakeMove(move, &undo) {
			continue
		}
		hasLegalMove = true
		var score = -s.minimax(depth-1, height+1)
		p.UnmakeMove(move, &undo)
		if score > best {
			best = score
		}
	}
	if !hasLegalMove && s.mateScore {
		return s.terminal(height)
	}
	return best
}
