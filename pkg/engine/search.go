package engine

import (
	. "github.com/haider92/ChessAI/pkg/common"
)

// AlphaBeta returns the same move and score as Minimax while skipping lines that cannot change the result.
// Every root move is searched with the full window.
func AlphaBeta(p *Position, options Options) (Result, error) {
	if err := options.validate(); err != nil {
		return Result{}, err
	}
	var s = newSearcher(p, &options)
	return s.searchRoot(&options, func(depth int) int {
		return s.alphaBeta(-valueInfinity, valueInfinity, depth, 1)
	})
}

// fail-hard: a cut-off returns beta, a node that raises nothing returns alpha
func (s *searcher) alphaBeta(alpha, beta, depth, height int) int {
	s.nodes++
	if depth == 0 {
		return s.evaluate()
	}
	var p = s.position
	var hasLegalMove = false
	for _, move := range p.GenerateMoves(s.stack[height].moveList[:]) {
		var undo Undo
		if !p.MakeMove(move, &undo) {
			continue
		}
		hasLegalMove = true
		var score = -s.alphaBeta(-beta, -alpha, depth-1, height+1)
		p.UnmakeMove(move, &undo)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	if !hasLegalMove && s.mateScore {
		return Max(alpha, Min(beta, s.terminal(height)))
	}
	return alpha
}
