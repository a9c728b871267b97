package engine

import (
	"errors"
	"time"

	. "github.com/haider92/ChessAI/pkg/common"
)

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrNoEvaluator  = errors.New("evaluator is not set")
	ErrInvalidDepth = errors.New("invalid depth")
)

type Evaluator interface {
	Evaluate(p *Position) int
}

// SearchFunc is the signature shared by Minimax and AlphaBeta.
type SearchFunc func(p *Position, options Options) (Result, error)

type Result struct {
	Move   Move
	Score  int
	Depth  int
	Nodes  int64
	Leaves int64
	Time   time.Duration
}

func (r *Result) UciScore() UciScore {
	return newUciScore(r.Score)
}

type searcher struct {
	position  *Position
	evaluator Evaluator
	mateScore bool
	nodes     int64
	leaves    int64
	stack     [stackSize]struct {
		moveList [MaxMoves]Move
	}
}

func newSearcher(p *Position, options *Options) *searcher {
	return &searcher{
		position:  p,
		evaluator: options.Evaluator,
		mateScore: options.MateScore,
	}
}

func (s *searcher) evaluate() int {
	s.leaves++
	return s.evaluator.Evaluate(s.position)
}

// terminal scores a node without legal moves when mate scoring is on.
func (s *searcher) terminal(height int) int {
	if s.position.IsCheck() {
		return lossIn(height)
	}
	return valueDraw
}

// searchRoot plays every legal root move and keeps the first one with the strictly highest score.
// Moves are tried in generation order and the position is restored after each.
func (s *searcher) searchRoot(options *Options, searchChild func(depth int) int) (Result, error) {
	var start = time.Now()
	var p = s.position
	var result = Result{Depth: options.Depth}
	var found = false
	for _, move := range p.GenerateMoves(s.stack[0].moveList[:]) {
		var undo Undo
		if !p.MakeMove(move, &undo) {
			continue
		}
		var score = -searchChild(options.Depth)
		p.UnmakeMove(move, &undo)
		if !found || score > result.Score {
			found = true
			result.Score = score
			result.Move = move
		}
	}
	result.Nodes = s.nodes
	result.Leaves = s.leaves
	result.Time = time.Since(start)
	if !found {
		return result, ErrNoLegalMoves
	}
	return result, nil
}
