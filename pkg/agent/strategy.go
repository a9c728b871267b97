package agent

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	. "github.com/haider92/ChessAI/pkg/common"
	"github.com/haider92/ChessAI/pkg/engine"
)

// Strategy picks a move for the side to move. p must be restored before returning.
type Strategy interface {
	ChooseMove(p *Position) (Move, error)
}

// ChooseMove parses a FEN position and asks the strategy for a move.
func ChooseMove(fen string, strategy Strategy) (Move, error) {
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		return MoveEmpty, errors.Wrap(err, "parse position")
	}
	return strategy.ChooseMove(&p)
}

// RandomStrategy plays a uniformly random legal move.
type RandomStrategy struct {
	rnd *rand.Rand
}

func NewRandomStrategy(seed uint64) *RandomStrategy {
	return &RandomStrategy{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandomStrategy) ChooseMove(p *Position) (Move, error) {
	var ml = p.GenerateLegalMoves()
	if len(ml) == 0 {
		return MoveEmpty, engine.ErrNoLegalMoves
	}
	return ml[s.rnd.Intn(len(ml))], nil
}

// CaptureStrategy plays a random legal capture when there is one, otherwise a random legal move.
type CaptureStrategy struct {
	rnd *rand.Rand
}

func NewCaptureStrategy(seed uint64) *CaptureStrategy {
	return &CaptureStrategy{rnd: rand.New(rand.NewSource(seed))}
}

func (s *CaptureStrategy) ChooseMove(p *Position) (Move, error) {
	var ml = p.GenerateLegalCaptures()
	if len(ml) == 0 {
		ml = p.GenerateLegalMoves()
	}
	if len(ml) == 0 {
		return MoveEmpty, engine.ErrNoLegalMoves
	}
	return ml[s.rnd.Intn(len(ml))], nil
}

// SearchStrategy delegates to a depth-limited search.
type SearchStrategy struct {
	Search  engine.SearchFunc
	Options engine.Options
	// LastResult holds statistics of the most recent successful search.
	LastResult engine.Result
}

func (s *SearchStrategy) ChooseMove(p *Position) (Move, error) {
	var result, err = s.Search(p, s.Options)
	if err != nil {
		return MoveEmpty, err
	}
	s.LastResult = result
	return result.Move, nil
}
