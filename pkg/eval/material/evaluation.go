package eval

import (
	. "github.com/haider92/ChessAI/pkg/common"
)

var pieceValues = [King + 1]int{
	Pawn:   100,
	Knight: 400,
	Bishop: 400,
	Rook:   600,
	Queen:  1200,
}

// EvaluationService counts material only.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p *Position) int {
	var eval = 0
	for piece, bb := range [...]uint64{Pawn: p.Pawns, Knight: p.Knights, Bishop: p.Bishops, Rook: p.Rooks, Queen: p.Queens} {
		eval += pieceValues[piece] * (PopCount(bb&p.White) - PopCount(bb&p.Black))
	}
	if !p.WhiteMove {
		eval = -eval
	}
	return eval
}
