package eval

import (
	. "github.com/haider92/ChessAI/pkg/common"
)

const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 325
	rookValue   = 500
	queenValue  = 900
	castleBonus = 30
)

const (
	sideWhite = 0
	sideBlack = 1
)

// Tables are written from White's point of view, a1 first.
var (
	pawnTable = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightTable = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopTable = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookTable = [64]int{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queenTable = [64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingTable = [64]int{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
)

// EvaluationService scores material plus piece-square bonuses.
// It holds only precomputed tables and is safe for concurrent use.
type EvaluationService struct {
	PST [2][King + 1][64]int
}

func NewEvaluationService() *EvaluationService {
	var e = &EvaluationService{}
	e.init()
	return e
}

func (e *EvaluationService) init() {
	var material = [King + 1]int{
		Pawn:   pawnValue,
		Knight: knightValue,
		Bishop: bishopValue,
		Rook:   rookValue,
		Queen:  queenValue,
	}
	var tables = [King + 1]*[64]int{
		Pawn:   &pawnTable,
		Knight: &knightTable,
		Bishop: &bishopTable,
		Rook:   &rookTable,
		Queen:  &queenTable,
		King:   &kingTable,
	}
	for piece := Pawn; piece <= King; piece++ {
		for sq := 0; sq < 64; sq++ {
			e.PST[sideWhite][piece][sq] = material[piece] + tables[piece][sq]
			e.PST[sideBlack][piece][sq] = material[piece] + tables[piece][FlipSquare(sq)]
		}
	}
}

// Evaluate returns the score in centipawns from the side to move.
func (e *EvaluationService) Evaluate(p *Position) int {
	var white, black int

	for x := p.White; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		white += e.PST[sideWhite][p.WhatPiece(sq)][sq]
	}
	for x := p.Black; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		black += e.PST[sideBlack][p.WhatPiece(sq)][sq]
	}

	if p.CastleRights&WhiteCastleMask != 0 {
		white += castleBonus
	}
	if p.CastleRights&BlackCastleMask != 0 {
		black += castleBonus
	}

	if p.WhiteMove {
		return white - black
	}
	return black - white
}
