package common

// MakeMove applies a pseudo-legal move in place and fills undo.
// If the move leaves the mover's king attacked, the position is restored and false is returned.
func (p *Position) MakeMove(move Move, undo *Undo) bool {
	var from = move.From()
	var to = move.To()
	var movingPiece = move.MovingPiece()
	var capturedPiece = move.CapturedPiece()
	var side = p.WhiteMove

	*undo = Undo{
		captured:     capturedPiece,
		castleRights: p.CastleRights,
		epSquare:     p.EpSquare,
		rule50:       p.Rule50,
		key:          p.Key,
		checkers:     p.Checkers,
		lastMove:     p.LastMove,
	}

	p.WhiteMove = !side
	p.Key ^= sideKey

	var castleRights = p.CastleRights & castleMask[from] & castleMask[to]
	p.Key ^= castlingKey[castleRights^p.CastleRights]
	p.CastleRights = castleRights

	if movingPiece == Pawn || capturedPiece != Empty {
		p.Rule50 = 0
	} else {
		p.Rule50++
	}

	if p.EpSquare != SquareNone {
		p.Key ^= enpassantKey[File(p.EpSquare)]
		p.EpSquare = SquareNone
	}

	if capturedPiece != Empty {
		xorPiece(p, capturedPiece, !side, captureSquare(move, side, undo.epSquare))
	}

	movePiece(p, movingPiece, side, from, to)

	if movingPiece == Pawn {
		if to == from+16 || to == from-16 {
			p.EpSquare = (from + to) / 2
			p.Key ^= enpassantKey[File(p.EpSquare)]
		}
		if move.Promotion() != Empty {
			xorPiece(p, Pawn, side, to)
			xorPiece(p, move.Promotion(), side, to)
		}
	} else if movingPiece == King {
		moveCastlingRook(p, side, from, to)
	}

	if !p.isLegal() {
		p.UnmakeMove(move, undo)
		return false
	}
	p.Checkers = p.computeCheckers()
	p.LastMove = move
	return true
}

// UnmakeMove reverts MakeMove. Calls must mirror MakeMove in LIFO order.
func (p *Position) UnmakeMove(move Move, undo *Undo) {
	var from = move.From()
	var to = move.To()
	var movingPiece = move.MovingPiece()
	var side = !p.WhiteMove

	if movingPiece == King {
		moveCastlingRook(p, side, from, to)
	} else if movingPiece == Pawn && move.Promotion() != Empty {
		xorPiece(p, move.Promotion(), side, to)
		xorPiece(p, Pawn, side, to)
	}

	movePiece(p, movingPiece, side, from, to)

	if undo.captured != Empty {
		xorPiece(p, undo.captured, !side, captureSquare(move, side, undo.epSquare))
	}

	p.WhiteMove = side
	p.CastleRights = undo.castleRights
	p.EpSquare = undo.epSquare
	p.Rule50 = undo.rule50
	p.Key = undo.key
	p.Checkers = undo.checkers
	p.LastMove = undo.lastMove
}

func captureSquare(move Move, side bool, epSquare int) int {
	var to = move.To()
	if move.CapturedPiece() == Pawn && to == epSquare {
		return to + let(side, -8, 8)
	}
	return to
}

func moveCastlingRook(p *Position, side bool, from, to int) {
	if side {
		if from == SquareE1 && to == SquareG1 {
			movePiece(p, Rook, true, SquareH1, SquareF1)
		} else if from == SquareE1 && to == SquareC1 {
			movePiece(p, Rook, true, SquareA1, SquareD1)
		}
	} else {
		if from == SquareE8 && to == SquareG8 {
			movePiece(p, Rook, false, SquareH8, SquareF8)
		} else if from == SquareE8 && to == SquareC8 {
			movePiece(p, Rook, false, SquareA8, SquareD8)
		}
	}
}
