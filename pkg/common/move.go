package common

import "strings"

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 15))
}

func makePawnMove(from, to, capturedPiece, promotion int) Move {
	return Move(from ^ (to << 6) ^ (Pawn << 12) ^ (capturedPiece << 15) ^ (promotion << 18))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 15) & 7)
}

func (m Move) Promotion() int {
	return int((m >> 18) & 7)
}

func (m Move) IsCapture() bool {
	return m.CapturedPiece() != Empty
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

func MakePiece(pieceType int, side bool) Piece {
	if side {
		return Piece(pieceType)
	}
	return Piece(pieceType + 7)
}

func (piece Piece) TypeAndSide() (pieceType int, side bool) {
	if piece < 7 {
		return int(piece), true
	}
	return int(piece) - 7, false
}

// ParseMoveLAN finds the legal move written in long algebraic notation (e2e4, e7e8q).
func (p *Position) ParseMoveLAN(lan string) (Move, bool) {
	for _, mv := range p.GenerateLegalMoves() {
		if strings.EqualFold(mv.String(), lan) {
			return mv, true
		}
	}
	return MoveEmpty, false
}

// MakeMoveLAN applies a move given in long algebraic notation.
func (p *Position) MakeMoveLAN(lan string) bool {
	var mv, ok = p.ParseMoveLAN(lan)
	if !ok {
		return false
	}
	var undo Undo
	return p.MakeMove(mv, &undo)
}
