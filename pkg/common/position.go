package common

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

type coloredPiece struct {
	Type int
	Side bool
}

var castleMask [64]int

var errIllegalPosition = errors.New("side not to move is in check")

func createPosition(board [64]coloredPiece, wtm bool,
	castleRights, ep, fifty int) (Position, error) {
	var p = Position{
		WhiteMove:    wtm,
		CastleRights: castleRights,
		EpSquare:     ep,
		Rule50:       fifty,
		LastMove:     MoveEmpty,
	}

	for sq, piece := range board {
		if piece.Type != Empty {
			xorPiece(&p, piece.Type, piece.Side, sq)
		}
	}

	if PopCount(p.Kings&p.White) != 1 || PopCount(p.Kings&p.Black) != 1 {
		return Position{}, errors.New("each side must have exactly one king")
	}
	if (p.Pawns & (Rank1Mask | Rank8Mask)) != 0 {
		return Position{}, errors.New("pawn on first or last rank")
	}
	p.CastleRights &= p.possibleCastleRights()
	if ep != SquareNone && !p.isValidEpSquare(ep) {
		p.EpSquare = SquareNone
	}

	p.Key = p.computeKey()
	p.Checkers = p.computeCheckers()

	if !p.isLegal() {
		return Position{}, errIllegalPosition
	}
	return p, nil
}

// possibleCastleRights drops rights whose king or rook is not on its home square.
func (p *Position) possibleCastleRights() int {
	var result = 0
	var whiteKing = (p.Kings & p.White & SquareMask[SquareE1]) != 0
	var blackKing = (p.Kings & p.Black & SquareMask[SquareE8]) != 0
	var whiteRooks = p.Rooks & p.White
	var blackRooks = p.Rooks & p.Black
	if whiteKing && (whiteRooks&SquareMask[SquareH1]) != 0 {
		result |= WhiteKingSide
	}
	if whiteKing && (whiteRooks&SquareMask[SquareA1]) != 0 {
		result |= WhiteQueenSide
	}
	if blackKing && (blackRooks&SquareMask[SquareH8]) != 0 {
		result |= BlackKingSide
	}
	if blackKing && (blackRooks&SquareMask[SquareA8]) != 0 {
		result |= BlackQueenSide
	}
	return result
}

func (p *Position) isValidEpSquare(ep int) bool {
	var allPieces = p.White | p.Black
	if (allPieces & SquareMask[ep]) != 0 {
		return false
	}
	if p.WhiteMove {
		return Rank(ep) == Rank6 && (p.Pawns&p.Black&SquareMask[ep-8]) != 0
	}
	return Rank(ep) == Rank3 && (p.Pawns&p.White&SquareMask[ep+8]) != 0
}

func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) <= 3 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var board [64]coloredPiece

	var i = 0
	for _, ch := range tokens[0] {
		if ch == '/' {
			if i%8 != 0 {
				return Position{}, fmt.Errorf("parse fen failed %v: short rank", fen)
			}
			continue
		}
		if ch >= '1' && ch <= '8' {
			i += int(ch - '0')
			continue
		}
		var pt, ok = parsePiece(ch)
		if !ok || i >= 64 {
			return Position{}, fmt.Errorf("parse fen failed %v: bad piece placement", fen)
		}
		board[FlipSquare(i)] = pt
		i++
	}
	if i != 64 {
		return Position{}, fmt.Errorf("parse fen failed %v: bad piece placement", fen)
	}

	var whiteMove bool
	switch tokens[1] {
	case "w":
		whiteMove = true
	case "b":
		whiteMove = false
	default:
		return Position{}, fmt.Errorf("parse fen failed %v: bad side to move", fen)
	}

	var sCastleRights = tokens[2]
	var cr = 0
	if strings.Contains(sCastleRights, "K") {
		cr |= WhiteKingSide
	}
	if strings.Contains(sCastleRights, "Q") {
		cr |= WhiteQueenSide
	}
	if strings.Contains(sCastleRights, "k") {
		cr |= BlackKingSide
	}
	if strings.Contains(sCastleRights, "q") {
		cr |= BlackQueenSide
	}

	var epSquare, err = ParseSquare(tokens[3])
	if err != nil {
		return Position{}, fmt.Errorf("parse fen failed %v: %w", fen, err)
	}

	var rule50 = 0
	if len(tokens) > 4 {
		rule50, _ = strconv.Atoi(tokens[4])
	}

	pos, err := createPosition(board, whiteMove, cr, epSquare, rule50)
	if err != nil {
		return Position{}, fmt.Errorf("parse fen failed %v: %w", fen, err)
	}
	return pos, nil
}

func (p *Position) String() string {
	var sb strings.Builder

	var emptyCount = 0

	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece, pieceSide = p.GetPieceTypeAndSide(sq)
		if piece == Empty {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(piece, pieceSide))
		}

		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}
	sb.WriteString(" ")

	if p.WhiteMove {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" ")

	if p.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		if (p.CastleRights & WhiteKingSide) != 0 {
			sb.WriteString("K")
		}
		if (p.CastleRights & WhiteQueenSide) != 0 {
			sb.WriteString("Q")
		}
		if (p.CastleRights & BlackKingSide) != 0 {
			sb.WriteString("k")
		}
		if (p.CastleRights & BlackQueenSide) != 0 {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")

	if p.EpSquare == SquareNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(SquareName(p.EpSquare))
	}
	sb.WriteString(" ")

	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteString(" ")

	sb.WriteString(strconv.Itoa(p.Rule50/2 + 1))

	return sb.String()
}

func (p *Position) GetPieceTypeAndSide(sq int) (pieceType int, side bool) {
	var bb = SquareMask[sq]
	if (p.White & bb) != 0 {
		side = true
	} else if (p.Black & bb) == 0 {
		return Empty, false
	}
	pieceType = p.WhatPiece(sq)
	return
}

// Squares returns the contents of all 64 squares, a1 first.
func (p *Position) Squares() (board [64]Piece) {
	for x := p.White | p.Black; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var pieceType, side = p.GetPieceTypeAndSide(sq)
		board[sq] = MakePiece(pieceType, side)
	}
	return board
}

func (p *Position) WhatPiece(sq int) int {
	var bb = SquareMask[sq]
	if ((p.White | p.Black) & bb) == 0 {
		return Empty
	}
	if (p.Pawns & bb) != 0 {
		return Pawn
	}
	if (p.Knights & bb) != 0 {
		return Knight
	}
	if (p.Bishops & bb) != 0 {
		return Bishop
	}
	if (p.Rooks & bb) != 0 {
		return Rook
	}
	if (p.Queens & bb) != 0 {
		return Queen
	}
	if (p.Kings & bb) != 0 {
		return King
	}
	panic(fmt.Errorf("Wrong piece on %s", SquareName(sq)))
}

func (p *Position) PiecesByColor(side bool) uint64 {
	if side {
		return p.White
	}
	return p.Black
}

func xorPiece(p *Position, piece int, side bool, square int) {
	var b = SquareMask[square]
	if side {
		p.White ^= b
	} else {
		p.Black ^= b
	}
	switch piece {
	case Pawn:
		p.Pawns ^= b
	case Knight:
		p.Knights ^= b
	case Bishop:
		p.Bishops ^= b
	case Rook:
		p.Rooks ^= b
	case Queen:
		p.Queens ^= b
	case King:
		p.Kings ^= b
	}
	p.Key ^= PieceSquareKey(piece, side, square)
}

func movePiece(p *Position, piece int, side bool, from int, to int) {
	var b = SquareMask[from] ^ SquareMask[to]
	if side {
		p.White ^= b
	} else {
		p.Black ^= b
	}
	switch piece {
	case Pawn:
		p.Pawns ^= b
	case Knight:
		p.Knights ^= b
	case Bishop:
		p.Bishops ^= b
	case Rook:
		p.Rooks ^= b
	case Queen:
		p.Queens ^= b
	case King:
		p.Kings ^= b
	}
	p.Key ^= PieceSquareKey(piece, side, from) ^ PieceSquareKey(piece, side, to)
}

func (p *Position) isAttackedBySide(sq int, side bool) bool {
	var enemy = p.PiecesByColor(side)
	if (PawnAttacks(sq, !side) & p.Pawns & enemy) != 0 {
		return true
	}
	if (KnightAttacks[sq] & p.Knights & enemy) != 0 {
		return true
	}
	if (KingAttacks[sq] & p.Kings & enemy) != 0 {
		return true
	}
	var allPieces = p.White | p.Black
	if (BishopAttacks(sq, allPieces) & (p.Bishops | p.Queens) & enemy) != 0 {
		return true
	}
	if (RookAttacks(sq, allPieces) & (p.Rooks | p.Queens) & enemy) != 0 {
		return true
	}
	return false
}

func (p *Position) attackersTo(sq int) uint64 {
	var occ = p.White | p.Black
	return (blackPawnAttacks[sq] & p.Pawns & p.White) |
		(whitePawnAttacks[sq] & p.Pawns & p.Black) |
		(KnightAttacks[sq] & p.Knights) |
		(BishopAttacks(sq, occ) & (p.Bishops | p.Queens)) |
		(RookAttacks(sq, occ) & (p.Rooks | p.Queens)) |
		(KingAttacks[sq] & p.Kings)
}

func (p *Position) computeCheckers() uint64 {
	if p.WhiteMove {
		return p.attackersTo(FirstOne(p.Kings&p.White)) & p.Black
	}
	return p.attackersTo(FirstOne(p.Kings&p.Black)) & p.White
}

// isLegal reports whether the side that just moved left its king safe.
func (p *Position) isLegal() bool {
	var kingSq = FirstOne(p.Kings & p.PiecesByColor(!p.WhiteMove))
	return !p.isAttackedBySide(kingSq, p.WhiteMove)
}

func (p *Position) IsCheck() bool {
	return p.Checkers != 0
}

// IsInsufficientMaterial reports bare kings or a single minor piece.
func (p *Position) IsInsufficientMaterial() bool {
	return (p.Pawns|p.Rooks|p.Queens) == 0 &&
		!MoreThanOne(p.Knights|p.Bishops)
}

var (
	sideKey        uint64
	enpassantKey   [8]uint64
	castlingKey    [16]uint64
	pieceSquareKey [7 * 2 * 64]uint64
)

func PieceSquareKey(piece int, side bool, square int) uint64 {
	return pieceSquareKey[int(MakePiece(piece, side))*64+square]
}

func (p *Position) computeKey() uint64 {
	var result = uint64(0)
	if p.WhiteMove {
		result ^= sideKey
	}
	result ^= castlingKey[p.CastleRights]
	if p.EpSquare != SquareNone {
		result ^= enpassantKey[File(p.EpSquare)]
	}
	for x := p.White | p.Black; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var piece, side = p.GetPieceTypeAndSide(sq)
		result ^= PieceSquareKey(piece, side, sq)
	}
	return result
}

func initKeys() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range enpassantKey {
		enpassantKey[i] = r.Uint64()
	}
	for i := range pieceSquareKey {
		pieceSquareKey[i] = r.Uint64()
	}

	var castle [4]uint64
	for i := range castle {
		castle[i] = r.Uint64()
	}

	for i := range castlingKey {
		for j := 0; j < 4; j++ {
			if (i & (1 << uint(j))) != 0 {
				castlingKey[i] ^= castle[j]
			}
		}
	}
}

// MirrorPosition swaps colours and flips the board vertically.
func MirrorPosition(p *Position) Position {
	var board [64]coloredPiece
	for i := range board {
		var pt, side = p.GetPieceTypeAndSide(i)
		if pt != Empty {
			board[FlipSquare(i)] = coloredPiece{pt, !side}
		}
	}
	var cr = (p.CastleRights >> 2) | ((p.CastleRights & 3) << 2)
	var ep = SquareNone
	if p.EpSquare != SquareNone {
		ep = FlipSquare(p.EpSquare)
	}
	var pos, _ = createPosition(board, !p.WhiteMove, cr, ep, p.Rule50)
	return pos
}

func init() {
	initKeys()
	for i := range castleMask {
		castleMask[i] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	castleMask[SquareA1] &^= WhiteQueenSide
	castleMask[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	castleMask[SquareH1] &^= WhiteKingSide
	castleMask[SquareA8] &^= BlackQueenSide
	castleMask[SquareE8] &^= BlackQueenSide | BlackKingSide
	castleMask[SquareH8] &^= BlackKingSide
}
