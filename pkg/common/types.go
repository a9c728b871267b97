package common

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const (
	WhiteCastleMask = WhiteKingSide | WhiteQueenSide
	BlackCastleMask = BlackKingSide | BlackQueenSide
)

type Position struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, White, Black, Checkers uint64
	WhiteMove                                                             bool
	CastleRights, Rule50, EpSquare                                        int
	Key                                                                   uint64
	LastMove                                                              Move
}

// Undo holds the part of a Position that MakeMove destroys.
// It is valid only for the move it was filled by and is consumed by UnmakeMove.
type Undo struct {
	captured     int
	castleRights int
	epSquare     int
	rule50       int
	key          uint64
	checkers     uint64
	lastMove     Move
}

// Captured returns the piece type removed by the move, or Empty.
func (u *Undo) Captured() int {
	return u.captured
}

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a coloured piece as returned by MakePiece. PieceEmpty marks an empty square.
type Piece int

const PieceEmpty Piece = 0

const (
	MaxMoves = 256
)

type Move int32

const MoveEmpty Move = 0
