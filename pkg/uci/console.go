package uci

import (
	"fmt"
	"io"

	"github.com/haider92/ChessAI/pkg/common"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const (
	fgBlack   = 30
	bgWhite   = 47
	bgHiWhite = 107
)

var chessSymbols = [2][7]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

// PrintPosition draws the board with rank 8 on top, followed by the FEN.
func PrintPosition(w io.Writer, p *common.Position) {
	var board = p.Squares()
	for i := 0; i < 64; i++ {
		var sq = common.FlipSquare(i)
		if common.File(sq) == common.FileA {
			fmt.Fprintf(w, "%d ", common.Rank(sq)+1)
		}
		var piece, side = board[sq].TypeAndSide()
		fmt.Fprint(w, pieceString(piece, side, common.IsDarkSquare(sq)))
		if common.File(sq) == common.FileH {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "  a b c d e f g h")
	fmt.Fprintln(w, p.String())
}

func pieceString(piece int, side, darkSquare bool) string {
	var s string
	if side {
		s = chessSymbols[0][piece]
	} else {
		s = chessSymbols[1][piece]
	}
	s += " "
	var bgColor = bgHiWhite
	if darkSquare {
		bgColor = bgWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%d;%dm%s%s[%dm", escape, fgBlack, bgColor, s, escape, reset)
}
