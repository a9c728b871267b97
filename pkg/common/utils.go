package common

import (
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](l, r T) T {
	if l < r {
		return l
	}
	return r
}

func Max[T constraints.Ordered](l, r T) T {
	if l > r {
		return l
	}
	return r
}

func AbsDelta[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

func let(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}

func parsePiece(ch rune) (coloredPiece, bool) {
	var side = unicode.IsUpper(ch)
	var i = strings.IndexRune("pnbrqk", unicode.ToLower(ch))
	if i < 0 {
		return coloredPiece{}, false
	}
	return coloredPiece{i + Pawn, side}, true
}

func pieceToChar(pieceType int, side bool) string {
	var result = string("pnbrqk"[pieceType-Pawn])
	if side {
		result = strings.ToUpper(result)
	}
	return result
}
