package engine

const (
	MaxDepth      = 64
	stackSize     = MaxDepth + 2
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

type UciScore struct {
	Centipawns int
	Mate       int
}

func newUciScore(v int) UciScore {
	if v >= valueInfinity || v <= -valueInfinity {
		return UciScore{Centipawns: v}
	}
	if v >= valueWin {
		return UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-valueMate - v) / 2}
	} else {
		return UciScore{Centipawns: v}
	}
}
