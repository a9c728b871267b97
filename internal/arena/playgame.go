package arena

import (
	"context"

	"github.com/pkg/errors"

	"github.com/haider92/ChessAI/pkg/agent"
	"github.com/haider92/ChessAI/pkg/common"
)

const DefaultMaxPlies = 300

func playGame(
	ctx context.Context,
	engineA, engineB agent.Mind,
	maxPlies int,
	info gameInfo,
) (res gameResult, err error) {
	var pos common.Position
	pos, err = common.NewPositionFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	for _, mind := range []agent.Mind{engineA, engineB} {
		if err = mind.NewRun(); err != nil {
			return gameResult{}, errors.Wrap(err, "new run")
		}
	}
	defer func() {
		for _, mind := range []agent.Mind{engineA, engineB} {
			if endErr := mind.EndRun(); endErr != nil && err == nil {
				err = errors.Wrap(endErr, "end run")
			}
		}
	}()

	res = gameResult{gameInfo: info}
	var keys = make(map[uint64]int)

	for ply := 0; ; ply++ {
		if err = ctx.Err(); err != nil {
			return gameResult{}, err
		}
		keys[pos.Key]++
		if result, comment, over := Adjudicate(&pos, keys[pos.Key]); over {
			res.result = result
			res.comment = comment
			return res, nil
		}
		if ply >= maxPlies {
			res.result = gameResultDraw
			res.comment = "max plies"
			return res, nil
		}

		var mind = engineB
		if pos.WhiteMove == info.engineAIsWhite {
			mind = engineA
		}
		var action = mind.GetAction(pos.String())
		var move, ok = agent.FindMove(&pos, action)
		if !ok {
			res.result = lossFor(pos.WhiteMove)
			res.comment = "illegal move " + action.String()
			if action.IsForfeit() {
				res.comment = "forfeit"
			}
			return res, nil
		}
		var undo common.Undo
		pos.MakeMove(move, &undo)
		res.moves = append(res.moves, move)
	}
}

// Adjudicate reports whether the game is over in p.
// repetitions is how many times p has occurred, including now.
func Adjudicate(p *common.Position, repetitions int) (result int, comment string, over bool) {
	if len(p.GenerateLegalMoves()) == 0 {
		if p.IsCheck() {
			return lossFor(p.WhiteMove), "checkmate", true
		}
		return gameResultDraw, "stalemate", true
	}
	if p.Rule50 >= 100 {
		return gameResultDraw, "50 moves", true
	}
	if p.IsInsufficientMaterial() {
		return gameResultDraw, "low material", true
	}
	if repetitions >= 3 {
		return gameResultDraw, "3 fold repetition", true
	}
	return gameResultDraw, "", false
}

func lossFor(whiteMove bool) int {
	if whiteMove {
		return gameResultBlackWins
	}
	return gameResultWhiteWins
}

func ResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
