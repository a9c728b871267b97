package arena

import (
	"math"

	"github.com/rs/zerolog"
)

func showResults(
	gameResults <-chan gameResult,
	logger zerolog.Logger,
) Stats {
	var stats Stats
	for gameResult := range gameResults {
		stats.Games++
		if gameResult.result == gameResultDraw {
			stats.Draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			stats.Wins++
		} else {
			stats.Losses++
		}
		computeStat(&stats)
		logger.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("result", ResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("plies", len(gameResult.moves)).
			Msg("finished game")
		logger.Info().
			Int("wins", stats.Wins).
			Int("losses", stats.Losses).
			Int("draws", stats.Draws).
			Float64("score", stats.WinningFraction).
			Float64("elo", stats.EloDifference).
			Float64("los", stats.LOS).
			Msg("score")
	}
	return stats
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(stats *Stats) {
	var games = stats.Wins + stats.Losses + stats.Draws
	if games == 0 {
		return
	}
	stats.WinningFraction = (float64(stats.Wins) + 0.5*float64(stats.Draws)) / float64(games)
	stats.EloDifference = -math.Log(1/stats.WinningFraction-1) * 400 / math.Ln10
	if stats.Wins+stats.Losses == 0 {
		stats.LOS = 0.5
	} else {
		stats.LOS = 0.5 + 0.5*math.Erf(float64(stats.Wins-stats.Losses)/math.Sqrt(2*float64(stats.Wins+stats.Losses)))
	}
}
