package arena

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Run plays every opening twice between EngineA and EngineB and returns the score of EngineA.
func Run(ctx context.Context, config Config, logger zerolog.Logger) (Stats, error) {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if config.MaxPlies <= 0 {
		config.MaxPlies = DefaultMaxPlies
	}
	if config.Openings == nil {
		config.Openings = DefaultOpenings
	}

	logger.Info().
		Int("NumCPU", runtime.NumCPU()).
		Int("GOMAXPROCS", runtime.GOMAXPROCS(0)).
		Int("gameConcurrency", config.Concurrency).
		Int("openings", len(config.Openings)).
		Msg("arena started")
	defer logger.Info().Msg("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, config.Openings, gameInfos)
	})

	g.Go(func() error {
		stats = showResults(gameResults, logger)
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults, logger)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stats, err
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
	logger zerolog.Logger,
) error {
	var engineA, err = config.EngineA()
	if err != nil {
		return err
	}
	engineB, err := config.EngineB()
	if err != nil {
		return err
	}
	for gameInfo := range gameInfos {
		logger.Debug().Int("game", gameInfo.gameNumber).Msg("started game")
		var res, err = playGame(ctx, engineA, engineB, config.MaxPlies, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
