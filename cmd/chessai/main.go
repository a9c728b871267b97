package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/haider92/ChessAI/internal/arena"
	"github.com/haider92/ChessAI/internal/evalbuilder"
	"github.com/haider92/ChessAI/internal/server"
	"github.com/haider92/ChessAI/pkg/agent"
	"github.com/haider92/ChessAI/pkg/uci"
)

const (
	name   = "ChessAI"
	author = "ChessAI authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

type config struct {
	mode        string
	agent       string
	opponent    string
	depth       int
	eval        string
	mateScore   bool
	seed        uint64
	addr        string
	games       int
	concurrency int
	maxPlies    int
	human       string
	verbose     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "uci", "uci, http, arena or play")
	flag.StringVar(&cfg.agent, "agent", agent.AlphaBeta, "random, capture, minimax or alphabeta")
	flag.StringVar(&cfg.opponent, "opponent", agent.Random, "arena opponent agent")
	flag.IntVar(&cfg.depth, "depth", -1, "search depth below the root move, -1 for the agent default")
	flag.StringVar(&cfg.eval, "eval", "pst", "evaluation function: pst or material")
	flag.BoolVar(&cfg.mateScore, "mate", true, "score checkmate and stalemate inside the search")
	flag.Uint64Var(&cfg.seed, "seed", 0, "seed for random agents, 0 for time based")
	flag.StringVar(&cfg.addr, "addr", ":8080", "http listen address")
	flag.IntVar(&cfg.concurrency, "concurrency", runtime.NumCPU(), "arena games played at once")
	flag.IntVar(&cfg.games, "games", 0, "arena openings to play, each twice; 0 for all")
	flag.IntVar(&cfg.maxPlies, "plies", arena.DefaultMaxPlies, "arena game length limit in plies")
	flag.StringVar(&cfg.human, "human", "white", "side played by the human in play mode")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	var level = zerolog.InfoLevel
	if cfg.verbose {
		level = zerolog.DebugLevel
	}
	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	logger.Info().
		Str("name", name).
		Str("VersionName", versionName).
		Str("BuildDate", buildDate).
		Str("GitRevision", gitRevision).
		Str("RuntimeVersion", runtime.Version()).
		Str("GOARCH", runtime.GOARCH).
		Str("GOOS", runtime.GOOS).
		Int("NumCPU", runtime.NumCPU()).
		Msg("started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exit")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger zerolog.Logger) error {
	var buildEval, err = evalbuilder.Get(cfg.eval)
	if err != nil {
		return err
	}
	var seeds atomic.Uint64
	seeds.Store(cfg.seed)
	var newAgent = func(agentName string) (*agent.Agent, error) {
		var seed = uint64(time.Now().UnixNano())
		if cfg.seed != 0 {
			seed = seeds.Add(1)
		}
		return agent.New(agentName,
			agent.WithDepth(cfg.depth),
			agent.WithEvaluator(buildEval()),
			agent.WithMateScore(cfg.mateScore),
			agent.WithSeed(seed),
			agent.WithLogger(logger))
	}

	switch cfg.mode {
	case "uci":
		var a, err = newAgent(cfg.agent)
		if err != nil {
			return err
		}
		var protocol = uci.New(name, author, versionName, a, nil, os.Stdout, logger)
		return protocol.Run(ctx, os.Stdin)
	case "http":
		var a, err = newAgent(cfg.agent)
		if err != nil {
			return err
		}
		var s = server.New(a, func() (agent.Mind, error) {
			return newAgent(cfg.agent)
		}, logger)
		return s.ListenAndServe(ctx, cfg.addr)
	case "arena":
		var openings = arena.DefaultOpenings
		if cfg.games > 0 && cfg.games < len(openings) {
			openings = openings[:cfg.games]
		}
		var stats, err = arena.Run(ctx, arena.Config{
			EngineA:     func() (agent.Mind, error) { return newAgent(cfg.agent) },
			EngineB:     func() (agent.Mind, error) { return newAgent(cfg.opponent) },
			Openings:    openings,
			Concurrency: cfg.concurrency,
			MaxPlies:    cfg.maxPlies,
		}, logger)
		if err != nil {
			return err
		}
		fmt.Printf("%v vs %v: +%v -%v =%v (%.3f)\n",
			cfg.agent, cfg.opponent, stats.Wins, stats.Losses, stats.Draws, stats.WinningFraction)
		return nil
	case "play":
		var a, err = newAgent(cfg.agent)
		if err != nil {
			return err
		}
		return play(ctx, a, cfg.human != "black", os.Stdin, os.Stdout)
	}
	return fmt.Errorf("unknown mode %q", cfg.mode)
}
