package agent

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	. "github.com/haider92/ChessAI/pkg/common"
	"github.com/haider92/ChessAI/pkg/engine"
	eval "github.com/haider92/ChessAI/pkg/eval/pst"
)

// Mind is the lifecycle the game host drives: one NewRun, a GetAction per move, one EndRun.
type Mind interface {
	NewRun() error
	EndRun() error
	GetAction(state string) Action
}

const (
	Random    = "random"
	Capture   = "capture"
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
)

var Names = []string{Random, Capture, Minimax, AlphaBeta}

const (
	defaultMinimaxDepth   = 2
	defaultAlphaBetaDepth = 4
)

type Option func(*config)

type config struct {
	depth     int
	evaluator engine.Evaluator
	mateScore bool
	seed      uint64
	logger    zerolog.Logger
}

func WithDepth(depth int) Option {
	return func(c *config) {
		c.depth = depth
	}
}

func WithEvaluator(evaluator engine.Evaluator) Option {
	return func(c *config) {
		c.evaluator = evaluator
	}
}

func WithMateScore(mateScore bool) Option {
	return func(c *config) {
		c.mateScore = mateScore
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Agent adapts a Strategy to the Mind lifecycle. It is safe for concurrent use.
type Agent struct {
	name     string
	strategy Strategy
	logger   zerolog.Logger
	mu       sync.Mutex
	runs     int
	moves    int
}

// New builds one of the named agents.
func New(name string, options ...Option) (*Agent, error) {
	var c = config{
		depth:     -1,
		mateScore: true,
		seed:      uint64(time.Now().UnixNano()),
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.evaluator == nil {
		c.evaluator = eval.NewEvaluationService()
	}

	var strategy Strategy
	switch name {
	case Random:
		strategy = NewRandomStrategy(c.seed)
	case Capture:
		strategy = NewCaptureStrategy(c.seed)
	case Minimax:
		strategy = newSearchStrategy(engine.Minimax, &c, defaultMinimaxDepth)
	case AlphaBeta:
		strategy = newSearchStrategy(engine.AlphaBeta, &c, defaultAlphaBetaDepth)
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
	return NewAgent(name, strategy, c.logger), nil
}

func newSearchStrategy(search engine.SearchFunc, c *config, defaultDepth int) *SearchStrategy {
	var options = engine.NewOptions(c.evaluator)
	options.Depth = defaultDepth
	if c.depth >= 0 {
		options.Depth = c.depth
	}
	options.MateScore = c.mateScore
	return &SearchStrategy{
		Search:  search,
		Options: options,
	}
}

func NewAgent(name string, strategy Strategy, logger zerolog.Logger) *Agent {
	return &Agent{
		name:     name,
		strategy: strategy,
		logger:   logger.With().Str("agent", name).Logger(),
	}
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) NewRun() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.runs++
	a.moves = 0
	a.logger.Debug().Int("run", a.runs).Msg("new run")
	return nil
}

func (a *Agent) EndRun() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Debug().Int("run", a.runs).Int("moves", a.moves).Msg("end run")
	return nil
}

// GetAction never fails: any error is logged and answered with ForfeitAction.
func (a *Agent) GetAction(state string) Action {
	a.mu.Lock()
	defer a.mu.Unlock()

	var start = time.Now()
	var move, err = ChooseMove(state, a.strategy)
	if err != nil {
		a.logger.Error().Err(err).Str("fen", state).Msg("making invalid move")
		return ForfeitAction
	}
	a.moves++

	var event = a.logger.Info().
		Str("fen", state).
		Str("move", move.String()).
		Dur("elapsed", time.Since(start))
	if ss, ok := a.strategy.(*SearchStrategy); ok {
		event = event.
			Int("depth", ss.LastResult.Depth).
			Int("score", ss.LastResult.Score).
			Int64("nodes", ss.LastResult.Nodes).
			Int64("leaves", ss.LastResult.Leaves)
	}
	event.Msg("action")
	return ActionFromMove(move)
}

// Think chooses a move for an already parsed position.
// A non-negative depth overrides the configured depth of a search strategy for this call only.
func (a *Agent) Think(p *Position, depth int) (Move, engine.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var strategy = a.strategy
	if ss, ok := strategy.(*SearchStrategy); ok && depth >= 0 {
		var once = *ss
		once.Options.Depth = depth
		strategy = &once
	}
	var move, err = strategy.ChooseMove(p)
	if err != nil {
		return MoveEmpty, engine.Result{}, err
	}
	a.moves++
	if ss, ok := strategy.(*SearchStrategy); ok {
		return move, ss.LastResult, nil
	}
	return move, engine.Result{Move: move}, nil
}
