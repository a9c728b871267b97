package engine

import (
	"fmt"
)

const DefaultDepth = 2

// Options configures one search call. The search never modifies it.
type Options struct {
	// Depth is the number of plies searched below the root move, so 0 is a one-ply greedy choice.
	Depth     int
	Evaluator Evaluator
	// MateScore scores positions without legal moves as mate or stalemate.
	// When false an empty node keeps its initial bound.
	MateScore bool
}

func NewOptions(evaluator Evaluator) Options {
	return Options{
		Depth:     DefaultDepth,
		Evaluator: evaluator,
		MateScore: true,
	}
}

func (o *Options) validate() error {
	if o.Evaluator == nil {
		return ErrNoEvaluator
	}
	if o.Depth < 0 || o.Depth > MaxDepth {
		return fmt.Errorf("%w: %v not in [0, %v]", ErrInvalidDepth, o.Depth, MaxDepth)
	}
	return nil
}
