package evalbuilder

import (
	"fmt"

	"github.com/haider92/ChessAI/pkg/engine"
	material "github.com/haider92/ChessAI/pkg/eval/material"
	pst "github.com/haider92/ChessAI/pkg/eval/pst"
)

var Names = []string{"pst", "material"}

// Get returns a constructor for the named evaluator. An empty key selects pst.
func Get(key string) (func() engine.Evaluator, error) {
	switch key {
	case "", "pst":
		return func() engine.Evaluator { return pst.NewEvaluationService() }, nil
	case "material":
		return func() engine.Evaluator { return material.NewEvaluationService() }, nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
