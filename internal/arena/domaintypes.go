package arena

import (
	"github.com/haider92/ChessAI/pkg/agent"
	"github.com/haider92/ChessAI/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

// MindFactory builds a fresh Mind for one worker. Minds are never shared between games played concurrently.
type MindFactory func() (agent.Mind, error)

type Config struct {
	EngineA     MindFactory
	EngineB     MindFactory
	Openings    []string
	Concurrency int
	MaxPlies    int
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Move
	comment  string
	result   int
}

// Stats counts results from EngineA's point of view.
type Stats struct {
	Games           int
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}
