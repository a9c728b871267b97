package agent

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/haider92/ChessAI/pkg/common"
)

// Action is the reply sent to the game host: origin and destination square indices, a1 = 0.
type Action struct {
	From int
	To   int
}

// ForfeitAction is an intentionally invalid move. The host treats it as a forfeit.
var ForfeitAction = Action{From: 0, To: 0}

func ActionFromMove(m Move) Action {
	return Action{From: m.From(), To: m.To()}
}

func (a Action) String() string {
	return strconv.Itoa(a.From) + "," + strconv.Itoa(a.To)
}

func (a Action) IsForfeit() bool {
	return a == ForfeitAction
}

func ParseAction(s string) (Action, error) {
	var from, to, found = strings.Cut(strings.TrimSpace(s), ",")
	if !found {
		return Action{}, fmt.Errorf("bad action %q", s)
	}
	var a Action
	var err error
	if a.From, err = strconv.Atoi(strings.TrimSpace(from)); err != nil {
		return Action{}, fmt.Errorf("bad action %q: %w", s, err)
	}
	if a.To, err = strconv.Atoi(strings.TrimSpace(to)); err != nil {
		return Action{}, fmt.Errorf("bad action %q: %w", s, err)
	}
	if a.From < 0 || a.From > 63 || a.To < 0 || a.To > 63 {
		return Action{}, fmt.Errorf("bad action %q: square out of range", s)
	}
	return a, nil
}

// FindMove returns the legal move described by the action.
// The action carries no promotion piece, so a queen is assumed.
func FindMove(p *Position, a Action) (Move, bool) {
	var result = MoveEmpty
	for _, m := range p.GenerateLegalMoves() {
		if m.From() != a.From || m.To() != a.To {
			continue
		}
		if m.Promotion() == Empty || m.Promotion() == Queen {
			return m, true
		}
		if result == MoveEmpty {
			result = m
		}
	}
	return result, result != MoveEmpty
}
