package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/haider92/ChessAI/internal/arena"
	"github.com/haider92/ChessAI/pkg/agent"
	"github.com/haider92/ChessAI/pkg/common"
	"github.com/haider92/ChessAI/pkg/uci"
)

// play runs a console game between a human typing moves like e2e4 and the agent.
func play(ctx context.Context, mind agent.Mind, humanWhite bool, in io.Reader, out io.Writer) error {
	var p, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		return err
	}
	if err := mind.NewRun(); err != nil {
		return err
	}
	defer mind.EndRun()

	var keys = map[uint64]int{p.Key: 1}
	var scanner = bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		uci.PrintPosition(out, &p)
		if result, comment, over := arena.Adjudicate(&p, keys[p.Key]); over {
			fmt.Fprintf(out, "%v {%v}\n", arena.ResultString(result), comment)
			return nil
		}

		if p.WhiteMove == humanWhite {
			fmt.Fprint(out, "your move: ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			var lan = strings.TrimSpace(scanner.Text())
			if lan == "quit" {
				return nil
			}
			if !p.MakeMoveLAN(lan) {
				fmt.Fprintf(out, "illegal move %v\n", lan)
				continue
			}
		} else {
			var action = mind.GetAction(p.String())
			var move, ok = agent.FindMove(&p, action)
			if !ok {
				fmt.Fprintf(out, "agent forfeits with %v\n", action)
				return nil
			}
			fmt.Fprintf(out, "agent plays %v\n", move)
			var undo common.Undo
			p.MakeMove(move, &undo)
		}
		keys[p.Key]++
	}
}
