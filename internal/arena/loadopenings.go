package arena

import (
	"context"

	"github.com/haider92/ChessAI/pkg/common"
)

func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, opening := range openings {
		if _, err := common.NewPositionFromFEN(opening); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}
