package service

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Journal logs every move and state change at debug level.
type Journal struct {
	logger *slog.Logger
}

func NewJournal(logger *slog.Logger) *Journal {
	return &Journal{
		logger: logger.With("component", "journal"),
	}
}

func (that *Journal) OnMoveApplied(ctx context.Context, move entity.Move) error {
	that.logger.DebugContext(ctx, "move applied",
		"row", move.Position.Row,
		"col", move.Position.Col,
		"symbol", move.Symbol.String(),
	)

	return nil
}

func (that *Journal) OnStateChanged(ctx context.Context, state entity.GameState) error {
	that.logger.DebugContext(ctx, "state changed", "state", state.String(), "over", state.IsGameOver())

	return nil
}
