package tictactoe

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Observer is notified synchronously after every mutation of a game.
// A returned error is logged; it never stops the game.
type Observer interface {
	OnMoveApplied(ctx context.Context, move entity.Move) error
	OnStateChanged(ctx context.Context, state entity.GameState) error
}

// ObserverFuncs adapts plain callbacks to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Move  func(ctx context.Context, move entity.Move) error
	State func(ctx context.Context, state entity.GameState) error
}

func (f ObserverFuncs) OnMoveApplied(ctx context.Context, move entity.Move) error {
	if f.Move == nil {
		return nil
	}

	return f.Move(ctx, move)
}

func (f ObserverFuncs) OnStateChanged(ctx context.Context, state entity.GameState) error {
	if f.State == nil {
		return nil
	}

	return f.State(ctx, state)
}
