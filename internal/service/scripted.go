package service

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrScriptExhausted = errors.New("scripted moves exhausted")

// ScriptedMoveSource replays a fixed list of positions without validating them.
type ScriptedMoveSource struct {
	moves []entity.Position
	next  int
}

func NewScriptedMoveSource(moves ...entity.Position) *ScriptedMoveSource {
	return &ScriptedMoveSource{moves: moves}
}

func (that *ScriptedMoveSource) NextMove(ctx context.Context, _ *entity.Board) (entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return entity.Position{}, err
	}

	if that.next >= len(that.moves) {
		return entity.Position{}, ErrScriptExhausted
	}

	pos := that.moves[that.next]
	that.next++

	return pos, nil
}
