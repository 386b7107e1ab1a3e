package entity

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// MoveSource produces the next position for a player. The board it receives
// is a snapshot; implementations are expected to return only positions that
// pass board.IsValidMove.
type MoveSource interface {
	NextMove(ctx context.Context, board *Board) (Position, error)
}

// MoveSourceFunc adapts a plain function to MoveSource.
type MoveSourceFunc func(ctx context.Context, board *Board) (Position, error)

func (f MoveSourceFunc) NextMove(ctx context.Context, board *Board) (Position, error) {
	return f(ctx, board)
}

type Player struct {
	Name   string
	Symbol Symbol
	Source MoveSource
}

func NewPlayer(name string, symbol Symbol, source MoveSource) Player {
	return Player{
		Name:   name,
		Symbol: symbol,
		Source: source,
	}
}

// NamedSource is a move source waiting for a symbol.
type NamedSource struct {
	Name   string
	Source MoveSource
}

// NewPlayers hands out PlayerSymbols in order. Configurations with more
// players than symbols are rejected.
func NewPlayers(sources ...NamedSource) ([]Player, error) {
	if len(sources) < 2 {
		return nil, fmt.Errorf("%w: got %d, need at least 2", apperror.ErrTooFewPlayers, len(sources))
	}

	if len(sources) > len(PlayerSymbols) {
		return nil, fmt.Errorf("%w: got %d, at most %d symbols available",
			apperror.ErrTooManyPlayers, len(sources), len(PlayerSymbols))
	}

	players := make([]Player, 0, len(sources))
	for i, src := range sources {
		name := src.Name
		if name == "" {
			name = "Player" + PlayerSymbols[i].String()
		}

		players = append(players, NewPlayer(name, PlayerSymbols[i], src.Source))
	}

	return players, nil
}
