package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mv(row, col int, symbol entity.Symbol) entity.Move {
	return entity.Move{Position: entity.Position{Row: row, Col: col}, Symbol: symbol}
}

func TestBotMoveSource_NextMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Picks an empty cell", func(t *testing.T) {
		// Given: a board with a single free cell
		board := newBoard(t,
			mv(0, 0, entity.X), mv(0, 1, entity.O), mv(0, 2, entity.X),
			mv(1, 0, entity.X), mv(1, 1, entity.O), mv(1, 2, entity.O),
			mv(2, 0, entity.O), mv(2, 1, entity.X),
		)
		bot := NewBotMoveSource(rand.New(rand.NewSource(1))) //nolint: gosec // it's ok

		// When: the bot moves
		pos, err := bot.NextMove(ctx, board)

		// Then: it takes the free cell
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 2, Col: 2}, pos)
	})

	t.Run("Always valid on an empty board", func(t *testing.T) {
		bot := NewBotMoveSource(nil)
		board := newBoard(t)

		for i := 0; i < 50; i++ {
			pos, err := bot.NextMove(ctx, board)
			require.NoError(t, err)
			assert.True(t, board.IsValidMove(pos))
		}
	})

	t.Run("Full board", func(t *testing.T) {
		board := newBoard(t,
			mv(0, 0, entity.X), mv(0, 1, entity.O), mv(0, 2, entity.X),
			mv(1, 0, entity.X), mv(1, 1, entity.O), mv(1, 2, entity.O),
			mv(2, 0, entity.O), mv(2, 1, entity.X), mv(2, 2, entity.X),
		)

		_, err := NewBotMoveSource(nil).NextMove(ctx, board)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestSmartBotMoveSource_NextMove(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7)) //nolint: gosec // it's ok
	twoPlayers := []entity.Symbol{entity.X, entity.O}

	t.Run("Completes its own line", func(t *testing.T) {
		// Given: X can win at (0,2) and O threatens (1,2)
		board := newBoard(t, mv(0, 0, entity.X), mv(0, 1, entity.X), mv(1, 0, entity.O), mv(1, 1, entity.O))

		// When: X's smart bot moves
		pos, err := NewSmartBotMoveSource(entity.X, twoPlayers, rng).NextMove(ctx, board)

		// Then: it takes the win instead of blocking
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 0, Col: 2}, pos)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: X threatens the top row
		board := newBoard(t, mv(0, 0, entity.X), mv(0, 1, entity.X), mv(2, 2, entity.O))

		// When: O's smart bot moves
		pos, err := NewSmartBotMoveSource(entity.O, twoPlayers, rng).NextMove(ctx, board)

		// Then: it blocks at (0,2)
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 0, Col: 2}, pos)
	})

	t.Run("Blocks the opponent who moves next", func(t *testing.T) {
		// Given: X and Y both threaten a row and Y plays right after O
		board := newBoard(t,
			mv(0, 0, entity.X), mv(0, 1, entity.X),
			mv(1, 0, entity.O),
			mv(2, 0, entity.Y), mv(2, 1, entity.Y),
		)
		order := []entity.Symbol{entity.X, entity.O, entity.Y}

		// When: O's smart bot moves
		pos, err := NewSmartBotMoveSource(entity.O, order, rng).NextMove(ctx, board)

		// Then: it blocks Y at (2,2)
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 2, Col: 2}, pos)
	})

	t.Run("Prefers the centre", func(t *testing.T) {
		pos, err := NewSmartBotMoveSource(entity.X, twoPlayers, rng).NextMove(ctx, newBoard(t))

		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, pos)
	})

	t.Run("Falls back to a random empty cell", func(t *testing.T) {
		board := newBoard(t, mv(1, 1, entity.X))

		pos, err := NewSmartBotMoveSource(entity.O, twoPlayers, rng).NextMove(ctx, board)

		require.NoError(t, err)
		assert.True(t, board.IsValidMove(pos))
	})
}

func TestOpponentsAfter(t *testing.T) {
	order := []entity.Symbol{entity.X, entity.O, entity.Y, entity.Z}

	assert.Equal(t, []entity.Symbol{entity.O, entity.Y, entity.Z}, opponentsAfter(entity.X, order))
	assert.Equal(t, []entity.Symbol{entity.Z, entity.X, entity.O}, opponentsAfter(entity.Y, order))
	assert.Equal(t, []entity.Symbol{entity.X, entity.O, entity.Y}, opponentsAfter(entity.Z, order))
	assert.Equal(t, []entity.Symbol{entity.X}, opponentsAfter(entity.O, order[:2]))
}

func TestScriptedMoveSource_NextMove(t *testing.T) {
	ctx := context.Background()
	source := NewScriptedMoveSource(entity.Position{Row: 0, Col: 0}, entity.Position{Row: 9, Col: 9})

	pos, err := source.NextMove(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.Position{Row: 0, Col: 0}, pos)

	pos, err = source.NextMove(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.Position{Row: 9, Col: 9}, pos)

	_, err = source.NextMove(ctx, nil)
	require.ErrorIs(t, err, ErrScriptExhausted)
}
