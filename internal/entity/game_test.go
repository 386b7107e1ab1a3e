package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_IsGameOver(t *testing.T) {
	t.Run("Won and Draw are terminal", func(t *testing.T) {
		assert.True(t, Won(X).IsGameOver())
		assert.True(t, Won(O).IsGameOver())
		assert.True(t, Draw().IsGameOver())
	})

	t.Run("Turn and InProgress are not terminal", func(t *testing.T) {
		assert.False(t, Turn(X).IsGameOver())
		assert.False(t, Turn(O).IsGameOver())
		assert.False(t, InProgress().IsGameOver())
	})
}

func TestGameState_String(t *testing.T) {
	assert.Equal(t, "turn(X)", Turn(X).String())
	assert.Equal(t, "won(O)", Won(O).String())
	assert.Equal(t, "draw", Draw().String())
	assert.Equal(t, "in progress", InProgress().String())
}

func TestGameState_JSON(t *testing.T) {
	// Given: a terminal state
	state := Won(O)

	// When: it goes through JSON
	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded GameState
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: the encoding is readable and lossless
	assert.JSONEq(t, `{"kind":"won","player":"O"}`, string(data))
	assert.Equal(t, state, decoded)
}

func TestSymbol_UnmarshalText(t *testing.T) {
	t.Run("Accepts every player symbol", func(t *testing.T) {
		for _, want := range PlayerSymbols {
			var got Symbol
			require.NoError(t, got.UnmarshalText([]byte(want.String())))
			assert.Equal(t, want, got)
		}
	})

	t.Run("Rejects unknown text", func(t *testing.T) {
		var s Symbol
		require.Error(t, s.UnmarshalText([]byte("Q")))
	})
}

func TestTransition(t *testing.T) {
	order := []Symbol{X, O}

	t.Run("Alternates between two players", func(t *testing.T) {
		// Given: X's turn and a non-terminal evaluation
		// When: transitioning
		// Then: it is O's turn, and back again
		assert.Equal(t, Turn(O), Transition(Turn(X), InProgress(), order))
		assert.Equal(t, Turn(X), Transition(Turn(O), InProgress(), order))
	})

	t.Run("Terminal result becomes the next state", func(t *testing.T) {
		assert.Equal(t, Won(X), Transition(Turn(X), Won(X), order))
		assert.Equal(t, Draw(), Transition(Turn(X), Draw(), order))
	})

	t.Run("Terminal states absorb every result", func(t *testing.T) {
		for _, terminal := range []GameState{Won(X), Won(O), Draw()} {
			for _, result := range []GameState{InProgress(), Won(O), Won(X), Draw()} {
				assert.Equal(t, terminal, Transition(terminal, result, order))
			}
		}
	})

	t.Run("Rotates through N players", func(t *testing.T) {
		// Given: four players
		order := []Symbol{X, O, Y, Z}

		// When: advancing from each player
		// Then: the next index modulo player count is chosen
		assert.Equal(t, Turn(O), Transition(Turn(X), InProgress(), order))
		assert.Equal(t, Turn(Y), Transition(Turn(O), InProgress(), order))
		assert.Equal(t, Turn(Z), Transition(Turn(Y), InProgress(), order))
		assert.Equal(t, Turn(X), Transition(Turn(Z), InProgress(), order))
	})
}

func TestStateMachine(t *testing.T) {
	t.Run("Starts with the first player's turn", func(t *testing.T) {
		machine := NewStateMachine([]Symbol{X, O})

		assert.Equal(t, Turn(X), machine.Current())
		assert.False(t, machine.IsGameOver())
	})

	t.Run("Stays over once terminal", func(t *testing.T) {
		// Given: a machine that reached Won(X)
		machine := NewStateMachine([]Symbol{X, O})
		machine.Advance(Won(X))
		require.True(t, machine.IsGameOver())

		// When: more results are fed in
		machine.Advance(InProgress())
		machine.Advance(Won(O))

		// Then: the state is still Won(X)
		assert.Equal(t, Won(X), machine.Current())
	})

	t.Run("Order is copied", func(t *testing.T) {
		order := []Symbol{X, O}
		machine := NewStateMachine(order)
		order[1] = Y

		assert.Equal(t, Turn(O), machine.Advance(InProgress()))
	})
}

func TestScenario_TopRowWin(t *testing.T) {
	// Given: an empty 3x3 board and a fresh state machine
	board, err := NewBoard(3, 3)
	require.NoError(t, err)
	machine := NewStateMachine([]Symbol{X, O})

	moves := []Position{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {0, 2}}

	// When: X and O alternate through the moves
	for i, pos := range moves {
		current := machine.Current()
		require.Equal(t, KindTurn, current.Kind, "move %d", i)
		require.NoError(t, board.ApplyMove(pos, current.Player))

		state := machine.Advance(board.Evaluate())
		if i < len(moves)-1 {
			require.False(t, machine.IsGameOver(), "move %d", i)
			require.Equal(t, KindTurn, state.Kind)
		}
	}

	// Then: X wins immediately after the third X move
	assert.Equal(t, Won(X), board.Evaluate())
	assert.Equal(t, Won(X), machine.Current())
	assert.True(t, machine.IsGameOver())
}

func TestScenario_Draw(t *testing.T) {
	// Given: an empty 3x3 board and a fresh state machine
	board, err := NewBoard(3, 3)
	require.NoError(t, err)
	machine := NewStateMachine([]Symbol{X, O})

	moves := []Position{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}}

	// When: all nine moves are played
	for _, pos := range moves {
		require.False(t, machine.IsGameOver())
		require.NoError(t, board.ApplyMove(pos, machine.Current().Player))
		machine.Advance(board.Evaluate())
	}

	// Then: the board is full without a line
	assert.Equal(t, Draw(), machine.Current())
	assert.True(t, board.IsFull())
}
