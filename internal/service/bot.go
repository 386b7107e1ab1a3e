package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotMoveSource picks a random empty cell.
type BotMoveSource struct {
	rng *rand.Rand
}

// NewBotMoveSource uses rng when given, the global source otherwise.
func NewBotMoveSource(rng *rand.Rand) *BotMoveSource {
	return &BotMoveSource{rng: rng}
}

func (that *BotMoveSource) NextMove(ctx context.Context, board *entity.Board) (entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return entity.Position{}, err
	}

	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return entity.Position{}, ErrNoAvailableMoves
	}

	return availableCells[that.intn(len(availableCells))], nil
}

func (that *BotMoveSource) intn(n int) int {
	if that.rng == nil {
		return rand.Intn(n) //nolint: gosec // it's ok
	}

	return that.rng.Intn(n)
}

// SmartBotMoveSource completes its own line when it can, blocks the opponent
// who moves soonest among those about to complete one, prefers the centre and
// otherwise plays randomly.
type SmartBotMoveSource struct {
	symbol    entity.Symbol
	opponents []entity.Symbol
	fallback  *BotMoveSource
}

// NewSmartBotMoveSource takes the turn order of the game; an empty order
// means PlayerSymbols.
func NewSmartBotMoveSource(symbol entity.Symbol, order []entity.Symbol, rng *rand.Rand) *SmartBotMoveSource {
	if len(order) == 0 {
		order = entity.PlayerSymbols
	}

	return &SmartBotMoveSource{
		symbol:    symbol,
		opponents: opponentsAfter(symbol, order),
		fallback:  NewBotMoveSource(rng),
	}
}

// opponentsAfter lists the other symbols in the order they play after symbol.
func opponentsAfter(symbol entity.Symbol, order []entity.Symbol) []entity.Symbol {
	start := 0
	for i, s := range order {
		if s == symbol {
			start = i + 1
			break
		}
	}

	opponents := make([]entity.Symbol, 0, len(order))
	for i := range order {
		s := order[(start+i)%len(order)]
		if s != symbol {
			opponents = append(opponents, s)
		}
	}

	return opponents
}

func (that *SmartBotMoveSource) NextMove(ctx context.Context, board *entity.Board) (entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return entity.Position{}, err
	}

	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return entity.Position{}, ErrNoAvailableMoves
	}

	if pos, ok := winningCell(board, availableCells, that.symbol); ok {
		return pos, nil
	}

	for _, opponent := range that.opponents {
		if pos, ok := winningCell(board, availableCells, opponent); ok {
			return pos, nil
		}
	}

	if board.Rows()%2 == 1 && board.Columns()%2 == 1 {
		centre := entity.Position{Row: board.Rows() / 2, Col: board.Columns() / 2}
		if board.IsValidMove(centre) {
			return centre, nil
		}
	}

	return that.fallback.NextMove(ctx, board)
}

// winningCell finds the first cell where symbol would immediately win.
func winningCell(board *entity.Board, cells []entity.Position, symbol entity.Symbol) (entity.Position, bool) {
	for _, pos := range cells {
		probe := board.Clone()
		if err := probe.ApplyMove(pos, symbol); err != nil {
			continue
		}

		if probe.Evaluate() == entity.Won(symbol) {
			return pos, true
		}
	}

	return entity.Position{}, false
}
