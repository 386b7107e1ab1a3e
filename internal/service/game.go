package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrCorruptHistory = errors.New("recorded history is inconsistent")

type historyRepo interface {
	AppendMove(ctx context.Context, gameID string, move entity.Move) error
	SaveResult(ctx context.Context, gameID string, state entity.GameState) error
}

// HistoryRecorder stores the moves and the final state of one game.
type HistoryRecorder struct {
	gameID string
	repo   historyRepo
}

func NewHistoryRecorder(gameID string, repo historyRepo) *HistoryRecorder {
	return &HistoryRecorder{
		gameID: gameID,
		repo:   repo,
	}
}

func (that *HistoryRecorder) OnMoveApplied(ctx context.Context, move entity.Move) error {
	if err := that.repo.AppendMove(ctx, that.gameID, move); err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}

	return nil
}

func (that *HistoryRecorder) OnStateChanged(ctx context.Context, state entity.GameState) error {
	if !state.IsGameOver() {
		return nil
	}

	if err := that.repo.SaveResult(ctx, that.gameID, state); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

type historyReader interface {
	GetMoves(ctx context.Context, gameID string) ([]entity.Move, error)
	GetResult(ctx context.Context, gameID string) (entity.GameState, error)
}

// HistoryService reads recorded games back.
type HistoryService struct {
	repo historyReader
}

func NewHistoryService(repo historyReader) *HistoryService {
	return &HistoryService{
		repo: repo,
	}
}

// Replay rebuilds the board of a recorded game and returns it with the
// stored result. A result that disagrees with the replayed board is an error.
func (that *HistoryService) Replay(ctx context.Context, gameID string, rows, columns int) (*entity.Board, entity.GameState, error) {
	moves, err := that.repo.GetMoves(ctx, gameID)
	if err != nil {
		return nil, entity.GameState{}, fmt.Errorf("failed to get moves: %w", err)
	}

	board, err := entity.NewBoard(rows, columns)
	if err != nil {
		return nil, entity.GameState{}, fmt.Errorf("failed to create board: %w", err)
	}

	for i, move := range moves {
		if err = board.ApplyMove(move.Position, move.Symbol); err != nil {
			return nil, entity.GameState{}, fmt.Errorf("%w: move %d: %w", ErrCorruptHistory, i, err)
		}
	}

	result, err := that.repo.GetResult(ctx, gameID)
	if err != nil {
		return nil, entity.GameState{}, fmt.Errorf("failed to get result: %w", err)
	}

	if replayed := board.Evaluate(); replayed != result {
		return nil, entity.GameState{}, fmt.Errorf("%w: stored %s, replayed %s", ErrCorruptHistory, result, replayed)
	}

	return board, result, nil
}
