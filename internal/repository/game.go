package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	AppendMove(ctx context.Context, gameID string, move entity.Move) error
	SaveResult(ctx context.Context, gameID string, state entity.GameState) error
	GetMoves(ctx context.Context, gameID string) ([]entity.Move, error)
	GetResult(ctx context.Context, gameID string) (entity.GameState, error)
	DeleteByID(ctx context.Context, gameID string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository keeps history for ttl; zero means no expiry.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func movesKey(gameID string) string {
	return "game:" + gameID + ":moves"
}

func resultKey(gameID string) string {
	return "game:" + gameID + ":result"
}

func (that *dbGame) AppendMove(ctx context.Context, gameID string, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	key := movesKey(gameID)

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, moveJSON)
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append move: %w", err)
	}

	return nil
}

func (that *dbGame) SaveResult(ctx context.Context, gameID string, state entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	if err = that.client.Set(ctx, resultKey(gameID), stateJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	return nil
}

func (that *dbGame) GetMoves(ctx context.Context, gameID string) ([]entity.Move, error) {
	response, err := that.client.LRange(ctx, movesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	if len(response) == 0 {
		return nil, ErrGameNotFound
	}

	moves := make([]entity.Move, 0, len(response))
	for _, raw := range response {
		var move entity.Move
		if err = json.Unmarshal([]byte(raw), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}

		moves = append(moves, move)
	}

	return moves, nil
}

func (that *dbGame) GetResult(ctx context.Context, gameID string) (entity.GameState, error) {
	response, err := that.client.Get(ctx, resultKey(gameID)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.GameState{}, ErrGameNotFound
	}

	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get result: %w", err)
	}

	var state entity.GameState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return state, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, gameID string) error {
	deleted, err := that.client.Del(ctx, movesKey(gameID), resultKey(gameID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
