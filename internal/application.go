package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game on in/out until it ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := PlayGame(ctx, logger, conf, in, out); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Input closed, game abandoned")
			return nil
		}

		return err
	}

	return nil
}

// PlayGame wires board, players and observers, runs the game loop and prints
// the final board and outcome to out.
func PlayGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (entity.GameState, error) {
	log := logger.With("component", "app", "method", "PlayGame")

	gameID := uuid.NewString()

	board, err := entity.NewBoard(conf.Board.Rows, conf.Board.Columns)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("could not create board: %w", err)
	}

	playerService := service.NewPlayerService(in, out, newRand(conf.Seed))

	players, err := playerService.CreatePlayers(conf.Players)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("could not create players: %w", err)
	}

	observers := []tictactoe.Observer{service.NewJournal(logger)}

	var history *service.HistoryService

	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return entity.GameState{}, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return entity.GameState{}, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo := repository.NewGameRepository(redisStorage, conf.Redis.HistoryTTL)
		observers = append(observers, service.NewHistoryRecorder(gameID, gameRepo))
		history = service.NewHistoryService(gameRepo)
	}

	gameController, err := tictactoe.NewGameController(logger, gameID, board, players, observers...)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("could not create game: %w", err)
	}

	state, err := gameController.Run(ctx)
	if err != nil {
		return state, fmt.Errorf("game %s failed: %w", gameID, err)
	}

	fmt.Fprint(out, gameController.Board().String())
	fmt.Fprintln(out, tictactoe.Outcome(state))

	if history != nil {
		if _, recorded, err := history.Replay(ctx, gameID, conf.Board.Rows, conf.Board.Columns); err != nil {
			log.Warn("could not read game history back", "gameID", gameID, "error", err)
		} else {
			log.Debug("game history recorded", "gameID", gameID, "result", recorded.String())
		}
	}

	return state, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok
}
