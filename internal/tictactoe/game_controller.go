package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameController drives one game from Turn(X) to a terminal state.
// It owns the board for the whole game and is not safe for concurrent use.
type GameController struct {
	id     string
	logger *slog.Logger

	board   *entity.Board
	machine *entity.StateMachine
	players []entity.Player
	moves   []entity.Move

	observers []Observer
}

func NewGameController(
	logger *slog.Logger,
	gameID string,
	board *entity.Board,
	players []entity.Player,
	observers ...Observer,
) (*GameController, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrTooFewPlayers, len(players))
	}

	if len(players) > len(entity.PlayerSymbols) {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrTooManyPlayers, len(players))
	}

	order := make([]entity.Symbol, 0, len(players))
	seen := make(map[entity.Symbol]bool, len(players))

	for _, player := range players {
		if player.Symbol == entity.Empty {
			return nil, fmt.Errorf("player %s has no symbol", player.Name)
		}

		if seen[player.Symbol] {
			return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicateSymbol, player.Symbol)
		}

		if player.Source == nil {
			return nil, fmt.Errorf("player %s has no move source", player.Name)
		}

		seen[player.Symbol] = true
		order = append(order, player.Symbol)
	}

	return &GameController{
		id:        gameID,
		logger:    logger.With("component", "game_controller", "gameID", gameID),
		board:     board,
		machine:   entity.NewStateMachine(order),
		players:   players,
		observers: observers,
	}, nil
}

func (that *GameController) ID() string {
	return that.id
}

// Subscribe registers an observer for the following mutations.
func (that *GameController) Subscribe(observer Observer) {
	that.observers = append(that.observers, observer)
}

func (that *GameController) State() entity.GameState {
	return that.machine.Current()
}

// Board returns a snapshot of the board.
func (that *GameController) Board() *entity.Board {
	return that.board.Clone()
}

func (that *GameController) Moves() []entity.Move {
	moves := make([]entity.Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

// Run plays turns until the game is over or ctx is done.
func (that *GameController) Run(ctx context.Context) (entity.GameState, error) {
	log := that.logger.With("method", "Run")
	log.Info("game started", "rows", that.board.Rows(), "columns", that.board.Columns(), "players", len(that.players))

	for {
		if err := ctx.Err(); err != nil {
			return that.State(), fmt.Errorf("game interrupted: %w", err)
		}

		state, err := that.Step(ctx)
		if err != nil {
			return state, err
		}

		if state.IsGameOver() {
			log.Info("game finished", "state", state.String(), "moves", len(that.moves))

			return state, nil
		}
	}
}

// Step plays a single turn for the current player.
func (that *GameController) Step(ctx context.Context) (entity.GameState, error) {
	current := that.machine.Current()
	if current.IsGameOver() {
		return current, apperror.ErrGameFinished
	}

	player, err := that.playerFor(current.Player)
	if err != nil {
		return current, err
	}

	pos, err := player.Source.NextMove(ctx, that.board.Clone())
	if err != nil {
		return current, fmt.Errorf("player %s failed to move: %w", player.Name, err)
	}

	// move sources must only hand out valid positions
	if err = that.board.ApplyMove(pos, player.Symbol); err != nil {
		return current, fmt.Errorf("%w: player %s: %w", apperror.ErrContractViolation, player.Name, err)
	}

	move := entity.Move{Position: pos, Symbol: player.Symbol}
	that.moves = append(that.moves, move)
	that.notify(ctx, "move", func(observer Observer) error {
		return observer.OnMoveApplied(ctx, move)
	})

	state := that.machine.Advance(that.board.Evaluate())
	that.notify(ctx, "state", func(observer Observer) error {
		return observer.OnStateChanged(ctx, state)
	})

	that.logger.Debug("turn played", "method", "Step", "player", player.Name, "position", pos.String(), "state", state.String())

	return state, nil
}

func (that *GameController) playerFor(symbol entity.Symbol) (entity.Player, error) {
	for _, player := range that.players {
		if player.Symbol == symbol {
			return player, nil
		}
	}

	return entity.Player{}, fmt.Errorf("%w: no player for symbol %s", apperror.ErrNotFound, symbol)
}

func (that *GameController) notify(ctx context.Context, event string, call func(Observer) error) {
	for i, observer := range that.observers {
		if err := safeCall(observer, call); err != nil {
			that.logger.WarnContext(ctx, "observer failed", "method", "notify", "event", event, "observer", i, "error", err)
		}
	}
}

func safeCall(observer Observer, call func(Observer) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panicked: %v", r)
		}
	}()

	return call(observer)
}

// Outcome renders a terminal state for the console.
func Outcome(state entity.GameState) string {
	switch state.Kind {
	case entity.KindWon:
		return fmt.Sprintf("Player %s wins!", state.Player)
	case entity.KindDraw:
		return "It's a draw."
	default:
		return "The game is not over."
	}
}
