package entity

import (
	"fmt"
	"strings"
)

// StateKind tags the variant held by a GameState.
type StateKind uint8

const (
	KindInProgress StateKind = iota
	KindTurn
	KindWon
	KindDraw
)

var stateKindNames = map[StateKind]string{
	KindInProgress: "in_progress",
	KindTurn:       "turn",
	KindWon:        "won",
	KindDraw:       "draw",
}

func (k StateKind) String() string {
	if name, ok := stateKindNames[k]; ok {
		return name
	}

	return "unknown"
}

func (k StateKind) MarshalText() ([]byte, error) {
	name, ok := stateKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown state kind %d", uint8(k))
	}

	return []byte(name), nil
}

func (k *StateKind) UnmarshalText(text []byte) error {
	for kind, name := range stateKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown state kind %q", text)
}

// GameState is either Turn(player), Won(player), Draw or InProgress.
// Player is Empty for Draw and InProgress.
type GameState struct {
	Kind   StateKind `json:"kind"`
	Player Symbol    `json:"player"`
}

func Turn(player Symbol) GameState {
	return GameState{Kind: KindTurn, Player: player}
}

func Won(player Symbol) GameState {
	return GameState{Kind: KindWon, Player: player}
}

func Draw() GameState {
	return GameState{Kind: KindDraw}
}

func InProgress() GameState {
	return GameState{Kind: KindInProgress}
}

// IsGameOver reports whether the state is terminal.
func (that GameState) IsGameOver() bool {
	return that.Kind == KindWon || that.Kind == KindDraw
}

func (that GameState) String() string {
	switch that.Kind {
	case KindTurn, KindWon:
		return fmt.Sprintf("%s(%s)", that.Kind, that.Player)
	case KindDraw, KindInProgress:
		return strings.ReplaceAll(that.Kind.String(), "_", " ")
	default:
		return that.Kind.String()
	}
}

// Transition computes the state following current once a move was evaluated
// to result. Terminal states absorb every transition.
func Transition(current, result GameState, order []Symbol) GameState {
	if current.IsGameOver() {
		return current
	}

	if result.IsGameOver() {
		return result
	}

	return Turn(nextPlayer(current.Player, order))
}

func nextPlayer(current Symbol, order []Symbol) Symbol {
	for i, s := range order {
		if s == current {
			return order[(i+1)%len(order)]
		}
	}

	return order[0]
}

// StateMachine tracks the current GameState of one game.
type StateMachine struct {
	order   []Symbol
	current GameState
}

// NewStateMachine starts at Turn(order[0]). order must not be empty.
func NewStateMachine(order []Symbol) *StateMachine {
	o := make([]Symbol, len(order))
	copy(o, order)

	return &StateMachine{
		order:   o,
		current: Turn(o[0]),
	}
}

func (that *StateMachine) Current() GameState {
	return that.current
}

// Advance feeds the result of Board.Evaluate into the machine.
func (that *StateMachine) Advance(result GameState) GameState {
	that.current = Transition(that.current, result, that.order)

	return that.current
}

func (that *StateMachine) IsGameOver() bool {
	return that.current.IsGameOver()
}
