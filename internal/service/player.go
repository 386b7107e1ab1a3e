package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	SourceHuman = "human"
	SourceBot   = "bot"
	SourceSmart = "smart"
)

var ErrUnknownSource = errors.New("unknown move source")

// PlayerService turns configured move source kinds into players.
type PlayerService struct {
	scanner *bufio.Scanner
	out     io.Writer
	rng     *rand.Rand
}

func NewPlayerService(in io.Reader, out io.Writer, rng *rand.Rand) *PlayerService {
	return &PlayerService{
		scanner: NewLineScanner(in),
		out:     out,
		rng:     rng,
	}
}

// CreatePlayers binds one symbol per kind, in PlayerSymbols order.
func (that *PlayerService) CreatePlayers(kinds []string) ([]entity.Player, error) {
	if len(kinds) > len(entity.PlayerSymbols) {
		return nil, fmt.Errorf("%w: got %d, at most %d symbols available",
			apperror.ErrTooManyPlayers, len(kinds), len(entity.PlayerSymbols))
	}

	order := entity.PlayerSymbols[:len(kinds)]

	sources := make([]entity.NamedSource, 0, len(kinds))
	for i, kind := range kinds {
		symbol := order[i]
		name := "Player" + symbol.String()

		source, err := that.newMoveSource(kind, name, symbol, order)
		if err != nil {
			return nil, err
		}

		sources = append(sources, entity.NamedSource{Name: name, Source: source})
	}

	players, err := entity.NewPlayers(sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to create players: %w", err)
	}

	return players, nil
}

func (that *PlayerService) newMoveSource(kind, name string, symbol entity.Symbol, order []entity.Symbol) (entity.MoveSource, error) {
	switch kind {
	case SourceHuman:
		return NewHumanMoveSource(name, that.scanner, that.out), nil
	case SourceBot:
		return NewBotMoveSource(that.rng), nil
	case SourceSmart:
		return NewSmartBotMoveSource(symbol, order, that.rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}
