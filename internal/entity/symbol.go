package entity

import "fmt"

// Symbol is the content of a board cell.
type Symbol uint8

const (
	Empty Symbol = iota
	X
	O
	Y
	Z
)

// PlayerSymbols is the order in which symbols are handed out to players.
var PlayerSymbols = []Symbol{X, O, Y, Z}

func (s Symbol) String() string {
	switch s {
	case Empty:
		return " "
	case X:
		return "X"
	case O:
		return "O"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

func (s Symbol) MarshalText() ([]byte, error) {
	if s == Empty {
		return []byte{}, nil
	}

	if s > Z {
		return nil, fmt.Errorf("unknown symbol %d", uint8(s))
	}

	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", " ":
		*s = Empty
	case "X":
		*s = X
	case "O":
		*s = O
	case "Y":
		*s = Y
	case "Z":
		*s = Z
	default:
		return fmt.Errorf("unknown symbol %q", text)
	}

	return nil
}
