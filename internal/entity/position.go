package entity

import "fmt"

// Position addresses a cell, 0-indexed.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a symbol placed at a position.
type Move struct {
	Position Position `json:"position"`
	Symbol   Symbol   `json:"symbol"`
}
