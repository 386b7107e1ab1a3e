package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Board is a rows x columns grid stored row-major. Its dimensions never change.
type Board struct {
	rows    int
	columns int
	cells   []Symbol
}

func NewBoard(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidBoardSize, rows, columns)
	}

	return &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]Symbol, rows*columns),
	}, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Columns() int {
	return that.columns
}

func (that *Board) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < that.rows && pos.Col >= 0 && pos.Col < that.columns
}

func (that *Board) index(pos Position) int {
	return pos.Row*that.columns + pos.Col
}

// At returns the symbol at pos; ok is false when pos is off the board.
func (that *Board) At(pos Position) (Symbol, bool) {
	if !that.inBounds(pos) {
		return Empty, false
	}

	return that.cells[that.index(pos)], true
}

// IsValidMove reports whether pos is on the board and its cell is empty.
func (that *Board) IsValidMove(pos Position) bool {
	return that.inBounds(pos) && that.cells[that.index(pos)] == Empty
}

// ApplyMove places symbol at pos. The board is left untouched on error.
func (that *Board) ApplyMove(pos Position, symbol Symbol) error {
	if symbol == Empty {
		return fmt.Errorf("%w: empty symbol at %s", apperror.ErrInvalidMove, pos)
	}

	if !that.IsValidMove(pos) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMove, pos)
	}

	that.cells[that.index(pos)] = symbol

	return nil
}

// Evaluate scans rows, then columns, then both diagonals of a square board.
// The first uniform line wins; a full board without one is a draw.
func (that *Board) Evaluate() GameState {
	for row := 0; row < that.rows; row++ {
		line := that.cells[row*that.columns : (row+1)*that.columns]
		if isWinningLine(line) {
			return Won(line[0])
		}
	}

	column := make([]Symbol, that.rows)
	for col := 0; col < that.columns; col++ {
		for row := 0; row < that.rows; row++ {
			column[row] = that.cells[row*that.columns+col]
		}

		if isWinningLine(column) {
			return Won(column[0])
		}
	}

	if that.rows == that.columns {
		diagonal := make([]Symbol, that.rows)
		antiDiagonal := make([]Symbol, that.rows)

		for i := 0; i < that.rows; i++ {
			diagonal[i] = that.cells[i*that.columns+i]
			antiDiagonal[i] = that.cells[i*that.columns+that.columns-1-i]
		}

		if isWinningLine(diagonal) {
			return Won(diagonal[0])
		}

		if isWinningLine(antiDiagonal) {
			return Won(antiDiagonal[0])
		}
	}

	if that.IsFull() {
		return Draw()
	}

	return InProgress()
}

func isWinningLine(line []Symbol) bool {
	if len(line) == 0 || line[0] == Empty {
		return false
	}

	for _, s := range line[1:] {
		if s != line[0] {
			return false
		}
	}

	return true
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// EmptyPositions lists the free cells in row-major order.
func (that *Board) EmptyPositions() []Position {
	positions := make([]Position, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == Empty {
			positions = append(positions, Position{Row: i / that.columns, Col: i % that.columns})
		}
	}

	return positions
}

// Clone returns a deep copy, used as the snapshot handed to move sources.
func (that *Board) Clone() *Board {
	cells := make([]Symbol, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		rows:    that.rows,
		columns: that.columns,
		cells:   cells,
	}
}

func (that *Board) String() string {
	var sb strings.Builder

	separator := strings.TrimSuffix(strings.Repeat("---+", that.columns), "+")

	for row := 0; row < that.rows; row++ {
		if row > 0 {
			sb.WriteString(separator)
			sb.WriteByte('\n')
		}

		for col := 0; col < that.columns; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(" " + that.cells[row*that.columns+col].String() + " ")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
