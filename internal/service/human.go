package service

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// maxLineLength bounds a single console line; longer lines are dropped
// and count as malformed input.
const maxLineLength = 1024

const (
	msgMalformedInput = "Invalid input. Please enter row and column as numbers."
	msgInvalidMove    = "Invalid move. Try again!"
)

// HumanMoveSource prompts on out and reads one "row col" line per attempt
// until it gets a move the board accepts.
type HumanMoveSource struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHumanMoveSource shares scanner between players reading the same input.
func NewHumanMoveSource(name string, scanner *bufio.Scanner, out io.Writer) *HumanMoveSource {
	return &HumanMoveSource{
		name:    name,
		scanner: scanner,
		out:     out,
	}
}

func (that *HumanMoveSource) NextMove(ctx context.Context, board *entity.Board) (entity.Position, error) {
	fmt.Fprint(that.out, board.String())

	for {
		if err := ctx.Err(); err != nil {
			return entity.Position{}, err
		}

		fmt.Fprintf(that.out, "%s, enter your move (row [0-%d] and column [0-%d]): ",
			that.name, board.Rows()-1, board.Columns()-1)

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return entity.Position{}, fmt.Errorf("failed to read move: %w", err)
			}

			return entity.Position{}, apperror.ErrInputClosed
		}

		pos, err := ParsePosition(that.scanner.Text())
		if err != nil {
			fmt.Fprintln(that.out, msgMalformedInput)
			continue
		}

		if !board.IsValidMove(pos) {
			fmt.Fprintln(that.out, msgInvalidMove)
			continue
		}

		return pos, nil
	}
}

// NewLineScanner splits in into lines and never fails on long ones: an
// over-long line comes back as one empty token and its remainder is skipped.
func NewLineScanner(in io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4*maxLineLength), bufio.MaxScanTokenSize)

	splitter := &lineSplitter{}
	scanner.Split(splitter.split)

	return scanner
}

type lineSplitter struct {
	discarding bool
}

func (that *lineSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if that.discarding {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			that.discarding = false
			return i + 1, nil, nil
		}

		return len(data), nil, nil
	}

	advance, token, err := bufio.ScanLines(data, atEOF)
	if advance == 0 && err == nil && len(data) >= maxLineLength {
		that.discarding = true
		return len(data), []byte{}, nil
	}

	if len(token) >= maxLineLength {
		return advance, []byte{}, err
	}

	return advance, token, err
}

// ParsePosition reads two integers separated by spaces or a comma.
func ParsePosition(line string) (entity.Position, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return entity.Position{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrMalformedInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: row %q", apperror.ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: column %q", apperror.ErrMalformedInput, fields[1])
	}

	return entity.Position{Row: row, Col: col}, nil
}
