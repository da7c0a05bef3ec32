package entity

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mark is the content of a single board cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

// BoardSize is the number of cells on a 3x3 board.
const BoardSize = 9

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidMark  = errors.New("invalid mark")

	// WinLines are the 3 rows, 3 columns and 2 diagonals, in that order.
	WinLines = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Outcome is the result of a position. It is always derived from a Board.
type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins:
		return "x_wins"
	case OutcomeOWins:
		return "o_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "undecided"
	}
}

// Board holds 9 cells, row-major: row = index/3, column = index%3.
type Board [BoardSize]Mark

// ParseMark accepts "X" or "O" in any case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PlayerX):
		return PlayerX, nil
	case string(PlayerO):
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
}

// Opponent returns the other player's mark.
func Opponent(mark Mark) Mark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// ParseBoard reads a 9 character board such as "XO-.X-O__".
// Empty cells may be written as '-', '.' or '_'.
func ParseBoard(s string) (Board, error) {
	var board Board

	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize, n)
	}

	i := 0
	for _, r := range s {
		switch r {
		case 'X', 'x':
			board[i] = PlayerX
		case 'O', 'o':
			board[i] = PlayerO
		case '-', '.', '_':
			board[i] = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidBoard, r, i)
		}
		i++
	}

	return board, nil
}

// String renders the board in the format accepted by ParseBoard.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// Winner returns the owner of the first completed line, or EmptyCell.
func (that Board) Winner() Mark {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// HasWon reports whether mark occupies any complete line.
func (that Board) HasWon(mark Mark) bool {
	for _, line := range WinLines {
		if that[line[0]] == mark && that[line[1]] == mark && that[line[2]] == mark {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// IsTerminal reports whether the board has a completed line or no empty cell.
func (that Board) IsTerminal() bool {
	return that.Winner() != EmptyCell || that.IsFull()
}

func (that Board) Outcome() Outcome {
	switch that.Winner() {
	case PlayerX:
		return OutcomeXWins
	case PlayerO:
		return OutcomeOWins
	}

	if that.IsFull() {
		return OutcomeDraw
	}

	return OutcomeUndecided
}

// Result returns the winning mark, PlayerTie on a draw, or EmptyCell while undecided.
func (that Board) Result() Mark {
	if winner := that.Winner(); winner != EmptyCell {
		return winner
	}

	if that.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// EmptyCells lists the empty cell indexes in increasing order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}
