package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func mustParse(t *testing.T, s string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestBestMove(t *testing.T) {
	t.Run("Takes the immediate win over a block", func(t *testing.T) {
		// Given: O can complete the middle row while X threatens the top row
		board := mustParse(t, "XX-OO-X--")

		// When: asking for the best move
		cell, ok := BestMove(board)

		// Then: O wins at cell 5
		require.True(t, ok)
		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks the opponent's open line", func(t *testing.T) {
		// Given: X has two in the top row and O has no immediate win
		board := mustParse(t, "XX--O----")

		// When: asking for the best move
		cell, ok := BestMove(board)

		// Then: O blocks at cell 2
		require.True(t, ok)
		assert.Equal(t, 2, cell)
	})

	t.Run("Answers a corner opening with the center", func(t *testing.T) {
		// Given: X opened in the corner
		board := mustParse(t, "X--------")

		// When: asking for the best move
		cell, ok := BestMove(board)

		// Then: only the center holds the draw
		require.True(t, ok)
		assert.Equal(t, 4, cell)
	})

	t.Run("Prefers the fastest win", func(t *testing.T) {
		// Given: O wins now at cell 8, and any of 1, 2, 6, 7 forks for a win two plies later
		board := mustParse(t, "O--XOX---")

		// When: scoring and choosing the move
		scores := Analyze(board, entity.PlayerO)
		cell, ok := BestMove(board)

		// Then: the immediate win outscores the delayed one and is chosen
		require.True(t, ok)
		assert.Equal(t, 8, cell)
		assert.Equal(t, []MoveScore{
			{Cell: 1, Score: 8},
			{Cell: 2, Score: 8},
			{Cell: 6, Score: 8},
			{Cell: 7, Score: 8},
			{Cell: 8, Score: 10},
		}, scores)
	})

	t.Run("Empty board resolves ties to the lowest cell", func(t *testing.T) {
		// Given: an empty board where every opening draws
		var board entity.Board

		// When: asking repeatedly
		first, ok := BestMove(board)
		require.True(t, ok)
		second, _ := BestMove(board)

		// Then: the answer is cell 0 every time
		assert.Equal(t, 0, first)
		assert.Equal(t, first, second)
	})

	t.Run("Returns no move on a full board", func(t *testing.T) {
		// Given: a drawn, full board
		board := mustParse(t, "XOXOXOOXO")

		// When: asking for the best move
		_, ok := BestMove(board)

		// Then: there is no move
		assert.False(t, ok)
	})

	t.Run("Returns no move on a won board", func(t *testing.T) {
		// Given: X completed the top row with empty cells left
		board := mustParse(t, "XXX-OO---")

		// When: asking for the best move
		_, ok := BestMove(board)

		// Then: there is no move
		assert.False(t, ok)
		assert.Nil(t, Analyze(board, entity.PlayerO))
	})

	t.Run("Leaves the caller's board untouched", func(t *testing.T) {
		// Given: a mid-game board and a copy of it
		board := mustParse(t, "X-O-X----")
		before := board

		// When: asking for the best move
		_, _ = BestMove(board)
		_ = Analyze(board, entity.PlayerX)

		// Then: the board is cell-for-cell identical
		assert.Equal(t, before, board)
	})
}

func TestBestMoveFor(t *testing.T) {
	t.Run("Plays for X when asked", func(t *testing.T) {
		// Given: X to move with two in the middle row
		board := mustParse(t, "OO-XX-O--")

		// When: asking for X's best move
		cell, ok := BestMoveFor(board, entity.PlayerX)

		// Then: X completes the row
		require.True(t, ok)
		assert.Equal(t, 5, cell)
	})

	t.Run("Scores every empty cell in order", func(t *testing.T) {
		// Given: X to move with two in the middle row
		board := mustParse(t, "OO-XX-O--")

		// When: analysing for X
		scores := Analyze(board, entity.PlayerX)

		// Then: one score per empty cell, ascending by cell
		cells := make([]int, 0, len(scores))
		for _, score := range scores {
			cells = append(cells, score.Cell)
		}
		assert.Equal(t, board.EmptyCells(), cells)
	})
}

func TestBestMove_NeverLoses(t *testing.T) {
	t.Run("Human moves first", func(t *testing.T) {
		assertEngineNeverLoses(t, entity.Board{}, true)
	})

	t.Run("Engine moves first", func(t *testing.T) {
		assertEngineNeverLoses(t, entity.Board{}, false)
	})
}

// assertEngineNeverLoses plays every possible X reply against the engine's O.
func assertEngineNeverLoses(t *testing.T, board entity.Board, humanToMove bool) {
	t.Helper()

	if board.IsTerminal() {
		require.NotEqual(t, entity.PlayerX, board.Winner(), "engine lost: %s", board)
		return
	}

	if humanToMove {
		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = entity.PlayerX
			assertEngineNeverLoses(t, next, false)
		}
		return
	}

	cell, ok := BestMove(board)
	require.True(t, ok)
	require.Equal(t, entity.EmptyCell, board[cell])

	next := board
	next[cell] = entity.PlayerO
	assertEngineNeverLoses(t, next, true)
}
