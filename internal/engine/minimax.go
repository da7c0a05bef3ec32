// Package engine picks perfect-play moves for 3x3 tic-tac-toe.
//
// The search is a full-depth minimax. Terminal positions score 10-depth for
// a win of the side the engine plays, depth-10 for a loss and 0 for a draw,
// so faster wins and slower losses are preferred. Ties between cells resolve
// to the lowest index.
package engine

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const winScore = 10

// MoveScore is the minimax value of playing Cell.
type MoveScore struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// BestMove returns the optimal cell for O. It returns false when the board is
// already terminal.
func BestMove(board entity.Board) (int, bool) {
	return BestMoveFor(board, entity.PlayerO)
}

// BestMoveFor returns the optimal cell for mark, assuming mark is to move.
func BestMoveFor(board entity.Board, mark entity.Mark) (int, bool) {
	return Pick(Analyze(board, mark))
}

// Pick returns the first cell holding the highest score.
func Pick(scores []MoveScore) (int, bool) {
	if len(scores) == 0 {
		return 0, false
	}

	best := scores[0]
	for _, candidate := range scores[1:] {
		// strict comparison keeps the lowest index among equal scores
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return best.Cell, true
}

// Analyze scores every empty cell for mark, in increasing cell order.
// A terminal board has no moves and yields nil.
func Analyze(board entity.Board, mark entity.Mark) []MoveScore {
	if board.IsTerminal() {
		return nil
	}

	s := searcher{me: mark, opponent: entity.Opponent(mark)}

	scores := make([]MoveScore, 0, entity.BoardSize)
	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = s.me
		score := s.minimax(&board, 0, false)
		board[i] = entity.EmptyCell

		scores = append(scores, MoveScore{Cell: i, Score: score})
	}

	return scores
}

type searcher struct {
	me       entity.Mark
	opponent entity.Mark
}

// minimax mutates board in place and restores every cell it touches before returning.
func (that searcher) minimax(board *entity.Board, depth int, maximizing bool) int {
	if board.HasWon(that.me) {
		return winScore - depth
	}

	if board.HasWon(that.opponent) {
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	mark := that.opponent
	best := winScore + 1
	if maximizing {
		mark = that.me
		best = -winScore - 1
	}

	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = mark
		score := that.minimax(board, depth+1, !maximizing)
		board[i] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
