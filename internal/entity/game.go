package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	ModeTwoPlayer = "two-player"
	ModeAI        = "ai"
)

// In AI mode the human always plays X and moves first, the engine plays O.
const (
	HumanMark = PlayerX
	BotMark   = PlayerO
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownGameMode   = errors.New("unknown game mode")
)

type Game struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Board     Board     `json:"board"`
	Winner    Mark      `json:"winner"`
	Status    string    `json:"status"`
	Turn      Mark      `json:"player_turn"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGame(id, mode string) *Game {
	return &Game{
		ID:        id,
		Mode:      mode,
		Turn:      PlayerX,
		Status:    StatusOngoing,
		CreatedAt: time.Now().UTC(),
	}
}

// ValidateMode checks that mode is one of the supported game modes.
func ValidateMode(mode string) error {
	switch mode {
	case ModeTwoPlayer, ModeAI:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameMode, mode)
	}
}

// UpdateGameState derives winner and status from the board.
func (that *Game) UpdateGameState() {
	switch result := that.Board.Result(); result {
	// one player wins or tie
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.Turn = Opponent(playerMark)

	that.UpdateGameState()

	return nil
}

// Restart clears the board and gives the first move to X. The mode is kept.
func (that *Game) Restart() {
	that.Board = Board{}
	that.Winner = EmptyCell
	that.Turn = PlayerX
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeAI
}

// IsBotTurn reports whether the engine should move next.
func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && that.IsOngoing() && that.Turn == BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
