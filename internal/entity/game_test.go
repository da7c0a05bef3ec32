package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsBotTurn only for ongoing AI games on O's turn", func(t *testing.T) {
		assert.True(t, (&Game{Mode: ModeAI, Status: StatusOngoing, Turn: PlayerO}).IsBotTurn())
		assert.False(t, (&Game{Mode: ModeAI, Status: StatusOngoing, Turn: PlayerX}).IsBotTurn())
		assert.False(t, (&Game{Mode: ModeAI, Status: StatusFinished, Turn: PlayerO}).IsBotTurn())
		assert.False(t, (&Game{Mode: ModeTwoPlayer, Status: StatusOngoing, Turn: PlayerO}).IsBotTurn())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: Board{
				PlayerX, PlayerX, PlayerX,
				EmptyCell, PlayerO, EmptyCell,
				PlayerO, EmptyCell, EmptyCell,
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
			Status: StatusOngoing,
			Turn:   PlayerX,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
			Status: StatusOngoing,
			Turn:   PlayerX,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should remain ongoing
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Equal(t, PlayerX, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", ModeTwoPlayer)

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: The board holds the mark and the turn switches
		assert.Equal(t, Board{PlayerX}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame("123", ModeTwoPlayer)
		require.NoError(t, game.MakeTurn(PlayerX, 0))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: An ErrCellOccupied error should be returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, Board{PlayerX}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123", ModeTwoPlayer)

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123", ModeTwoPlayer)

		assert.ErrorIs(t, game.MakeTurn(PlayerX, 20), ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, -1), ErrInvalidCell)
	})

	t.Run("Error on Finished Game", func(t *testing.T) {
		// Given: A game X just won
		game := NewGame("123", ModeTwoPlayer)
		for _, move := range []struct {
			mark Mark
			cell int
		}{{PlayerX, 0}, {PlayerO, 3}, {PlayerX, 1}, {PlayerO, 4}, {PlayerX, 2}} {
			require.NoError(t, game.MakeTurn(move.mark, move.cell))
		}
		require.Equal(t, PlayerX, game.Winner)

		// When: O tries to continue
		err := game.MakeTurn(PlayerO, 5)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Restart(t *testing.T) {
	// Given: a finished AI game
	game := NewGame("123", ModeAI)
	game.Board = Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO}
	game.UpdateGameState()

	// When: restarting
	game.Restart()

	// Then: it is a fresh game in the same mode
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, EmptyCell, game.Winner)
	assert.Equal(t, ModeAI, game.Mode)
	assert.True(t, game.IsOngoing())
}

func TestValidateMode(t *testing.T) {
	assert.NoError(t, ValidateMode(ModeAI))
	assert.NoError(t, ValidateMode(ModeTwoPlayer))
	assert.ErrorIs(t, ValidateMode("solo"), ErrUnknownGameMode)
}
