package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Plays the engine's move for the side to move", func(t *testing.T) {
		// Given: an AI game where X opened in the corner
		game := entity.NewGame("123", entity.ModeAI)
		require.NoError(t, game.MakeTurn(entity.PlayerX, 0))

		// When: the bot moves
		err := NewBotService().MakeTurn(game)

		// Then: O takes the center and hands the turn back
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[4])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Returns ErrNoAvailableMoves on a terminal board", func(t *testing.T) {
		// Given: a game whose board is already won but still marked ongoing
		game := entity.NewGame("123", entity.ModeAI)
		game.Board = entity.Board{entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerO}
		game.Turn = entity.PlayerO

		// When: the bot moves
		err := NewBotService().MakeTurn(game)

		// Then: no move is made
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		assert.Equal(t, 2, game.Board.Count(entity.PlayerO))
	})
}

func TestBotService_Suggest(t *testing.T) {
	board, err := entity.ParseBoard("O--XOX---")
	require.NoError(t, err)

	cell, scores, ok := NewBotService().Suggest(board, entity.PlayerO)

	require.True(t, ok)
	assert.Equal(t, 8, cell)
	assert.Len(t, scores, 5)

	_, scores, ok = NewBotService().Suggest(entity.Board{
		entity.PlayerX, entity.PlayerO, entity.PlayerX,
		entity.PlayerO, entity.PlayerX, entity.PlayerO,
		entity.PlayerO, entity.PlayerX, entity.PlayerO,
	}, entity.PlayerO)
	assert.False(t, ok)
	assert.Empty(t, scores)
}
