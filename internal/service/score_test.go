package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-ai/mocks/service"
)

func TestScoreService_GetScore(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored score", func(t *testing.T) {
		// Given: one finished draw
		mockScoreRepo := mockedService.NewMockscoreRepo(t)
		expected := &entity.Score{GamesFinished: 1, Draws: 1}
		mockScoreRepo.EXPECT().Get(mock.Anything).Return(expected, nil).Once()

		// When: reading the score
		score, err := NewScoreService(mockScoreRepo).GetScore(ctx)

		// Then: it is passed through
		require.NoError(t, err)
		assert.Equal(t, expected, score)
	})

	t.Run("Wraps storage errors", func(t *testing.T) {
		mockScoreRepo := mockedService.NewMockscoreRepo(t)
		mockScoreRepo.EXPECT().Get(mock.Anything).Return(nil, errStorageIsFull).Once()

		_, err := NewScoreService(mockScoreRepo).GetScore(ctx)

		require.ErrorIs(t, err, errStorageIsFull)
	})
}
