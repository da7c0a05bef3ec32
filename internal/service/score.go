package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type ScoreService interface {
	GetScore(ctx context.Context) (*entity.Score, error)
}

type scoreRepo interface {
	Get(ctx context.Context) (*entity.Score, error)
}

type scoreService struct {
	scoreRepo scoreRepo
}

func NewScoreService(scoreRepo scoreRepo) ScoreService {
	return &scoreService{
		scoreRepo: scoreRepo,
	}
}

func (that *scoreService) GetScore(ctx context.Context) (*entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}
