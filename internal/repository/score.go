package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	scoreKey = "score"

	fieldGamesFinished = "games_finished"
	fieldXWins         = "x_wins"
	fieldOWins         = "o_wins"
	fieldDraws         = "draws"
)

type ScoreRepository interface {
	Get(ctx context.Context) (*entity.Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Get(ctx context.Context) (*entity.Score, error) {
	values, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score := &entity.Score{}
	for field, target := range scoreFields(score) {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse score field %s: %w", field, err)
		}
	}

	return score, nil
}

// scoreFields maps each hash field to its counter in score.
func scoreFields(score *entity.Score) map[string]*int64 {
	return map[string]*int64{
		fieldGamesFinished: &score.GamesFinished,
		fieldXWins:         &score.XWins,
		fieldOWins:         &score.OWins,
		fieldDraws:         &score.Draws,
	}
}

// incrementScore queues the counters of one finished game on pipe.
func incrementScore(ctx context.Context, pipe redis.Pipeliner, winner entity.Mark) error {
	var delta entity.Score
	delta.Record(winner)

	if delta.GamesFinished == 0 {
		return fmt.Errorf("%w: no result %q", entity.ErrInvalidMark, winner)
	}

	for field, by := range scoreFields(&delta) {
		if *by != 0 {
			pipe.HIncrBy(ctx, scoreKey, field, *by)
		}
	}

	return nil
}
