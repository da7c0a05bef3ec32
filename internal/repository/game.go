package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	gameKeyPrefix = "game:"

	// maxUpdateAttempts bounds the optimistic retries of Update.
	maxUpdateAttempts = 3
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	Update(ctx context.Context, id string, change func(game *entity.Game) error) (*entity.Game, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository stores games as JSON. A zero ttl keeps games forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKeyPrefix+game.ID, gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

// Update loads the game under WATCH, applies change and writes it back only if
// nobody else wrote the game in between. A game that finishes inside change is
// counted on the scoreboard in the same MULTI block as its write.
//
// Conflicting writes are retried with a fresh copy of the game; when every
// attempt loses the race apperror.ErrGameConflict is returned. An error from
// change aborts the update and is returned together with the loaded game.
func (that *dbGame) Update(ctx context.Context, id string, change func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKeyPrefix + id

	var game *entity.Game

	txf := func(tx *redis.Tx) error {
		var err error
		if game, err = getGame(ctx, tx, key); err != nil {
			return err
		}

		wasFinished := game.IsFinished()

		if err = change(game); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, that.ttl)

			if !wasFinished && game.IsFinished() {
				return incrementScore(ctx, pipe, game.Winner)
			}

			return nil
		})

		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return game, fmt.Errorf("failed to update game: %w", err)
		}

		return game, nil
	}

	return nil, apperror.ErrGameConflict
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return getGame(ctx, that.client, gameKeyPrefix+id)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getGame(ctx context.Context, client getter, key string) (*entity.Game, error) {
	response, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}
