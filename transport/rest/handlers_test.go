package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	mockedRest "github.com/rocketscienceinc/tictactoe-ai/mocks/rest"
)

var errRedisDown = errors.New("redis down")

func newTestRouter(t *testing.T) (*mockedRest.MockuGame, http.Handler) {
	t.Helper()

	uGame := mockedRest.NewMockuGame(t)

	// the real engine, so handlers are checked against real moves
	uGame.EXPECT().
		Suggest(mock.Anything, mock.Anything).
		RunAndReturn(service.NewBotService().Suggest).
		Maybe()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return uGame, NewRouter(logger, uGame)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func TestPing(t *testing.T) {
	_, h := newTestRouter(t)

	rr := serve(h, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestSuggestMove(t *testing.T) {
	t.Run("Returns the engine's move and scores", func(t *testing.T) {
		// Given: X threatens the top row
		_, h := newTestRouter(t)

		// When: asking for O's move
		rr := serve(h, http.MethodPost, "/api/v1/move", `{"board":"XX--O----"}`)

		// Then: the block is suggested
		require.Equal(t, http.StatusOK, rr.Code)

		var resp moveResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotNil(t, resp.Move)
		assert.Equal(t, 2, *resp.Move)
		assert.Equal(t, entity.PlayerO, resp.Mark)
		assert.Len(t, resp.Scores, 6)
	})

	t.Run("Plays for the requested mark", func(t *testing.T) {
		_, h := newTestRouter(t)

		rr := serve(h, http.MethodPost, "/api/v1/move", `{"board":"OO-XX-O--","mark":"x"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp moveResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotNil(t, resp.Move)
		assert.Equal(t, 5, *resp.Move)
	})

	t.Run("Terminal board has a null move", func(t *testing.T) {
		_, h := newTestRouter(t)

		rr := serve(h, http.MethodPost, "/api/v1/move", `{"board":"XXXOO----"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"move":null`)
	})

	t.Run("Rejects a malformed board", func(t *testing.T) {
		_, h := newTestRouter(t)

		rr := serve(h, http.MethodPost, "/api/v1/move", `{"board":"XX"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid board")
	})
}

func TestRequestBodyLimit(t *testing.T) {
	oversized := `{"board":"XX--O----","mark":"` + strings.Repeat("O", maxBodyBytes) + `"}`

	for _, target := range []string{"/api/v1/move", "/api/v1/games", "/api/v1/games/g1/turns"} {
		t.Run(target, func(t *testing.T) {
			// Given: a router whose use case expects no calls
			_, h := newTestRouter(t)

			// When: posting a body larger than the limit
			rr := serve(h, http.MethodPost, target, oversized)

			// Then: the request is refused before reaching the use case
			assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
			assert.Contains(t, rr.Body.String(), "request body too large")
		})
	}
}

func TestGames(t *testing.T) {
	t.Run("Creates an AI game by default", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().CreateGame(mock.Anything, entity.ModeAI).Return(entity.NewGame("g1", entity.ModeAI), nil).Once()

		rr := serve(h, http.MethodPost, "/api/v1/games", "")

		require.Equal(t, http.StatusCreated, rr.Code)
		var game entity.Game
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&game))
		assert.Equal(t, "g1", game.ID)
	})

	t.Run("Unknown mode is a bad request", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().CreateGame(mock.Anything, "solo").Return(nil, entity.ErrUnknownGameMode).Once()

		rr := serve(h, http.MethodPost, "/api/v1/games", `{"mode":"solo"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown game is not found", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().GetGame(mock.Anything, "missing").Return(nil, apperror.ErrGameNotFound).Once()

		rr := serve(h, http.MethodGet, "/api/v1/games/missing", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Turn defaults to the human mark", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		game := entity.NewGame("g1", entity.ModeAI)
		uGame.EXPECT().PlayTurn(mock.Anything, "g1", entity.PlayerX, 4).Return(game, nil).Once()

		rr := serve(h, http.MethodPost, "/api/v1/games/g1/turns", `{"cell":4}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing cell is a bad request", func(t *testing.T) {
		_, h := newTestRouter(t)

		rr := serve(h, http.MethodPost, "/api/v1/games/g1/turns", `{"mark":"X"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Occupied cell is a conflict", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().PlayTurn(mock.Anything, "g1", entity.PlayerO, 0).Return(nil, apperror.ErrCellOccupied).Once()

		rr := serve(h, http.MethodPost, "/api/v1/games/g1/turns", `{"mark":"O","cell":0}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Restart", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().Restart(mock.Anything, "g1").Return(entity.NewGame("g1", entity.ModeAI), nil).Once()

		rr := serve(h, http.MethodPost, "/api/v1/games/g1/restart", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().Abandon(mock.Anything, "g1").Return(nil).Once()

		rr := serve(h, http.MethodDelete, "/api/v1/games/g1", "")

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Deleting an unknown game is not found", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().Abandon(mock.Anything, "nope").Return(apperror.ErrGameNotFound).Once()

		rr := serve(h, http.MethodDelete, "/api/v1/games/nope", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("A turn overtaken by another request is a conflict", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().PlayTurn(mock.Anything, "g1", entity.PlayerX, 2).Return(nil, apperror.ErrGameConflict).Once()

		rr := serve(h, http.MethodPost, "/api/v1/games/g1/turns", `{"cell":2}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), apperror.ErrGameConflict.Error())
	})

	t.Run("Storage failure is an internal error", func(t *testing.T) {
		uGame, h := newTestRouter(t)
		uGame.EXPECT().Score(mock.Anything).Return(nil, errRedisDown).Once()

		rr := serve(h, http.MethodGet, "/api/v1/score", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "redis")
	})
}

func TestScore(t *testing.T) {
	uGame, h := newTestRouter(t)
	uGame.EXPECT().Score(mock.Anything).Return(&entity.Score{GamesFinished: 2, OWins: 2}, nil).Once()

	rr := serve(h, http.MethodGet, "/api/v1/score", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var score entity.Score
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&score))
	assert.Equal(t, entity.Score{GamesFinished: 2, OWins: 2}, score)
}

func TestMetrics(t *testing.T) {
	_, h := newTestRouter(t)

	_ = serve(h, http.MethodPost, "/api/v1/move", `{"board":"---------"}`)
	rr := serve(h, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "tictactoe_bot_decisions_total")
}
