package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	actionGameNew     = "game:new"
	actionGameGet     = "game:get"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
	actionError       = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the fields any client action may use.
type RequestPayload struct {
	GameID string `json:"game_id,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Mark   string `json:"mark,omitempty"`
	Cell   *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}
