package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	shutdownTimeout = 5 * time.Second
	writeTimeout    = 10 * time.Second

	maxMessageBytes = 4 << 10
)

type uGame interface {
	CreateGame(ctx context.Context, mode string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, mark entity.Mark, cell int) (*entity.Game, error)
	BotTurn(ctx context.Context, gameID string) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, action string, req RequestPayload) error

type Server struct {
	logger     *slog.Logger
	uGame      uGame
	thinkDelay time.Duration
	upgrader   websocket.Upgrader

	handlers map[string]handlerFunc
}

// New creates a server. thinkDelay is waited before every engine reply.
func New(logger *slog.Logger, uGame uGame, thinkDelay time.Duration) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		uGame:      uGame,
		thinkDelay: thinkDelay,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionGameNew:     server.handleNewGame,
		actionGameGet:     server.handleGetGame,
		actionGameTurn:    server.handleGameTurn,
		actionGameRestart: server.handleRestart,
	}

	return server
}

// Handler returns the HTTP handler serving the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn.SetReadLimit(maxMessageBytes)
	defer conn.Close()

	// hijacked connections are not canceled with the server context
	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-connCtx.Done()
		_ = conn.Close()
	}()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(connCtx, conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendError(conn, actionError, "invalid message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendError(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		var req RequestPayload
		if len(message.Payload) > 0 {
			if err = json.Unmarshal(message.Payload, &req); err != nil {
				if err = that.sendError(conn, message.Action, "invalid payload"); err != nil {
					return err
				}
				continue
			}
		}

		if err = handler(ctx, conn, message.Action, req); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, message string) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: message})
}
