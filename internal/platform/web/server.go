// Package web serves the jumper game to browsers: an embedded canvas client
// and a websocket endpoint that runs one session per connection.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/session"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

//go:embed static
var staticFiles embed.FS

const (
	readLimit    = 1 << 10
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
	pingInterval = 25 * time.Second
	inboxSize    = 16
)

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// TickRate is the frame rate of each session and of frame messages.
	TickRate int

	// Game is the gameplay configuration shared by every session.
	Game config.JumperConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		TickRate: 60,
		Game:     config.DefaultJumperConfig(),
	}
}

// Server serves the browser client.
type Server struct {
	config   Config
	store    storage.RunSaver
	logger   *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
	sessions sync.WaitGroup
}

// NewServer creates a web server. A nil store disables journaling.
func NewServer(cfg Config, store storage.RunSaver, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded client missing: %v", err))
	}
	s.mux.Handle("/", http.FileServer(http.FS(static)))
	s.mux.HandleFunc("/ws", s.handleWS)
	return s
}

// Handler returns the HTTP handler for the client and the websocket endpoint.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// Request contexts derive from ctx, so open sessions end with it; ListenAndServe
// waits for their journals before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	defer s.sessions.Wait()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleWS upgrades the connection and plays one session on it.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	s.sessions.Add(1)
	defer s.sessions.Done()

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("session started")

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	inbox := make(chan string, inboxSize)
	go readLoop(conn, inbox, logger)

	sess := session.New(session.Options{
		Config:  s.config.Game,
		Runtime: core.RuntimeConfig{TickRate: s.config.TickRate, Seed: time.Now().UnixNano()},
		Host:    "web",
		Logger:  logger,
		Store:   s.store,
	})
	defer sess.Close()

	s.run(r.Context(), conn, sess, inbox)
	logger.Info("session ended", "score", sess.State().Score)
}

// readLoop decodes client messages and forwards their types to the session
// goroutine. It closes inbox when the connection fails.
func readLoop(conn *websocket.Conn, inbox chan<- string, logger *log.Logger) {
	defer close(inbox)
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("read failed", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Debug("discarding malformed message", "error", err)
			continue
		}

		select {
		case inbox <- msg.Type:
		default:
			logger.Debug("inbox full, dropping input", "type", msg.Type)
		}
	}
}

// run owns the session: it applies input, advances the clock and writes frames.
func (s *Server) run(ctx context.Context, conn *websocket.Conn, sess *session.Session, inbox <-chan string) {
	ticker := time.NewTicker(time.Second / time.Duration(s.config.TickRate))
	defer ticker.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	if err := s.writeFrame(conn, sess); err != nil {
		return
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case typ, ok := <-inbox:
			if !ok {
				return
			}
			apply(sess, typ)

		case now := <-ticker.C:
			sess.Advance(now.Sub(last))
			last = now
			if err := s.writeFrame(conn, sess); err != nil {
				return
			}

		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// apply maps a client message type to a session call. Unknown types are ignored.
func apply(sess *session.Session, typ string) {
	switch typ {
	case typeJump:
		sess.Jump()
	case typeRestart:
		sess.Restart()
	case typePause:
		sess.TogglePause()
	}
}

func (s *Server) writeFrame(conn *websocket.Conn, sess *session.Session) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(newFrameMessage(sess.Frame())); err != nil {
		return fmt.Errorf("web: write frame: %w", err)
	}
	return nil
}
