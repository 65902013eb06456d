package debuglink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/muurk/tokenui/internal/logging"
	"go.uber.org/zap"
)

// Path is the WebSocket endpoint of the debug link.
const Path = "/debuglink"

const (
	writeWait       = 10 * time.Second
	shutdownTimeout = 5 * time.Second
	maxMessageSize  = 4096
)

// Server accepts debug-link connections.
type Server struct {
	driver   Driver
	upgrader websocket.Upgrader
}

func NewServer(d Driver) *Server {
	return &Server{
		driver: d,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler returns an HTTP handler serving Path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, s)
	return mux
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("Debug link upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	s.serveConn(r.Context(), conn, r.RemoteAddr)
}

func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn, remoteAddr string) {
	logging.LogConnection(remoteAddr, "debuglink_connected")
	defer func() {
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "debuglink_closed")
	}()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Debug link read error",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		logging.LogDebuglinkMessage(remoteAddr, "received", data)

		resp := s.dispatch(ctx, data)
		if !resp.OK {
			logging.Warn("Debug link request failed",
				zap.String("remote_addr", remoteAddr),
				zap.String("error", resp.Error),
			)
		}

		out, err := json.Marshal(resp)
		if err != nil {
			logging.Error("Failed to encode debug link reply", zap.Error(err))
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			logging.Info("Debug link write error",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
		logging.LogDebuglinkMessage(remoteAddr, "sent", out)
	}
}

func (s *Server) dispatch(ctx context.Context, data []byte) Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Reply(Response{}, &RequestError{Type: "decode", Err: err})
	}
	return Reply(Handle(ctx, s.driver, req))
}

// ListenAndServe serves the debug link on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: writeWait,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	logging.Info("Debug link listening", zap.String("addr", ln.Addr().String()))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("debug link shutdown: %w", err)
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("debug link server: %w", err)
	}
}
