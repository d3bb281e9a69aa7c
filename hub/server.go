package hub

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // overlays are served from other local origins
	},
}

// Handler upgrades requests to WebSocket clients of h fed by b.
func Handler(h *Hub, b *Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("hub: websocket upgrade failed", "err", err)
			return
		}

		client := NewClient(h, conn)
		if h.Register(client) {
			b.SendInitialState(client)
		}

		go client.WritePump()
		go client.ReadPump()
	}
}

// Server serves the event stream at /ws.
type Server struct {
	hub         *Hub
	broadcaster *Broadcaster
	addr        string
	httpServer  *http.Server
}

func NewServer(h *Hub, b *Broadcaster, addr string) *Server {
	return &Server{hub: h, broadcaster: b, addr: addr}
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", Handler(s.hub, s.broadcaster))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

// Start listens on the configured address and serves in the background. It
// returns the bound address, useful when addr asks for port 0.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", err
	}
	s.httpServer = &http.Server{Handler: s.Mux()}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.hub.logger.Error("hub: serve", "err", err)
		}
	}()
	s.hub.logger.Info("hub: listening", "addr", ln.Addr().String())
	return ln.Addr().String(), nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
