// Package server exposes controller sessions over websockets. Each
// connection gets its own maze, controller and driver; client messages are
// control scripts and every render or notification is pushed back as JSON.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mazerunner/config"
	"github.com/katalvlaran/mazerunner/controller"
	"github.com/katalvlaran/mazerunner/driver"
	"github.com/katalvlaran/mazerunner/render"
	"github.com/katalvlaran/mazerunner/script"
)

// TypeError tags messages reporting a rejected client script.
const TypeError = "error"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the clock handed to every session driver.
func WithClock(c driver.Clock) Option {
	return func(s *Server) {
		if c != nil {
			s.clock = c
		}
	}
}

// Server hands out websocket sessions.
type Server struct {
	cfg      config.Config
	log      *slog.Logger
	clock    driver.Clock
	upgrader websocket.Upgrader

	mu       sync.Mutex
	draining bool
	sessions sync.WaitGroup
}

// New validates cfg and returns a Server.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:   cfg,
		log:   slog.Default(),
		clock: driver.RealClock(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler routes /ws to sessions and /healthz to a liveness probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down and
// waits for open sessions to end.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("listening", "addr", addr)
	err := srv.ListenAndServe()
	s.drain()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrapf(err, "serve %s", addr)
}

// begin registers a session, refusing it once the server is draining.
func (s *Server) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draining {
		return false
	}
	s.sessions.Add(1)
	return true
}

// drain stops new sessions and waits for the open ones to end.
func (s *Server) drain() {
	s.mu.Lock()
	s.draining = true
	s.mu.Unlock()
	s.sessions.Wait()
}

// peer serialises writes to one websocket connection.
type peer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (p *peer) send(v interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(v)
}

// ServeWS upgrades the request and runs one session until the client
// disconnects, sends quit, or the server stops.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	if !s.begin() {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.sessions.Done()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	lg := s.log.With("remote", r.RemoteAddr)
	lg.Info("session opened")
	defer lg.Info("session closed")

	p := &peer{conn: conn}
	out := render.NewJSONFunc(p.send)
	var ctl *controller.Controller
	out.SetStatus(func() controller.Status {
		if ctl == nil {
			return controller.Status{}
		}
		return ctl.Status()
	})
	ctl, err = controller.New(s.cfg, out, out, controller.WithLogger(lg))
	if err != nil {
		lg.Error("session setup failed", "err", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	cmds := make(chan func())
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		defer cancel()
		s.readLoop(ctx, conn, p, ctl, cmds, lg)
	}()

	err = driver.New(ctl, driver.WithClock(s.clock), driver.WithLogger(lg)).Run(ctx, cmds)
	if err != nil && !errors.Is(err, context.Canceled) {
		lg.Warn("driver stopped", "err", err)
	}
	conn.Close()
	<-readerDone
}

// readLoop parses each client message as a script and forwards its ops.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, p *peer, ctl script.Controls, cmds chan<- func(), lg *slog.Logger) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				lg.Debug("read failed", "err", err)
			}
			return
		}
		ops, err := script.Parse(string(msg))
		if err != nil {
			lg.Debug("rejected script", "err", err)
			if err := p.send(render.Message{Type: TypeError, Text: err.Error()}); err != nil {
				return
			}
			continue
		}
		for _, op := range ops {
			switch op.Kind {
			case script.KindQuit:
				_ = p.send(render.Message{Type: render.TypeMessage, Text: "bye"})
				return
			case script.KindWait:
				if err := script.Sleep(ctx, time.Duration(op.N)*time.Millisecond); err != nil {
					return
				}
			default:
				if err := script.Send(ctx, cmds, ctl, op); err != nil {
					return
				}
			}
		}
	}
}
