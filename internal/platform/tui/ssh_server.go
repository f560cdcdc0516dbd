package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout closes connections without input for this long.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent connections; zero means no cap.
	MaxSessions int

	// GameID is the registered game every session plays.
	GameID string

	// Runtime is the template for every session. Screen size comes from
	// the client's PTY; a zero seed gives each round a time-based seed.
	Runtime core.RuntimeConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig(gameID string) SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 32,
		GameID:      gameID,
		Runtime:     core.DefaultConfig(),
	}
}

// SSHServer serves snake sessions over SSH. All sessions share one score
// store; none of them produce sound.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	sessions *SessionRegistry
}

// NewSSHServer creates a server. store may be nil.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config:   cfg,
		store:    store,
		logger:   logger,
		sessions: NewSessionRegistry(cfg.MaxSessions),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		dir := config.Dir()
		if dir == "" {
			return nil, errors.New("ssh: cannot resolve home directory for host key")
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a session model for each SSH connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "snake needs an interactive terminal: connect with ssh -t")
		return nil, nil
	}

	cfg := s.config.Runtime
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height

	deps := Deps{
		Store:  s.store,
		Player: audio.NewSilent(),
		Logger: s.logger.With("user", sess.User()),
	}
	model, err := NewSessionModel(s.config.GameID, deps, cfg, sess.User())
	if err != nil {
		s.logger.Error("cannot create session", "user", sess.User(), "error", err)
		wish.Fatalln(sess, "internal error")
		return nil, nil
	}

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware admits sessions up to the limit and logs their
// lifetime. It wraps the bubbletea middleware, so a rejected session never
// starts a program.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		active := ActiveSession{
			ID:      sess.Context().SessionID(),
			User:    sess.User(),
			Remote:  sess.RemoteAddr().String(),
			Started: time.Now(),
		}
		if err := s.sessions.Register(active); err != nil {
			s.logger.Warn("session rejected", "user", active.User, "remote", active.Remote, "error", err)
			wish.Fatalln(sess, "Server is full, try again later.")
			return
		}
		defer s.sessions.Unregister(active.ID)

		s.logger.Info("session started",
			"user", active.User,
			"remote", active.Remote,
			"active", s.sessions.Count(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", active.User,
			"remote", active.Remote,
			"duration", time.Since(active.Started).Round(time.Second),
		)
	}
}

// ActiveSessions returns the number of connected clients.
func (s *SSHServer) ActiveSessions() int {
	return s.sessions.Count()
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errc:
		return fmt.Errorf("ssh: %w", err)
	}
}

// Shutdown gracefully stops the server. The store is left to its owner.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
