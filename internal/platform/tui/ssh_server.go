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

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
	"github.com/vovakirdan/tui-pairs/internal/pairs"
	"github.com/vovakirdan/tui-pairs/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pairs/host_key.
	HostKeyPath string

	// DBPath is the path to the score store. A ".json" extension selects
	// the plain-file backend.
	DBPath string

	// RevealDelay overrides how long a completed selection stays visible.
	// Zero keeps the engine default.
	RevealDelay time.Duration

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.pairs/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for remote play. All connections share
// one leaderboard.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  storage.Backend
	scores *leaderboard.Board
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pairs-ssh",
	})

	// Open storage
	store, err := storage.OpenAuto(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open score store", "error", err)
		// Continue without persistence
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		scores: leaderboard.Open(store),
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pairs", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create session model that handles setup + board flow
	model := NewSessionModel(s.scores, sshSession.User(), s.config.RevealDelay, pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen identifies which screen a session is showing.
type sessionScreen int

const (
	screenSetup sessionScreen = iota
	screenBoard
	screenScores
)

// SessionModel manages the full session flow: setup -> board -> setup, with
// the scoreboard reachable from setup. This is the top-level model used for
// SSH sessions.
type SessionModel struct {
	scores     *leaderboard.Board
	username   string
	controller *pairs.Controller
	screen     sessionScreen
	setup      SetupModel
	board      *BoardModel
	scoreboard *ScoreboardModel
	width      int
	height     int
	quitting   bool
}

// NewSessionModel creates a new session model. One controller lives for the
// whole connection and is reconfigured per round.
func NewSessionModel(scores *leaderboard.Board, username string, revealDelay time.Duration, width, height int) SessionModel {
	return SessionModel{
		scores:     scores,
		username:   username,
		controller: pairs.NewController(pairs.Config{RevealDelay: revealDelay}, scores),
		setup:      NewSetupModel(width, height),
		width:      width,
		height:     height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenBoard:
		if m.board != nil {
			return m.updateBoard(msg)
		}
	case screenScores:
		if m.scoreboard != nil {
			return m.updateScores(msg)
		}
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates while the setup menu is showing.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setupModel, ok := newSetup.(SetupModel); ok {
		m.setup = setupModel
	}

	// Check if user quit
	if m.setup.IsQuitting() || m.setup.WantsBack() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if user wants the scoreboard
	if m.setup.WantsScoreboard() {
		scoreboard := NewScoreboardModel(m.scores, m.width, m.height)
		m.scoreboard = &scoreboard
		m.screen = screenScores
		return m, scoreboard.Init()
	}

	// Check if a round was configured
	if selection := m.setup.Selected(); selection != nil {
		if err := m.controller.Configure(selection.Difficulty, selection.ThemeID, nil); err != nil {
			// Registry themes resolve unless the registry changed under us;
			// show a fresh menu rather than a dead board.
			m.setup = NewSetupModel(m.width, m.height)
			return m, m.setup.Init()
		}

		board := NewBoardModel(m.controller, m.username, m.width, m.height)
		m.board = &board
		m.screen = screenBoard
		return m, board.Init()
	}

	return m, cmd
}

// updateBoard handles updates while a round is being played.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if boardModel, ok := newModel.(BoardModel); ok {
		m.board = &boardModel
	}

	// Check if user went back to the setup menu
	if m.board.BackToMenu() {
		m.screen = screenSetup
		m.board = nil
		m.setup = NewSetupModel(m.width, m.height)
		return m, m.setup.Init()
	}

	// Check if user quit entirely
	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is showing.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if scoreboardModel, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &scoreboardModel
	}

	if m.scoreboard.IsGoingBack() {
		m.screen = screenSetup
		m.scoreboard = nil
		m.setup = NewSetupModel(m.width, m.height)
		return m, m.setup.Init()
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenBoard:
		if m.board != nil {
			return m.board.View()
		}
	case screenScores:
		if m.scoreboard != nil {
			return m.scoreboard.View()
		}
	}
	return m.setup.View()
}
