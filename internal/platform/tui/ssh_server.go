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

	"github.com/vovakirdan/lazor/internal/puzzles"
	"github.com/vovakirdan/lazor/internal/solver"
	"github.com/vovakirdan/lazor/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.lazor/host_key.
	HostKeyPath string

	// DBPath is the path to the solve history database.
	DBPath string

	// PuzzlesDir is the directory scanned for puzzle files.
	PuzzlesDir string

	// MaxRounds caps tracer rounds per arrangement.
	MaxRounds int

	// Workers is the number of parallel search workers per solve.
	Workers int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.lazor/history.db",
		PuzzlesDir:  "puzzles",
		Workers:     1,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the puzzle browser.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	loader *puzzles.Loader
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lazor-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		loader: puzzles.NewLoader(cfg.PuzzlesDir),
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".lazor", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

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

	list, err := s.loader.LoadAll()
	if err != nil {
		s.logger.Warn("could not load puzzles", "error", err)
	}

	model := NewSessionModel(list, s.store, s.config, pty.Window.Width, pty.Window.Height)

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

// sessionMode is the active screen within one session.
type sessionMode int

const (
	modeBrowser sessionMode = iota
	modeSolve
	modeHistory
)

// SessionModel manages the session flow: browser -> solve -> browser,
// with the history screen reachable from the browser.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	puzzles  []puzzles.Puzzle
	store    *storage.Store
	config   SSHServerConfig
	width    int
	height   int
	mode     sessionMode
	browser  BrowserModel
	solve    *SolveModel
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(list []puzzles.Puzzle, store *storage.Store, cfg SSHServerConfig, width, height int) SessionModel {
	return SessionModel{
		puzzles: list,
		store:   store,
		config:  cfg,
		width:   width,
		height:  height,
		browser: NewBrowserModel(list),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.browser.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.mode {
	case modeSolve:
		return m.updateSolve(msg)
	case modeHistory:
		return m.updateHistory(msg)
	default:
		return m.updateBrowser(msg)
	}
}

// updateBrowser handles updates when in browser mode.
func (m SessionModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBrowser, cmd := m.browser.Update(msg)
	if browser, ok := newBrowser.(BrowserModel); ok {
		m.browser = browser
	}

	if m.browser.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.browser.WantsHistory() {
		history := NewHistoryModel(m.store, m.width, m.height)
		m.history = &history
		m.mode = modeHistory
		m.browser = NewBrowserModel(m.puzzles)
		return m, m.history.Init()
	}

	if selected := m.browser.Selected(); selected != nil {
		puzzle := m.findPuzzle(selected.PuzzleID)
		if puzzle == nil {
			return m, nil
		}

		s := solver.New()
		if m.config.MaxRounds > 0 {
			s.MaxRounds = m.config.MaxRounds
		}
		if m.config.Workers > 0 {
			s.Workers = m.config.Workers
		}

		solve := NewSolveModel(puzzle, s)
		m.solve = &solve
		m.mode = modeSolve
		m.browser = NewBrowserModel(m.puzzles)

		return m, m.solve.Init()
	}

	return m, cmd
}

// updateSolve handles updates when a solve is running or displayed.
func (m SessionModel) updateSolve(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.solve.Update(msg)
	solve, ok := newModel.(SolveModel)
	if !ok {
		return m, cmd
	}
	m.solve = &solve

	// The solve view quits itself on Enter/Esc; intercept and return to
	// the browser instead of ending the session.
	if solve.quitting {
		m.recordSolve(solve)
		m.mode = modeBrowser
		m.solve = nil
		return m, m.browser.Init()
	}

	return m, cmd
}

// updateHistory handles updates when in history mode.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	history, ok := newModel.(HistoryModel)
	if !ok {
		return m, cmd
	}
	m.history = &history

	if history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if history.IsGoingBack() {
		m.mode = modeBrowser
		m.history = nil
		return m, m.browser.Init()
	}

	return m, cmd
}

// recordSolve saves a finished solve to the history database.
func (m SessionModel) recordSolve(solve SolveModel) {
	if m.store == nil || !solve.finished {
		return
	}

	rec := storage.SolveRecord{
		PuzzleID: solve.puzzle.ID,
		File:     solve.puzzle.FilePath,
	}
	if sol := solve.Solution(); sol != nil {
		rec.Solved = true
		rec.Attempts = sol.Attempts
		rec.Duration = sol.Duration
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveSolve(rec)
}

// findPuzzle returns the loaded puzzle with the given ID, or nil.
func (m SessionModel) findPuzzle(id string) *puzzles.Puzzle {
	for i := range m.puzzles {
		if m.puzzles[i].ID == id {
			return &m.puzzles[i]
		}
	}
	return nil
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeSolve:
		if m.solve != nil {
			return m.solve.View()
		}
	case modeHistory:
		if m.history != nil {
			return m.history.View()
		}
	}
	return m.browser.View()
}
