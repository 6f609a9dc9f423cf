package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lazor/internal/platform/tui"
	"github.com/vovakirdan/lazor/internal/puzzles"
	"github.com/vovakirdan/lazor/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive puzzle browser",
	Long: `Start the interactive puzzle browser.

Use arrow keys or j/k to navigate, Enter to solve the selected puzzle,
Tab to open the solve history.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Solve selected puzzle
  Tab          - Solve history
  Q            - Quit

Examples:
  lazor browse
  lazor browse --puzzles ./my-puzzles`,
	Run: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader := puzzles.NewLoader(cfg.Puzzles.Dir)
	list, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.MaxRounds = cfg.Solver.MaxRounds
	sshCfg.Workers = cfg.Solver.Workers

	model := tui.NewSessionModel(list, store, sshCfg, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
