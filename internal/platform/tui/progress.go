package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lazor/internal/puzzles"
	"github.com/vovakirdan/lazor/internal/solver"
)

// solveDoneMsg is sent when the background solver run finishes.
type solveDoneMsg struct {
	solution *solver.Solution
	err      error
}

// SolveModel is the Bubble Tea model showing live solve progress and,
// once the search finishes, the solved grid.
type SolveModel struct {
	puzzle    *puzzles.Puzzle
	solver    *solver.Solver
	spinner   spinner.Model
	attempts  *atomic.Uint64
	total     uint64
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan solveDoneMsg
	solution  *solver.Solution
	err       error
	finished  bool
	quitting  bool
	keyMapper *KeyMapper
	width     int
}

// NewSolveModel creates a solve progress model. The search starts on Init.
func NewSolveModel(p *puzzles.Puzzle, s *solver.Solver) SolveModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleCursor

	attempts := &atomic.Uint64{}
	s.Progress = func(n uint64) { attempts.Store(n) }

	board, err := p.Board()
	var total uint64
	if err == nil {
		slots := len(board.EmptyCenters(p.FixedCenters()))
		total = solver.Permutations(p.Counts, slots)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return SolveModel{
		puzzle:    p,
		solver:    s,
		spinner:   sp,
		attempts:  attempts,
		total:     total,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan solveDoneMsg, 1),
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the background search and the UI refresh loop.
func (m SolveModel) Init() tea.Cmd {
	ctx, done := m.ctx, m.done
	p, s := m.puzzle, m.solver
	go func() {
		sol, err := s.Solve(ctx, p)
		done <- solveDoneMsg{solution: sol, err: err}
	}()

	return tea.Batch(m.spinner.Tick, tickCmd(30), waitForDone(done))
}

func waitForDone(done chan solveDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return <-done
	}
}

// Update handles messages for the solve view.
func (m SolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if action == MenuActionQuit || action == MenuActionBack ||
			(m.finished && action == MenuActionSelect) {
			if m.cancel != nil {
				m.cancel()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case solveDoneMsg:
		m.finished = true
		m.solution = msg.solution
		m.err = msg.err
		return m, nil

	case TickMsg:
		if m.finished {
			return m, nil
		}
		return m, tickCmd(30)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.finished {
			return m, nil
		}
		return m, cmd
	}

	return m, nil
}

// View renders the progress spinner or the finished solution.
func (m SolveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(styleTitle.Render(m.puzzle.Name))
	b.WriteString("\n\n")

	if !m.finished {
		b.WriteString(fmt.Sprintf("  %s solving  %d / %d arrangements\n",
			m.spinner.View(), m.attempts.Load(), m.total))
		b.WriteString("\n  ")
		b.WriteString(styleSubtle.Render("Esc: Cancel"))
		b.WriteString("\n")
		return b.String()
	}

	switch {
	case m.err != nil && errors.Is(m.err, solver.ErrNoSolution):
		b.WriteString("  ")
		b.WriteString(styleError.Render("No solution exists"))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString("  ")
		b.WriteString(styleError.Render("Solve failed: " + m.err.Error()))
		b.WriteString("\n")
	default:
		b.WriteString("  ")
		b.WriteString(styleSolved.Render(fmt.Sprintf("Solved in %d attempts (%s)",
			m.solution.Attempts, m.solution.Duration.Round(time.Millisecond))))
		b.WriteString("\n\n")
		b.WriteString(indent(StyledGrid(m.solution.Grid), "  "))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(styleSubtle.Render("Enter/Esc: Back"))
	b.WriteString("\n")
	return b.String()
}

// Solution returns the found solution, or nil.
func (m SolveModel) Solution() *solver.Solution {
	return m.solution
}

// Err returns the solve error, or nil.
func (m SolveModel) Err() error {
	return m.err
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// RunSolve runs the solve progress view standalone and returns the result.
// Used by the CLI's watch mode.
func RunSolve(p *puzzles.Puzzle, s *solver.Solver) (*solver.Solution, error) {
	model := NewSolveModel(p, s)

	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SolveModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type")
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.solution == nil {
		return nil, context.Canceled
	}
	return m.solution, nil
}
