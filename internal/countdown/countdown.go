// Package countdown renders a live countdown while a sleep is in progress.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ErrInterrupted is returned when the user quits the countdown early.
var ErrInterrupted = errors.New("countdown interrupted")

const (
	tickInterval = 100 * time.Millisecond
	barWidth     = 30
)

var (
	labelStyle     = lipgloss.NewStyle().Bold(true)
	filledStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	remainingStyle = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

// Model is the bubbletea model for a countdown.
type Model struct {
	label       string
	total       time.Duration
	deadline    time.Time
	now         time.Time
	done        bool
	interrupted bool
	format      func(time.Duration) string
}

// New creates a countdown of total starting at start.
// format renders the remaining time; nil uses time.Duration.String.
func New(label string, total time.Duration, start time.Time, format func(time.Duration) string) Model {
	if format == nil {
		format = func(d time.Duration) string { return d.String() }
	}
	return Model{
		label:    label,
		total:    total,
		deadline: start.Add(total),
		now:      start,
		format:   format,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the ticker.
func (m Model) Init() tea.Cmd {
	if m.total <= 0 {
		return tea.Quit
	}
	return tick()
}

// Update handles ticks and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
	case tickMsg:
		m.now = time.Time(msg)
		if !m.now.Before(m.deadline) {
			m.done = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

// Remaining returns the time left, never negative.
func (m Model) Remaining() time.Duration {
	remaining := m.deadline.Sub(m.now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Done reports whether the deadline was reached.
func (m Model) Done() bool {
	return m.done
}

// Interrupted reports whether the user quit early.
func (m Model) Interrupted() bool {
	return m.interrupted
}

// View renders the label, a progress bar and the remaining time.
func (m Model) View() string {
	if m.done {
		return ""
	}

	filled := barWidth
	if m.total > 0 {
		filled = int(float64(barWidth) * float64(m.total-m.Remaining()) / float64(m.total))
	}
	filled = min(max(filled, 0), barWidth)

	bar := filledStyle.Render(strings.Repeat("█", filled)) +
		remainingStyle.Render(strings.Repeat("░", barWidth-filled))

	label := runewidth.Truncate(m.label, 24, "…")
	return fmt.Sprintf("%s %s %s\n", labelStyle.Render(label), bar, m.format(m.Remaining()))
}

// Run shows a countdown for d on out and returns when it finishes, when
// ctx is done, or when the user quits. Input is read from in, which may be
// nil to disable key handling.
func Run(ctx context.Context, label string, d time.Duration, in io.Reader, out io.Writer, format func(time.Duration) string) error {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
	}
	if in == nil {
		opts = append(opts, tea.WithInput(nil))
	} else {
		opts = append(opts, tea.WithInput(in))
	}

	final, err := tea.NewProgram(New(label, d, time.Now(), format), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run countdown: %w", err)
	}

	if m, ok := final.(Model); ok && m.Interrupted() {
		return ErrInterrupted
	}
	return nil
}
