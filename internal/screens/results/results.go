// Package results shows the outcome of a finished attempt: the score, the
// time spent and the per-family algorithm execution log.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/algodrill/algodrill/internal/algorithms"
	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screen"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/ui/components"
	"github.com/algodrill/algodrill/internal/ui/layout"
	"github.com/algodrill/algodrill/internal/ui/theme"
)

// ResultsScreen displays one finalized attempt.
type ResultsScreen struct {
	record         *store.AttemptRecord
	execLog        []algorithms.ExecutionResult
	reviewInterval int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a saved attempt.
func New(record *store.AttemptRecord, execLog []algorithms.ExecutionResult, reviewInterval int) *ResultsScreen {
	return &ResultsScreen{
		record:         record,
		execLog:        execLog,
		reviewInterval: reviewInterval,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var sections []string

	rec := r.record

	verdict := "Keep practicing."
	if rec.Total > 0 && rec.Score*2 >= rec.Total {
		verdict = "Nice work!"
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(verdict))

	score := fmt.Sprintf("Score: %d / %d", rec.Score, rec.Total)
	var pct float64
	if rec.Total > 0 {
		pct = float64(rec.Score) / float64(rec.Total)
	}
	mins := rec.TimeSpentSecs / 60
	secs := rec.TimeSpentSecs % 60
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(score),
		components.NewProgressBar("", pct, true, 36).View(),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Time: %d:%02d", mins, secs)),
		"")

	if len(r.execLog) > 0 {
		sections = append(sections, r.renderExecLog(), "")
	}

	if r.reviewInterval > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Next review in %d day(s).", r.reviewInterval)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderExecLog renders the algorithm performance table.
func (r *ResultsScreen) renderExecLog() string {
	header := fmt.Sprintf("%-18s %-14s %10s  %-10s %s",
		"Stage", "Algorithm", "Time (ms)", "Time cplx", "Space cplx")

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", lipgloss.Width(header))))
	for _, res := range r.execLog {
		b.WriteString("\n")
		row := fmt.Sprintf("%-18s %-14s %10.3f  %-10s %s",
			res.Topic,
			res.AlgorithmName,
			res.ExecutionTimeMs,
			res.Complexity.Time,
			res.Complexity.Space)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(row))
	}
	return b.String()
}
