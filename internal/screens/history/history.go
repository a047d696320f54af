// Package history lists the learner's past attempts with an expandable
// per-question breakdown.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screen"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/ui/layout"
	"github.com/algodrill/algodrill/internal/ui/theme"
)

// historyLimit caps how many attempts are loaded.
const historyLimit = 50

type historyLoadedMsg struct {
	Attempts []*store.AttemptRecord
	Err      error
}

// HistoryScreen displays past attempts.
type HistoryScreen struct {
	attempts  store.AttemptRepo
	learnerID string

	records  []*store.AttemptRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(attempts store.AttemptRepo, learnerID string) *HistoryScreen {
	return &HistoryScreen{
		attempts:  attempts,
		learnerID: learnerID,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.attempts.Recent(context.Background(), s.learnerID, historyLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Start drilling!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.CompletedAt.Format("Jan 02, 2006")
		mins := rec.TimeSpentSecs / 60
		secs := rec.TimeSpentSecs % 60

		kind := "drill"
		if rec.SessionType != "normal" {
			kind = "review"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-6s  %d/%d  %d:%02d",
			prefix, dateStr, kind, rec.Score, rec.Total, mins, secs)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderBreakdown(&b, rec, width)
		}
	}

	return b.String()
}

// renderBreakdown lists each question of an attempt with its verdict.
func (s *HistoryScreen) renderBreakdown(b *strings.Builder, rec *store.AttemptRecord, width int) {
	for j, q := range rec.Questions {
		verdict := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if j < len(rec.Answers) && rec.Answers[j] == q.CorrectAnswer {
			verdict = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}
		line := fmt.Sprintf("    %s %s — %s", verdict, q.Title, q.Topic)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
}
