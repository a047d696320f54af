package test

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/algodrill/algodrill/internal/session"
	"github.com/algodrill/algodrill/internal/ui/theme"
)

func (t *TestScreen) View(width, height int) string {
	if t.errMsg != "" {
		return renderError(width, t.errMsg)
	}
	if t.session == nil {
		return renderLoading(width)
	}
	if t.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	if t.finishing {
		return t.renderFinishing(width)
	}
	return t.renderQuestion(width)
}

func (t *TestScreen) renderQuestion(width int) string {
	s := t.session
	q := s.Question()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", q.Topic.Label(), q.Title))

	mins := s.Elapsed / 60
	secs := s.Elapsed % 60
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %d:%02d",
			s.Current+1,
			len(s.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.Score(),
			mins, secs,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.choice.View()))
	b.WriteString("\n")

	if len(t.feedback) > 0 {
		b.WriteString(t.renderFeedback(width))
	} else if s.Selected == -1 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Select (1-4) or use arrows + Enter"))
	}

	return b.String()
}

func (t *TestScreen) renderFeedback(width int) string {
	s := t.session

	var b strings.Builder
	for i, line := range t.feedback {
		style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
		switch {
		case i > 0:
			style = style.Foreground(theme.Accent)
		case s.Feedback == sess.FeedbackCorrect:
			style = style.Foreground(theme.Success).Bold(true)
		case s.Feedback == sess.FeedbackIncorrect:
			style = style.Foreground(theme.Error).Bold(true)
		default:
			style = style.Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (t *TestScreen) renderFinishing(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	for _, line := range t.feedback {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(line))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Saving attempt..."))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The attempt will not be saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Assembling your questions...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
