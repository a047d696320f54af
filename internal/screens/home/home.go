// Package home is the main menu: start a drill, review due questions,
// browse history.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/algodrill/algodrill/internal/review"
	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screen"
	"github.com/algodrill/algodrill/internal/screens/history"
	testscreen "github.com/algodrill/algodrill/internal/screens/test"
	"github.com/algodrill/algodrill/internal/session"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/algodrill/algodrill/internal/testgen"
	"github.com/algodrill/algodrill/internal/ui/components"
	"github.com/algodrill/algodrill/internal/ui/theme"
)

// Deps bundles everything the home screen and its children need.
type Deps struct {
	Generator *testgen.Generator
	Config    strategy.Config
	Profile   store.ProfileData
	Snapshots store.SnapshotRepo
	Events    store.EventRepo
	Attempts  store.AttemptRepo
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps      Deps
	menu      components.Menu
	reviewDue bool
	attempts  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. Review availability is computed from the
// latest snapshot at construction time.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()

	var reviewDue bool
	if snap, err := deps.Snapshots.Latest(ctx); err == nil {
		reviewDue = review.Due(snap, time.Now())
	}

	attemptCount := 0
	if recent, err := deps.Attempts.Recent(ctx, deps.Profile.LearnerID, 0); err == nil {
		attemptCount = len(recent)
	}

	reviewLabel := "REVIEW MISTAKES"
	if !reviewDue {
		reviewLabel += "  (not due yet)"
	}

	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: testscreen.New(testscreen.Deps{
						Generator:   deps.Generator,
						Config:      deps.Config,
						Profile:     deps.Profile,
						Snapshots:   deps.Snapshots,
						Events:      deps.Events,
						Attempts:    deps.Attempts,
						SessionType: session.TypeNormal,
					}),
				}
			}
		}},
		{Label: reviewLabel, Disabled: !reviewDue, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: testscreen.New(testscreen.Deps{
						Generator:   deps.Generator,
						Config:      deps.Config,
						Profile:     deps.Profile,
						Snapshots:   deps.Snapshots,
						Events:      deps.Events,
						Attempts:    deps.Attempts,
						SessionType: session.TypeSpacedRepetition,
					}),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(deps.Attempts, deps.Profile.LearnerID),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:      deps,
		menu:      components.NewMenu(items),
		reviewDue: reviewDue,
		attempts:  attemptCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ALGODRILL")
	sections = append(sections, title)

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Hey %s, ready to drill?", h.deps.Profile.Name))
	sections = append(sections, greeting)

	stats := fmt.Sprintf("%d attempts completed", h.attempts)
	if h.reviewDue {
		stats += "  ·  review due"
	}
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats), "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
