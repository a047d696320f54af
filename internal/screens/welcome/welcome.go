// Package welcome is the first-run screen: it asks for the learner's name
// and creates their profile. Sessions cannot start without one.
package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screen"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/ui/components"
	"github.com/algodrill/algodrill/internal/ui/layout"
	"github.com/algodrill/algodrill/internal/ui/theme"
)

const maxNameLen = 24

// ProfileCreatedMsg notifies the app that a profile now exists.
type ProfileCreatedMsg struct {
	Profile store.ProfileData
}

// profileSavedMsg reports the async snapshot write.
type profileSavedMsg struct {
	Profile store.ProfileData
	Err     error
}

// WelcomeScreen collects the learner's name and persists the profile.
type WelcomeScreen struct {
	snapshots   store.SnapshotRepo
	homeFactory func(store.ProfileData) screen.Screen
	input       components.TextInput
	saving      bool
	errMsg      string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands off to the screen produced by
// homeFactory once the profile is saved.
func New(snapshots store.SnapshotRepo, homeFactory func(store.ProfileData) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		snapshots:   snapshots,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Your name...", maxNameLen),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Create profile"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		w.saving = false
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		homeScreen := w.homeFactory(msg.Profile)
		return w, tea.Batch(
			func() tea.Msg { return ProfileCreatedMsg{Profile: msg.Profile} },
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: homeScreen} },
		)

	case tea.KeyPressMsg:
		if w.saving {
			return w, nil
		}
		if msg.String() == "enter" {
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				w.errMsg = "Name cannot be empty."
				return w, nil
			}
			w.errMsg = ""
			w.saving = true
			return w, w.saveProfile(name)
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// saveProfile writes the initial snapshot carrying the new profile.
func (w *WelcomeScreen) saveProfile(name string) tea.Cmd {
	return func() tea.Msg {
		profile := store.ProfileData{
			LearnerID: uuid.New().String(),
			Name:      name,
		}
		err := w.snapshots.Save(context.Background(), &store.Snapshot{
			Timestamp: time.Now(),
			Data: store.SnapshotData{
				Version: 1,
				Profile: &profile,
			},
		})
		return profileSavedMsg{Profile: profile, Err: err}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	banner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("A L G O D R I L L")
	sections = append(sections, banner)

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Adaptive drills for data structures & algorithms")
	sections = append(sections, tagline, "")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("What should we call you?")
	sections = append(sections, prompt, w.input.View())

	if w.saving {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saving profile..."))
	}
	if w.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
