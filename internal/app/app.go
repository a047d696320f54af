package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screen"
	"github.com/algodrill/algodrill/internal/screens/home"
	"github.com/algodrill/algodrill/internal/screens/test"
	"github.com/algodrill/algodrill/internal/screens/welcome"
	"github.com/algodrill/algodrill/internal/session"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/algodrill/algodrill/internal/testgen"
	"github.com/algodrill/algodrill/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Store  *store.Store
	Config strategy.Config

	// StartReview opens a spaced-repetition session immediately instead
	// of waiting on the home menu. Requires an existing profile.
	StartReview bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router       *router.Router
	learner      string
	width        int
	height       int
	reviewScreen func() screen.Screen
}

// newAppModel builds the root model. A learner with a saved profile lands
// on the home screen; a first run starts at the welcome screen.
func newAppModel(opts Options) AppModel {
	snapRepo := opts.Store.SnapshotRepo()

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	gen := testgen.NewGenerator(strategy.NewDispatcher(rng), rng)

	homeFactory := func(profile store.ProfileData) screen.Screen {
		return home.New(home.Deps{
			Generator: gen,
			Config:    opts.Config,
			Profile:   profile,
			Snapshots: snapRepo,
			Events:    opts.Store.EventRepo(),
			Attempts:  opts.Store.AttemptRepo(),
		})
	}

	var initial screen.Screen
	var learner string
	var reviewScreen func() screen.Screen
	snap, err := snapRepo.Latest(context.Background())
	if err == nil && snap != nil && snap.Data.Profile != nil {
		profile := *snap.Data.Profile
		learner = profile.Name
		initial = homeFactory(profile)
		if opts.StartReview {
			reviewScreen = func() screen.Screen {
				return test.New(test.Deps{
					Generator:   gen,
					Config:      opts.Config,
					Profile:     profile,
					Snapshots:   snapRepo,
					Events:      opts.Store.EventRepo(),
					Attempts:    opts.Store.AttemptRepo(),
					SessionType: session.TypeSpacedRepetition,
				})
			}
		}
	} else {
		initial = welcome.New(snapRepo, homeFactory)
	}

	return AppModel{
		router:       router.New(initial),
		learner:      learner,
		reviewScreen: reviewScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.reviewScreen != nil {
		open := func() tea.Msg {
			return router.PushScreenMsg{Screen: m.reviewScreen()}
		}
		return tea.Batch(cmd, open)
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case welcome.ProfileCreatedMsg:
		m.learner = msg.Profile.Name
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.learner, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
