package welcome

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screen"
	"github.com/algodrill/algodrill/internal/store"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

// memSnapshots is an in-memory SnapshotRepo.
type memSnapshots struct {
	saved []*store.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}

func (m *memSnapshots) Latest(context.Context) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *memSnapshots) Prune(context.Context, int) error { return nil }

func newTestWelcome() (*WelcomeScreen, *memSnapshots, *int) {
	snaps := &memSnapshots{}
	calls := 0
	factory := func(store.ProfileData) screen.Screen {
		calls++
		return &stubScreen{}
	}
	return New(snaps, factory), snaps, &calls
}

func TestEmptyNameRejected(t *testing.T) {
	w, snaps, _ := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty name must not start a save")
	}
	if len(snaps.saved) != 0 {
		t.Errorf("saved %d snapshots, want 0", len(snaps.saved))
	}
	if w.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestProfileSavedAndHandedOff(t *testing.T) {
	w, snaps, calls := newTestWelcome()

	for _, r := range "Ada" {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	saved, ok := cmd().(profileSavedMsg)
	if !ok {
		t.Fatalf("expected profileSavedMsg, got %T", cmd())
	}
	if saved.Err != nil {
		t.Fatalf("save failed: %v", saved.Err)
	}
	if saved.Profile.Name != "Ada" || saved.Profile.LearnerID == "" {
		t.Errorf("bad profile: %+v", saved.Profile)
	}
	if len(snaps.saved) != 1 || snaps.saved[0].Data.Profile == nil {
		t.Fatalf("snapshot with profile not persisted")
	}

	// Feeding the result back must announce the profile and swap screens.
	_, cmd = w.Update(saved)
	if cmd == nil {
		t.Fatal("expected hand-off commands")
	}
	batch := collectMsgs(t, cmd)
	var sawCreated, sawReplace bool
	for _, msg := range batch {
		switch msg.(type) {
		case ProfileCreatedMsg:
			sawCreated = true
		case router.ReplaceScreenMsg:
			sawReplace = true
		}
	}
	if !sawCreated || !sawReplace {
		t.Errorf("hand-off missing messages: created=%v replace=%v", sawCreated, sawReplace)
	}
	if *calls != 1 {
		t.Errorf("home factory called %d times, want 1", *calls)
	}
}

// collectMsgs runs a cmd (possibly a batch) and gathers resulting messages.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			if c != nil {
				out = append(out, c())
			}
		}
		return out
	}
	return []tea.Msg{msg}
}
