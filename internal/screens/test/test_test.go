package test

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screens/results"
	sess "github.com/algodrill/algodrill/internal/session"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/algodrill/algodrill/internal/testgen"
)

type memEvents struct {
	sessions []store.SessionEventData
	answers  []store.AnswerEventData
}

func (m *memEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}

func (m *memEvents) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

type memAttempts struct {
	records []*store.AttemptRecord
}

func (m *memAttempts) Add(_ context.Context, rec *store.AttemptRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memAttempts) Recent(_ context.Context, learnerID string, limit int) ([]*store.AttemptRecord, error) {
	var out []*store.AttemptRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].LearnerID == learnerID {
			out = append(out, m.records[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

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

type fixture struct {
	screen    *TestScreen
	events    *memEvents
	attempts  *memAttempts
	snapshots *memSnapshots
}

func newFixture(t *testing.T, sessionType string) *fixture {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 11))
	f := &fixture{
		events:    &memEvents{},
		attempts:  &memAttempts{},
		snapshots: &memSnapshots{},
	}
	f.screen = New(Deps{
		Generator:   testgen.NewGenerator(strategy.NewDispatcher(rng), rng),
		Config:      strategy.DefaultConfig(),
		Profile:     store.ProfileData{LearnerID: "learner-1", Name: "Ada"},
		Snapshots:   f.snapshots,
		Events:      f.events,
		Attempts:    f.attempts,
		SessionType: sessionType,
	})
	return f
}

// start runs test generation synchronously and feeds the result back.
func (f *fixture) start(t *testing.T) {
	t.Helper()
	msg := f.screen.loadTest()()
	ready, ok := msg.(testReadyMsg)
	if !ok {
		t.Fatalf("expected testReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("test generation failed: %v", ready.Err)
	}
	f.screen.Update(ready)
	if f.screen.session == nil {
		t.Fatal("session not started")
	}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestStartEventRecorded(t *testing.T) {
	f := newFixture(t, sess.TypeNormal)
	f.start(t)

	if len(f.events.sessions) != 1 {
		t.Fatalf("got %d session events, want 1", len(f.events.sessions))
	}
	ev := f.events.sessions[0]
	if ev.Action != "start" || ev.SessionType != sess.TypeNormal {
		t.Errorf("bad start event: %+v", ev)
	}
	if ev.QuestionsServed != testgen.TargetLength {
		t.Errorf("QuestionsServed = %d, want %d", ev.QuestionsServed, testgen.TargetLength)
	}
	if ev.Config["questionSelection"] != "QLearning" {
		t.Errorf("config not recorded: %+v", ev.Config)
	}
}

func TestAnswerLockRecordsEventAndFreezesKeys(t *testing.T) {
	f := newFixture(t, sess.TypeNormal)
	f.start(t)

	q := f.screen.session.Question()
	_, cmd := f.screen.Update(key(rune('1' + q.CorrectAnswer)))
	if cmd == nil {
		t.Fatal("expected feedback timer commands")
	}
	if len(f.events.answers) != 1 {
		t.Fatalf("got %d answer events, want 1", len(f.events.answers))
	}
	ev := f.events.answers[0]
	if !ev.Correct || ev.QuestionID != q.ID || ev.Position != 0 {
		t.Errorf("bad answer event: %+v", ev)
	}

	// Further answer keys must not re-lock.
	f.screen.Update(key('1'))
	if len(f.events.answers) != 1 {
		t.Error("locked question accepted a second answer")
	}
}

func TestStaleDwellTimerIgnored(t *testing.T) {
	f := newFixture(t, sess.TypeNormal)
	f.start(t)

	q := f.screen.session.Question()
	f.screen.Update(key(rune('1' + q.CorrectAnswer)))

	f.screen.Update(feedbackExpiredMsg{Seq: f.screen.feedbackSeq - 1})
	if f.screen.session.Current != 0 {
		t.Fatal("stale timer advanced the session")
	}

	f.screen.Update(feedbackExpiredMsg{Seq: f.screen.feedbackSeq})
	if f.screen.session.Current != 1 {
		t.Fatalf("Current = %d after dwell, want 1", f.screen.session.Current)
	}
	if f.screen.session.Selected != -1 {
		t.Error("selection not reset on advance")
	}
}

func TestFullRunPersistsAttemptAndSchedule(t *testing.T) {
	f := newFixture(t, sess.TypeNormal)
	f.start(t)

	var finalCmd tea.Cmd
	for i := 0; i < testgen.TargetLength; i++ {
		q := f.screen.session.Question()
		f.screen.Update(key(rune('1' + q.CorrectAnswer)))
		_, finalCmd = f.screen.Update(feedbackExpiredMsg{Seq: f.screen.feedbackSeq})
	}

	if !f.screen.finishing {
		t.Fatal("screen not finishing after last question")
	}
	if finalCmd == nil {
		t.Fatal("expected a finalize command")
	}

	saved, ok := finalCmd().(attemptSavedMsg)
	if !ok {
		t.Fatalf("expected attemptSavedMsg, got %T", finalCmd())
	}
	if saved.Err != nil {
		t.Fatalf("finalize failed: %v", saved.Err)
	}
	if saved.Record.Score != testgen.TargetLength || saved.Record.Total != testgen.TargetLength {
		t.Errorf("score %d/%d, want perfect", saved.Record.Score, saved.Record.Total)
	}

	if len(f.attempts.records) != 1 {
		t.Fatalf("got %d attempts, want 1", len(f.attempts.records))
	}
	if len(f.events.sessions) != 2 || f.events.sessions[1].Action != "end" {
		t.Errorf("end event missing: %+v", f.events.sessions)
	}
	if len(f.snapshots.saved) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(f.snapshots.saved))
	}
	data := f.snapshots.saved[0].Data
	if data.Review == nil || data.Review.IntervalDays < 1 {
		t.Errorf("review schedule not saved: %+v", data.Review)
	}
	if data.Profile == nil || data.Profile.LearnerID != "learner-1" {
		t.Errorf("profile not carried into snapshot: %+v", data.Profile)
	}

	// The saved attempt hands off to the results screen.
	_, cmd := f.screen.Update(saved)
	if cmd == nil {
		t.Fatal("expected hand-off command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", replace.Screen)
	}
}

func TestReviewModeServesPastMistakes(t *testing.T) {
	f := newFixture(t, sess.TypeSpacedRepetition)
	f.attempts.records = []*store.AttemptRecord{{
		SessionID: "old",
		LearnerID: "learner-1",
		Questions: []store.AttemptQuestion{
			{ID: "arr-001", Topic: "arrays", Title: "a", CorrectAnswer: 0},
			{ID: "ll-001", Topic: "linkedlists", Title: "b", CorrectAnswer: 1},
		},
		Answers: []int{1, 1},
	}}
	f.start(t)

	s := f.screen.session
	if len(s.Questions) != 1 || s.Questions[0].ID != "arr-001" {
		t.Fatalf("review queue wrong: %+v", s.Questions)
	}
	if s.Policy.ReviewInterval != 0 || s.Policy.Reward != nil {
		t.Error("review session must carry a zero policy")
	}
	if len(s.Results) != 0 {
		t.Error("review session must not run strategy algorithms")
	}
}

func TestReviewModeWithNothingDueErrors(t *testing.T) {
	f := newFixture(t, sess.TypeSpacedRepetition)

	msg := f.screen.loadTest()()
	ready, ok := msg.(testReadyMsg)
	if !ok {
		t.Fatalf("expected testReadyMsg, got %T", msg)
	}
	if ready.Err == nil {
		t.Fatal("expected an error with no past mistakes")
	}
}

func TestReviewFinalizeSkipsSchedule(t *testing.T) {
	f := newFixture(t, sess.TypeSpacedRepetition)
	f.attempts.records = []*store.AttemptRecord{{
		SessionID: "old",
		LearnerID: "learner-1",
		Questions: []store.AttemptQuestion{
			{ID: "arr-002", Topic: "arrays", Title: "a", CorrectAnswer: 0},
		},
		Answers: []int{2},
	}}
	f.start(t)

	q := f.screen.session.Question()
	f.screen.Update(key(rune('1' + q.CorrectAnswer)))
	_, cmd := f.screen.Update(feedbackExpiredMsg{Seq: f.screen.feedbackSeq})
	if cmd == nil {
		t.Fatal("expected a finalize command")
	}
	if saved := cmd().(attemptSavedMsg); saved.Err != nil {
		t.Fatalf("finalize failed: %v", saved.Err)
	}

	if len(f.snapshots.saved) != 0 {
		t.Error("review sessions must not write a review schedule")
	}
	if len(f.attempts.records) != 2 {
		t.Errorf("got %d attempts, want 2", len(f.attempts.records))
	}
}

func TestQuitConfirmAbandons(t *testing.T) {
	f := newFixture(t, sess.TypeNormal)
	f.start(t)

	f.screen.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !f.screen.showQuitConfirm {
		t.Fatal("esc did not open the quit confirm")
	}

	// N keeps going.
	f.screen.Update(key('n'))
	if f.screen.showQuitConfirm {
		t.Fatal("n did not dismiss the quit confirm")
	}

	f.screen.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := f.screen.Update(key('y'))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	last := f.events.sessions[len(f.events.sessions)-1]
	if last.Action != "abandon" {
		t.Errorf("abandon event not recorded: %+v", last)
	}
	if len(f.attempts.records) != 0 {
		t.Error("abandoned session must not persist an attempt")
	}
}

func TestTimerTicksOnlyWhileActive(t *testing.T) {
	f := newFixture(t, sess.TypeNormal)
	f.start(t)

	_, cmd := f.screen.Update(timerTickMsg{})
	if cmd == nil {
		t.Fatal("active session must reschedule the tick")
	}
	if f.screen.session.Elapsed != 1 {
		t.Errorf("Elapsed = %d, want 1", f.screen.session.Elapsed)
	}

	f.screen.session.Phase = sess.PhaseCompleted
	_, cmd = f.screen.Update(timerTickMsg{})
	if cmd != nil {
		t.Error("completed session must not reschedule the tick")
	}
}
