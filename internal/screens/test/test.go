// Package test runs one assessment attempt: it generates the question set,
// walks the learner through it answer by answer and persists the finalized
// attempt.
package test

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/algodrill/algodrill/internal/review"
	"github.com/algodrill/algodrill/internal/router"
	"github.com/algodrill/algodrill/internal/screen"
	"github.com/algodrill/algodrill/internal/screens/results"
	sess "github.com/algodrill/algodrill/internal/session"
	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/algodrill/algodrill/internal/testgen"
	"github.com/algodrill/algodrill/internal/ui/components"
	"github.com/algodrill/algodrill/internal/ui/layout"
)

// Deps bundles what the test screen needs to run a session.
type Deps struct {
	Generator   *testgen.Generator
	Config      strategy.Config
	Profile     store.ProfileData
	Snapshots   store.SnapshotRepo
	Events      store.EventRepo
	Attempts    store.AttemptRepo
	SessionType string
}

// TestScreen drives one live session.
type TestScreen struct {
	deps Deps

	session *sess.Session
	choice  components.MultiChoice

	// feedback holds the currently visible feedback lines. feedbackSeq
	// invalidates dwell timers from answers that already advanced.
	feedback    []string
	feedbackSeq int

	showQuitConfirm bool
	finishing       bool
	errMsg          string
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// New creates a TestScreen. The session starts loading on Init.
func New(deps Deps) *TestScreen {
	return &TestScreen{deps: deps}
}

func (t *TestScreen) Init() tea.Cmd {
	return tea.Batch(t.loadTest(), tickCmd())
}

func (t *TestScreen) Title() string {
	if t.deps.SessionType == sess.TypeSpacedRepetition {
		return "Review"
	}
	return "Drill"
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	if t.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if t.session != nil && t.session.Selected != -1 {
		return []layout.KeyHint{
			{Key: "", Description: "Next question coming up..."},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Lock in"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case testReadyMsg:
		return t.handleTestReady(msg)

	case timerTickMsg:
		if t.session != nil && t.session.Phase == sess.PhaseActive {
			t.session.Tick()
			return t, tickCmd()
		}
		return t, nil

	case delayedFeedbackMsg:
		if t.session != nil && t.session.Phase != sess.PhaseCompleted {
			t.feedback = append(t.feedback, msg.Text)
		}
		return t, nil

	case feedbackExpiredMsg:
		return t.handleFeedbackExpired(msg)

	case attemptSavedMsg:
		return t.handleAttemptSaved(msg)

	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

// loadTest generates the question set off the UI goroutine and records the
// session start event. An adapter panic becomes the screen's error state.
func (t *TestScreen) loadTest() tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = testReadyMsg{Err: fmt.Errorf("test generation failed: %v", r)}
			}
		}()

		ctx := context.Background()

		var test testgen.GeneratedTest
		if t.deps.SessionType == sess.TypeSpacedRepetition {
			attempts, err := t.deps.Attempts.Recent(ctx, t.deps.Profile.LearnerID, 0)
			if err != nil {
				return testReadyMsg{Err: err}
			}
			queue := review.BuildQueue(attempts, review.DefaultQueueCap)
			if len(queue) == 0 {
				return testReadyMsg{Err: errors.New("no questions due for review")}
			}
			test = t.deps.Generator.Review(queue)
		} else {
			test = t.deps.Generator.Generate(t.deps.Config, testgen.DefaultBuckets())
		}

		if len(test.Questions) == 0 {
			return testReadyMsg{Err: errors.New("question bank produced an empty test")}
		}
		return testReadyMsg{Test: test}
	}
}

func (t *TestScreen) handleTestReady(msg testReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		t.errMsg = msg.Err.Error()
		return t, nil
	}

	t.session = sess.New(
		uuid.New().String(),
		t.deps.Profile.LearnerID,
		t.deps.SessionType,
		t.deps.Config,
		msg.Test,
		time.Now(),
	)
	t.choice = newChoice(t.session)

	_ = t.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:       t.session.ID,
		LearnerID:       t.session.LearnerID,
		Action:          "start",
		SessionType:     t.session.Type,
		QuestionsServed: len(t.session.Questions),
		Config:          configMap(t.deps.Config),
	})
	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if t.errMsg != "" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if t.session == nil || t.finishing {
		return t, nil
	}

	if t.showQuitConfirm {
		switch key {
		case "y", "Y":
			t.abandon()
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			t.showQuitConfirm = false
		}
		return t, nil
	}

	// An answer is locked; the dwell timer owns the advance.
	if t.session.Selected != -1 {
		return t, nil
	}

	switch key {
	case "esc":
		t.showQuitConfirm = true
		return t, nil
	case "enter":
		return t.lockAnswer(t.choice.Selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(t.session.Question().Options) {
			t.choice.Selected = idx
			return t.lockAnswer(idx)
		}
		return t, nil
	}

	var cmd tea.Cmd
	t.choice, cmd = t.choice.Update(msg)
	return t, cmd
}

// lockAnswer commits an option, records the answer event and schedules the
// feedback timers.
func (t *TestScreen) lockAnswer(option int) (screen.Screen, tea.Cmd) {
	msgs := t.session.SelectAnswer(option)
	if t.session.Selected == -1 {
		return t, nil
	}

	t.choice.Submitted = true
	t.choice.ChosenIndex = option

	q := t.session.Question()
	_ = t.deps.Events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:     t.session.ID,
		QuestionID:    q.ID,
		Topic:         string(q.Topic),
		Position:      t.session.Current,
		Selected:      option,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       option == q.CorrectAnswer,
	})

	t.feedback = nil
	cmds := make([]tea.Cmd, 0, len(msgs)+1)
	for _, m := range msgs {
		if m.Delay == 0 {
			t.feedback = append(t.feedback, m.Text)
			continue
		}
		text := m.Text
		cmds = append(cmds, tea.Tick(m.Delay, func(time.Time) tea.Msg {
			return delayedFeedbackMsg{Text: text}
		}))
	}

	t.feedbackSeq++
	seq := t.feedbackSeq
	cmds = append(cmds, tea.Tick(sess.MessageDwell, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{Seq: seq}
	}))
	return t, tea.Batch(cmds...)
}

func (t *TestScreen) handleFeedbackExpired(msg feedbackExpiredMsg) (screen.Screen, tea.Cmd) {
	if t.session == nil || msg.Seq != t.feedbackSeq {
		return t, nil
	}

	msgs, done := t.session.Advance()
	t.feedback = nil
	if !done {
		t.choice = newChoice(t.session)
		return t, nil
	}

	for _, m := range msgs {
		t.feedback = append(t.feedback, m.Text)
	}
	t.finishing = true
	return t, t.finalize()
}

// finalize persists the attempt, the session end event and, for normal
// sessions, the next review schedule.
func (t *TestScreen) finalize() tea.Cmd {
	s := t.session
	return func() tea.Msg {
		ctx := context.Background()

		att, err := s.Finalize(time.Now())
		if err != nil {
			return attemptSavedMsg{Err: err}
		}

		_ = t.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.ID,
			LearnerID:       s.LearnerID,
			Action:          "end",
			SessionType:     s.Type,
			QuestionsServed: len(att.Questions),
			Score:           att.Score,
			DurationSecs:    att.TimeSpent,
			Config:          configMap(att.Config),
		})

		rec := attemptRecord(att)
		if err := t.deps.Attempts.Add(ctx, rec); err != nil {
			return attemptSavedMsg{Err: err}
		}

		if s.Type == sess.TypeNormal && s.Policy.ReviewInterval > 0 {
			profile := t.deps.Profile
			_ = t.deps.Snapshots.Save(ctx, &store.Snapshot{
				Timestamp: time.Now(),
				Data: store.SnapshotData{
					Version: 1,
					Profile: &profile,
					Review:  review.NextSchedule(s.Policy.ReviewInterval, s.Config.ReviewScheduling, time.Now()),
				},
			})
		}

		return attemptSavedMsg{Record: rec}
	}
}

func (t *TestScreen) handleAttemptSaved(msg attemptSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		t.errMsg = msg.Err.Error()
		return t, nil
	}
	rec := msg.Record
	execLog := t.session.Results
	interval := t.session.Policy.ReviewInterval
	return t, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(rec, execLog, interval),
		}
	}
}

// abandon records an end event for a session quit mid-way. Nothing else is
// persisted for abandoned sessions.
func (t *TestScreen) abandon() {
	s := t.session
	_ = t.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:       s.ID,
		LearnerID:       s.LearnerID,
		Action:          "abandon",
		SessionType:     s.Type,
		QuestionsServed: s.Current,
		Score:           s.Score(),
		DurationSecs:    s.Elapsed,
	})
}

func newChoice(s *sess.Session) components.MultiChoice {
	q := s.Question()
	return components.NewMultiChoice(q.Prompt, q.Options, q.CorrectAnswer)
}

func configMap(cfg strategy.Config) map[string]string {
	return map[string]string{
		"questionSelection": cfg.QuestionSelection,
		"reviewScheduling":  cfg.ReviewScheduling,
		"rewardSystem":      cfg.RewardSystem,
		"knowledgeTracing":  cfg.KnowledgeTracing,
	}
}

func attemptRecord(att *sess.Attempt) *store.AttemptRecord {
	questions := make([]store.AttemptQuestion, len(att.Questions))
	for i, q := range att.Questions {
		questions[i] = store.AttemptQuestion{
			ID:            q.ID,
			Topic:         string(q.Topic),
			Title:         q.Title,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return &store.AttemptRecord{
		SessionID:      att.SessionID,
		LearnerID:      att.LearnerID,
		SessionType:    att.Type,
		Score:          att.Score,
		Total:          len(att.Questions),
		TimeSpentSecs:  att.TimeSpent,
		Config:         configMap(att.Config),
		ExecutionTimes: att.ExecutionTimes,
		Questions:      questions,
		Answers:        att.Answers,
		CompletedAt:    att.CompletedAt,
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
