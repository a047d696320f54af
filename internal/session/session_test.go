package session

import (
	"strings"
	"testing"
	"time"

	"github.com/algodrill/algodrill/internal/algorithms"
	"github.com/algodrill/algodrill/internal/question"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/algodrill/algodrill/internal/testgen"
)

func fixtureQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:            string(rune('a' + i)),
			Topic:         question.TopicArrays,
			Difficulty:    question.DifficultyEasy,
			Title:         "t",
			Prompt:        "p",
			Options:       []string{"right", "wrong", "also wrong"},
			CorrectAnswer: 0,
			Explanation:   "index zero wins",
		}
	}
	return qs
}

func newFixtureSession(policy testgen.SessionPolicy) *Session {
	test := testgen.GeneratedTest{
		Questions: fixtureQuestions(5),
		Policy:    policy,
	}
	return New("s1", "l1", TypeNormal, strategy.DefaultConfig(), test, time.Now())
}

func runThrough(s *Session, answers []int) {
	for _, a := range answers {
		s.SelectAnswer(a)
		s.Advance()
	}
}

func TestScoreCountsCorrectAnswers(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})
	runThrough(s, []int{0, 1, 0, 2, 0})

	if s.Phase != PhaseCompleted {
		t.Fatalf("phase = %d, want completed", s.Phase)
	}
	if got := s.Score(); got != 3 {
		t.Errorf("score = %d, want 3", got)
	}
}

func TestSelectAnswerIsIdempotent(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})

	if msgs := s.SelectAnswer(1); len(msgs) == 0 {
		t.Fatal("first selection must produce feedback")
	}
	if msgs := s.SelectAnswer(0); msgs != nil {
		t.Error("second selection on the same question must be ignored")
	}
	if s.Selected != 1 {
		t.Errorf("selection changed to %d after repeat select, want 1", s.Selected)
	}
	s.Advance()
	if s.Answers[0] != 1 {
		t.Errorf("recorded answer = %d, want the first selection 1", s.Answers[0])
	}
}

func TestAnswersGrowOnlyOnAdvance(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})

	for i := 0; i < 5; i++ {
		if len(s.Answers) != i {
			t.Fatalf("question %d: len(answers) = %d, want %d", i, len(s.Answers), i)
		}
		s.SelectAnswer(0)
		if len(s.Answers) != i {
			t.Fatalf("question %d: selecting must not record the answer yet", i)
		}
		s.Advance()
	}

	if s.Phase != PhaseCompleted {
		t.Fatalf("phase = %d, want completed", s.Phase)
	}
	if len(s.Answers) != len(s.Questions) {
		t.Errorf("len(answers) = %d at completion, want %d", len(s.Answers), len(s.Questions))
	}
}

func TestSelectAnswerRejectsOutOfRange(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})
	if msgs := s.SelectAnswer(7); msgs != nil {
		t.Error("out-of-range option must be ignored")
	}
	if s.Selected != -1 {
		t.Errorf("Selected = %d, want -1", s.Selected)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})
	if _, done := s.Advance(); done || s.Current != 0 {
		t.Error("advance without an answer must be a no-op")
	}
}

func TestAdvanceEmitsSchedulingMessageOnLastQuestion(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{ReviewInterval: 6})
	for i := 0; i < 4; i++ {
		s.SelectAnswer(0)
		if msgs, done := s.Advance(); done || len(msgs) != 0 {
			t.Fatalf("question %d: unexpected completion or messages", i)
		}
	}

	s.SelectAnswer(0)
	msgs, done := s.Advance()
	if !done {
		t.Fatal("last advance must complete the session")
	}
	if len(msgs) != 1 || !strings.Contains(msgs[0].Text, "6 day") {
		t.Errorf("want scheduling message naming 6 days, got %v", msgs)
	}
	if !strings.Contains(msgs[0].Text, "SM2") {
		t.Errorf("scheduling message must name the strategy, got %q", msgs[0].Text)
	}
}

func TestAdvanceNoSchedulingMessageWithZeroInterval(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})
	for i := 0; i < 4; i++ {
		s.SelectAnswer(0)
		s.Advance()
	}
	s.SelectAnswer(0)
	msgs, done := s.Advance()
	if !done || len(msgs) != 0 {
		t.Errorf("zero interval must emit no scheduling message, got %v", msgs)
	}
}

func TestVariableRatioRewardMessage(t *testing.T) {
	policy := testgen.SessionPolicy{
		Reward: strategy.VariableRatioPolicy{ShouldReward: true},
	}

	s := newFixtureSession(policy)
	msgs := s.SelectAnswer(0)
	if !containsText(msgs, "bonus") {
		t.Errorf("correct answer with ShouldReward must emit a bonus message, got %v", msgs)
	}

	s = newFixtureSession(policy)
	msgs = s.SelectAnswer(1)
	if containsText(msgs, "bonus") {
		t.Errorf("wrong answer must not emit a bonus message, got %v", msgs)
	}

	s = newFixtureSession(testgen.SessionPolicy{
		Reward: strategy.VariableRatioPolicy{ShouldReward: false},
	})
	if msgs = s.SelectAnswer(0); containsText(msgs, "bonus") {
		t.Errorf("ShouldReward=false must not emit a bonus message, got %v", msgs)
	}
}

func TestFenwickRewardMessageOnCorrectOnly(t *testing.T) {
	policy := testgen.SessionPolicy{
		Reward: strategy.FenwickTreePolicy{TotalReward: 15},
	}

	s := newFixtureSession(policy)
	if msgs := s.SelectAnswer(0); !containsText(msgs, "15 points") {
		t.Errorf("correct answer must report the reward total, got %v", msgs)
	}

	s = newFixtureSession(policy)
	if msgs := s.SelectAnswer(1); containsText(msgs, "points") {
		t.Errorf("wrong answer must not report the reward total, got %v", msgs)
	}
}

func TestDKTOverAndUnderconfidenceMessages(t *testing.T) {
	policy := testgen.SessionPolicy{
		Knowledge: strategy.DKTState{Predictions: []float64{0.9, 0.2}},
	}

	// Question 0: prediction 0.9, answered wrong.
	s := newFixtureSession(policy)
	msgs := s.SelectAnswer(1)
	if !containsText(msgs, "overestimated") {
		t.Errorf("high prediction + wrong answer must warn, got %v", msgs)
	}
	for _, m := range msgs {
		if strings.Contains(m.Text, "predicted") && m.Delay != time.Second {
			t.Errorf("insight message delay = %v, want 1s", m.Delay)
		}
	}

	// Question 1: prediction 0.2, answered right.
	s = newFixtureSession(policy)
	s.SelectAnswer(0)
	s.Advance()
	msgs = s.SelectAnswer(0)
	if !containsText(msgs, "beat the model") {
		t.Errorf("low prediction + correct answer must congratulate, got %v", msgs)
	}

	// Question 0 answered right: prediction message only.
	s = newFixtureSession(policy)
	msgs = s.SelectAnswer(0)
	if containsText(msgs, "overestimated") || containsText(msgs, "beat the model") {
		t.Errorf("confident correct answer needs no calibration note, got %v", msgs)
	}
	if !containsText(msgs, "90%") {
		t.Errorf("prediction message must always appear, got %v", msgs)
	}
}

func TestDKTNeutralPriorBeyondPredictions(t *testing.T) {
	policy := testgen.SessionPolicy{
		Knowledge: strategy.DKTState{Predictions: []float64{0.9, 0.2, 0.5}},
	}

	// Question 3 has no prediction; the neutral 0.5 prior applies, so a
	// wrong answer must not trigger the overconfidence warning.
	s := newFixtureSession(policy)
	for i := 0; i < 3; i++ {
		s.SelectAnswer(0)
		s.Advance()
	}
	msgs := s.SelectAnswer(1)
	if !containsText(msgs, "50%") {
		t.Errorf("missing prediction must fall back to 50%%, got %v", msgs)
	}
	if containsText(msgs, "overestimated") || containsText(msgs, "beat the model") {
		t.Errorf("neutral prior must emit no calibration note, got %v", msgs)
	}

	// Same prior when the model produced no predictions at all.
	s = newFixtureSession(testgen.SessionPolicy{Knowledge: strategy.DKTState{}})
	if msgs := s.SelectAnswer(0); !containsText(msgs, "50%") {
		t.Errorf("empty predictions must still emit the 50%% message, got %v", msgs)
	}
}

func TestDPInsightMessage(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{
		Knowledge: strategy.DPState{MaxValue: 29},
	})
	if msgs := s.SelectAnswer(1); !containsText(msgs, "29") {
		t.Errorf("DP insight must name the path value, got %v", msgs)
	}
}

func TestFinalizeProducesAttempt(t *testing.T) {
	test := testgen.GeneratedTest{
		Questions: fixtureQuestions(5),
		Policy:    testgen.SessionPolicy{ReviewInterval: 1},
		Results: []algorithms.ExecutionResult{
			{AlgorithmName: "QLearning", ExecutionTimeMs: 0.4},
			{AlgorithmName: "SM2", ExecutionTimeMs: 1.2},
			{AlgorithmName: "SM2", ExecutionTimeMs: 3.4},
		},
	}
	start := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	s := New("s1", "l1", TypeNormal, strategy.DefaultConfig(), test, start)
	runThrough(s, []int{0, 1, 0, 2, 0})

	completedAt := start.Add(42 * time.Second)
	att, err := s.Finalize(completedAt)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if att.Score != 3 || att.TimeSpent != 42 {
		t.Errorf("score/time = %d/%d, want 3/42", att.Score, att.TimeSpent)
	}
	if att.SessionID != "s1" || att.LearnerID != "l1" || att.Type != TypeNormal {
		t.Errorf("identity fields wrong: %+v", att)
	}
	if !att.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", att.CompletedAt, completedAt)
	}
	if att.ExecutionTimes["SM2"] != 3.4 {
		t.Errorf("repeat algorithm must keep the last timing, got %v", att.ExecutionTimes["SM2"])
	}
	if att.ExecutionTimes["QLearning"] != 0.4 {
		t.Errorf("QLearning timing = %v, want 0.4", att.ExecutionTimes["QLearning"])
	}
}

func TestFinalizeGuards(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})
	if _, err := s.Finalize(time.Now()); err == nil {
		t.Error("finalize before completion must fail")
	}

	runThrough(s, []int{0, 0, 0, 0, 0})
	if _, err := s.Finalize(time.Now()); err != nil {
		t.Fatalf("finalize after completion: %v", err)
	}
	if _, err := s.Finalize(time.Now()); err == nil {
		t.Error("second finalize must fail")
	}
}

func TestTickOnlyWhileActive(t *testing.T) {
	s := newFixtureSession(testgen.SessionPolicy{})
	s.Tick()
	s.Tick()
	runThrough(s, []int{0, 0, 0, 0, 0})
	s.Tick()

	if s.Elapsed != 2 {
		t.Errorf("Elapsed = %d, want 2 (no ticks after completion)", s.Elapsed)
	}
}

func containsText(msgs []Message, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m.Text, sub) {
			return true
		}
	}
	return false
}
