// Package session runs one assessment attempt question by question and
// finalizes it into a persistable attempt record.
package session

import (
	"fmt"
	"time"

	"github.com/algodrill/algodrill/internal/algorithms"
	"github.com/algodrill/algodrill/internal/question"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/algodrill/algodrill/internal/testgen"
)

// Phase tracks where a session is in its lifecycle.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseActive
	PhaseCompleted
)

// FeedbackTag marks the verdict on the currently selected answer.
type FeedbackTag int

const (
	FeedbackNone FeedbackTag = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Session types.
const (
	TypeNormal           = "normal"
	TypeSpacedRepetition = "spaced_repetition"
)

// MessageDwell is how long a feedback message stays on screen before the
// UI clears it.
const MessageDwell = 3 * time.Second

// insightDelay staggers model-insight messages behind the immediate verdict.
const insightDelay = time.Second

// Message is a feedback line for the UI. Delay > 0 means the UI surfaces
// it that long after the triggering event.
type Message struct {
	Text  string
	Delay time.Duration
}

// Session is the live state of one attempt. It is driven from a single
// goroutine; the UI owns all timers and calls back into it.
type Session struct {
	ID        string
	LearnerID string
	Type      string
	Config    strategy.Config

	Questions []question.Question
	Policy    testgen.SessionPolicy
	Results   []algorithms.ExecutionResult

	StartTime time.Time
	Elapsed   int
	Phase     Phase

	Current  int
	Answers  []int
	Selected int
	Feedback FeedbackTag

	finalized bool
}

// New starts a session over a generated test.
func New(id, learnerID, sessionType string, cfg strategy.Config, test testgen.GeneratedTest, now time.Time) *Session {
	return &Session{
		ID:        id,
		LearnerID: learnerID,
		Type:      sessionType,
		Config:    cfg,
		Questions: test.Questions,
		Policy:    test.Policy,
		Results:   test.Results,
		StartTime: now,
		Phase:     PhaseActive,
		Answers:   make([]int, 0, len(test.Questions)),
		Selected:  -1,
	}
}

// Tick advances the elapsed-seconds counter. The UI calls it once per
// second while the session is active.
func (s *Session) Tick() {
	if s.Phase == PhaseActive {
		s.Elapsed++
	}
}

// Question returns the current question.
func (s *Session) Question() question.Question {
	return s.Questions[s.Current]
}

// SelectAnswer locks in an option for the current question and returns the
// feedback messages it triggers. Repeat calls while an answer is already
// locked are ignored.
func (s *Session) SelectAnswer(option int) []Message {
	if s.Phase != PhaseActive || s.Selected != -1 {
		return nil
	}
	q := s.Questions[s.Current]
	if option < 0 || option >= len(q.Options) {
		return nil
	}

	s.Selected = option
	correct := option == q.CorrectAnswer
	if correct {
		s.Feedback = FeedbackCorrect
	} else {
		s.Feedback = FeedbackIncorrect
	}

	var msgs []Message
	if correct {
		msgs = append(msgs, Message{Text: "Correct!"})
	} else {
		msgs = append(msgs, Message{Text: "Not quite. " + q.Explanation})
	}
	msgs = append(msgs, s.rewardMessages(correct)...)
	msgs = append(msgs, s.insightMessages(correct)...)
	return msgs
}

func (s *Session) rewardMessages(correct bool) []Message {
	switch p := s.Policy.Reward.(type) {
	case strategy.VariableRatioPolicy:
		if p.ShouldReward && correct {
			return []Message{{Text: "Streak bonus earned! The reinforcement schedule paid out."}}
		}
	case strategy.FenwickTreePolicy:
		if correct {
			return []Message{{Text: fmt.Sprintf("Reward bank: %d points accumulated this session.", p.TotalReward)}}
		}
	}
	return nil
}

func (s *Session) insightMessages(correct bool) []Message {
	var msgs []Message
	switch k := s.Policy.Knowledge.(type) {
	case strategy.DKTState:
		// Questions past the prediction horizon get the neutral prior.
		pred := 0.5
		if s.Current < len(k.Predictions) {
			pred = k.Predictions[s.Current]
		}
		msgs = append(msgs, Message{
			Text:  fmt.Sprintf("Model predicted %.0f%% chance you'd get this right.", pred*100),
			Delay: insightDelay,
		})
		if pred > 0.7 && !correct {
			msgs = append(msgs, Message{
				Text:  "The model overestimated you here. Worth revisiting this topic.",
				Delay: insightDelay,
			})
		}
		if pred < 0.3 && correct {
			msgs = append(msgs, Message{
				Text:  "You beat the model's expectations. Nice.",
				Delay: insightDelay,
			})
		}
	case strategy.DPState:
		msgs = append(msgs, Message{
			Text:  fmt.Sprintf("Optimal mastery path value: %d.", k.MaxValue),
			Delay: insightDelay,
		})
	}
	return msgs
}

// Advance moves to the next question, or completes the session on the last
// one. It reports whether the session just completed, along with any final
// messages. Advancing with no answer locked is a no-op.
func (s *Session) Advance() ([]Message, bool) {
	if s.Phase != PhaseActive || s.Selected == -1 {
		return nil, false
	}
	s.Answers = append(s.Answers, s.Selected)

	if s.Current == len(s.Questions)-1 {
		s.Phase = PhaseCompleted
		var msgs []Message
		if s.Policy.ReviewInterval > 0 {
			msgs = append(msgs, Message{
				Text: fmt.Sprintf("Next review scheduled in %d day(s) (%s algorithm).",
					s.Policy.ReviewInterval, s.Config.ReviewScheduling),
			})
		}
		return msgs, true
	}

	s.Current++
	s.Selected = -1
	s.Feedback = FeedbackNone
	return nil, false
}

// Score counts correctly answered questions.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.Questions {
		if i < len(s.Answers) && s.Answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Attempt is the finalized record of one session.
type Attempt struct {
	SessionID string
	LearnerID string
	Type      string

	Questions []question.Question
	Answers   []int
	Score     int
	TimeSpent int

	Config strategy.Config

	// ExecutionTimes maps algorithm name to its execution time in
	// milliseconds. Repeat runs of the same algorithm keep the last.
	ExecutionTimes map[string]float64

	CompletedAt time.Time
}

// Finalize converts a completed session into an attempt record. It can
// succeed at most once.
func (s *Session) Finalize(completedAt time.Time) (*Attempt, error) {
	if s.Phase != PhaseCompleted {
		return nil, fmt.Errorf("finalize session %s: not completed", s.ID)
	}
	if s.finalized {
		return nil, fmt.Errorf("finalize session %s: already finalized", s.ID)
	}
	s.finalized = true

	// The elapsed ticker is display-only; time spent comes from timestamps.
	timeSpent := int(completedAt.Sub(s.StartTime).Seconds())
	if timeSpent < 0 {
		timeSpent = 0
	}

	times := make(map[string]float64, len(s.Results))
	for _, res := range s.Results {
		times[res.AlgorithmName] = res.ExecutionTimeMs
	}

	answers := make([]int, len(s.Answers))
	copy(answers, s.Answers)
	questions := make([]question.Question, len(s.Questions))
	copy(questions, s.Questions)

	return &Attempt{
		SessionID:      s.ID,
		LearnerID:      s.LearnerID,
		Type:           s.Type,
		Questions:      questions,
		Answers:        answers,
		Score:          s.Score(),
		TimeSpent:      timeSpent,
		Config:         s.Config,
		ExecutionTimes: times,
		CompletedAt:    completedAt,
	}, nil
}
