package test

import (
	"time"

	"github.com/algodrill/algodrill/internal/store"
	"github.com/algodrill/algodrill/internal/testgen"
)

// testReadyMsg is sent when the generated test is ready to run.
type testReadyMsg struct {
	Test testgen.GeneratedTest
	Err  error
}

// timerTickMsg is sent every second to update the elapsed timer.
type timerTickMsg time.Time

// delayedFeedbackMsg delivers a feedback line scheduled with a delay.
// It is never cancelled: a late insight still lands after an advance.
type delayedFeedbackMsg struct {
	Text string
}

// feedbackExpiredMsg ends the feedback dwell for one locked answer. Seq
// guards against stale timers after the question has already advanced.
type feedbackExpiredMsg struct {
	Seq int
}

// attemptSavedMsg reports the finalize-and-persist step.
type attemptSavedMsg struct {
	Record *store.AttemptRecord
	Err    error
}
