package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algodrill/algodrill/internal/question"
	"github.com/algodrill/algodrill/internal/store"
)

func TestDue(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	assert.False(t, Due(nil, now), "no snapshot means nothing due")
	assert.False(t, Due(&store.Snapshot{}, now), "no schedule means nothing due")

	snap := &store.Snapshot{Data: store.SnapshotData{
		Review: &store.ReviewScheduleData{NextReviewDate: now.AddDate(0, 0, 1)},
	}}
	assert.False(t, Due(snap, now), "future date is not due")

	snap.Data.Review.NextReviewDate = now
	assert.True(t, Due(snap, now), "exact date is due")

	snap.Data.Review.NextReviewDate = now.AddDate(0, 0, -3)
	assert.True(t, Due(snap, now), "past date is due")
}

func TestNextSchedule(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	sched := NextSchedule(6, "SM2", now)
	assert.Equal(t, 6, sched.IntervalDays)
	assert.Equal(t, "SM2", sched.Strategy)
	assert.Equal(t, now.AddDate(0, 0, 6), sched.NextReviewDate)

	sched = NextSchedule(0, "MinHeap", now)
	assert.Equal(t, 1, sched.IntervalDays, "interval must be coerced to at least one day")
}

func attemptWith(completedAt time.Time, wrongIDs ...string) *store.AttemptRecord {
	byID := make(map[string]question.Question)
	for _, q := range question.All() {
		byID[q.ID] = q
	}

	att := &store.AttemptRecord{CompletedAt: completedAt}
	for _, id := range wrongIDs {
		q := byID[id]
		att.Questions = append(att.Questions, store.AttemptQuestion{
			ID:            q.ID,
			Topic:         string(q.Topic),
			Title:         q.Title,
			CorrectAnswer: q.CorrectAnswer,
		})
		// Pick any option that is not the right one.
		att.Answers = append(att.Answers, (q.CorrectAnswer+1)%len(q.Options))
	}
	return att
}

func TestBuildQueueCollectsWrongAnswers(t *testing.T) {
	now := time.Now()
	attempts := []*store.AttemptRecord{
		attemptWith(now, "arr-001", "ll-001"),
		attemptWith(now.Add(-time.Hour), "arr-002"),
	}

	queue := BuildQueue(attempts, 5)
	require.Len(t, queue, 3)
	assert.Equal(t, "arr-001", queue[0].ID)
	assert.Equal(t, "ll-001", queue[1].ID)
	assert.Equal(t, "arr-002", queue[2].ID)
}

func TestBuildQueueSkipsCorrectAnswers(t *testing.T) {
	att := attemptWith(time.Now(), "arr-001", "arr-002")
	att.Answers[0] = att.Questions[0].CorrectAnswer

	queue := BuildQueue([]*store.AttemptRecord{att}, 5)
	require.Len(t, queue, 1)
	assert.Equal(t, "arr-002", queue[0].ID)
}

func TestBuildQueueDeduplicatesAcrossAttempts(t *testing.T) {
	now := time.Now()
	attempts := []*store.AttemptRecord{
		attemptWith(now, "arr-001"),
		attemptWith(now.Add(-time.Hour), "arr-001", "ll-002"),
	}

	queue := BuildQueue(attempts, 5)
	require.Len(t, queue, 2)
	assert.Equal(t, "arr-001", queue[0].ID)
	assert.Equal(t, "ll-002", queue[1].ID)
}

func TestBuildQueueRespectsCap(t *testing.T) {
	att := attemptWith(time.Now(), "arr-001", "arr-002", "arr-003", "ll-001", "ll-002", "ll-003")
	queue := BuildQueue([]*store.AttemptRecord{att}, 2)
	assert.Len(t, queue, 2)
}

func TestBuildQueueSkipsUnknownQuestions(t *testing.T) {
	att := &store.AttemptRecord{
		Questions: []store.AttemptQuestion{{ID: "gone-001", CorrectAnswer: 0}},
		Answers:   []int{1},
	}
	queue := BuildQueue([]*store.AttemptRecord{att}, 5)
	assert.Empty(t, queue, "questions removed from the bank are skipped")
}
