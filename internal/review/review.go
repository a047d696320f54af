// Package review decides when a spaced-repetition session is due and
// assembles its question queue from past mistakes.
package review

import (
	"time"

	"github.com/algodrill/algodrill/internal/question"
	"github.com/algodrill/algodrill/internal/store"
)

// DefaultQueueCap bounds the review queue length.
const DefaultQueueCap = 5

// Due reports whether a review session is due at now, given the latest
// snapshot. No snapshot or no schedule means nothing is due.
func Due(snap *store.Snapshot, now time.Time) bool {
	if snap == nil || snap.Data.Review == nil {
		return false
	}
	return !now.Before(snap.Data.Review.NextReviewDate)
}

// NextSchedule computes the schedule written at finalize time.
func NextSchedule(intervalDays int, strategy string, now time.Time) *store.ReviewScheduleData {
	if intervalDays < 1 {
		intervalDays = 1
	}
	return &store.ReviewScheduleData{
		NextReviewDate: now.AddDate(0, 0, intervalDays),
		IntervalDays:   intervalDays,
		Strategy:       strategy,
	}
}

// BuildQueue collects the questions the learner got wrong in the given
// attempts, newest attempt first, deduplicated, capped at limit. Questions
// no longer in the bank are skipped.
func BuildQueue(attempts []*store.AttemptRecord, limit int) []question.Question {
	if limit <= 0 {
		limit = DefaultQueueCap
	}

	byID := make(map[string]question.Question)
	for _, q := range question.All() {
		byID[q.ID] = q
	}

	seen := make(map[string]bool)
	var queue []question.Question
	for _, att := range attempts {
		for i, q := range att.Questions {
			if i >= len(att.Answers) {
				break
			}
			if att.Answers[i] == q.CorrectAnswer || seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			if bankQ, ok := byID[q.ID]; ok {
				queue = append(queue, bankQ)
				if len(queue) == limit {
					return queue
				}
			}
		}
	}
	return queue
}
