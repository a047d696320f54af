package store

import (
	"context"
	"fmt"

	"github.com/algodrill/algodrill/ent"
	entschema "github.com/algodrill/algodrill/ent/schema"
	"github.com/algodrill/algodrill/ent/testattempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Add(ctx context.Context, rec *AttemptRecord) error {
	questions := make([]entschema.AttemptQuestion, len(rec.Questions))
	for i, q := range rec.Questions {
		questions[i] = entschema.AttemptQuestion{
			ID:            q.ID,
			Topic:         q.Topic,
			Title:         q.Title,
			CorrectAnswer: q.CorrectAnswer,
		}
	}

	_, err := r.client.TestAttempt.Create().
		SetSessionID(rec.SessionID).
		SetLearnerID(rec.LearnerID).
		SetSessionType(rec.SessionType).
		SetScore(rec.Score).
		SetTotal(rec.Total).
		SetTimeSpentSecs(rec.TimeSpentSecs).
		SetConfig(rec.Config).
		SetExecutionTimes(rec.ExecutionTimes).
		SetQuestions(questions).
		SetAnswers(rec.Answers).
		SetCompletedAt(rec.CompletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save test attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, learnerID string, limit int) ([]*AttemptRecord, error) {
	q := r.client.TestAttempt.Query().
		Where(testattempt.LearnerID(learnerID)).
		Order(ent.Desc(testattempt.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	recs := make([]*AttemptRecord, len(rows))
	for i, row := range rows {
		questions := make([]AttemptQuestion, len(row.Questions))
		for j, q := range row.Questions {
			questions[j] = AttemptQuestion{
				ID:            q.ID,
				Topic:         q.Topic,
				Title:         q.Title,
				CorrectAnswer: q.CorrectAnswer,
			}
		}
		recs[i] = &AttemptRecord{
			SessionID:      row.SessionID,
			LearnerID:      row.LearnerID,
			SessionType:    row.SessionType,
			Score:          row.Score,
			Total:          row.Total,
			TimeSpentSecs:  row.TimeSpentSecs,
			Config:         row.Config,
			ExecutionTimes: row.ExecutionTimes,
			Questions:      questions,
			Answers:        row.Answers,
			CompletedAt:    row.CompletedAt,
		}
	}
	return recs, nil
}
