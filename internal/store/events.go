package store

import (
	"context"
	"fmt"

	"github.com/algodrill/algodrill/ent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetAction(data.Action).
		SetSessionType(data.SessionType).
		SetQuestionsServed(data.QuestionsServed).
		SetScore(data.Score).
		SetDurationSecs(data.DurationSecs)

	if len(data.Config) > 0 {
		builder = builder.SetConfig(data.Config)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetTopic(data.Topic).
		SetPosition(data.Position).
		SetSelected(data.Selected).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
