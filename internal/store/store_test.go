package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Profile: &ProfileData{LearnerID: "l1", Name: "Ada"},
			Review: &ReviewScheduleData{
				NextReviewDate: now.AddDate(0, 0, 6),
				IntervalDays:   6,
				Strategy:       "SM2",
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Profile == nil || snap.Data.Profile.Name != "Ada" {
		t.Errorf("profile did not round-trip: %+v", snap.Data.Profile)
	}
	if snap.Data.Review == nil || snap.Data.Review.IntervalDays != 6 {
		t.Errorf("review schedule did not round-trip: %+v", snap.Data.Review)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventRepoAppends(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:   "s1",
		LearnerID:   "l1",
		Action:      "start",
		SessionType: "normal",
		Config:      map[string]string{"questionSelection": "QLearning"},
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:     "s1",
		QuestionID:    "arr-001",
		Topic:         "arrays",
		Position:      0,
		Selected:      2,
		CorrectAnswer: 2,
		Correct:       true,
	})
	if err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	ses, err := s.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query session events: %v", err)
	}
	ans, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answer events: %v", err)
	}
	if len(ses) != 1 || len(ans) != 1 {
		t.Fatalf("got %d session, %d answer events, want 1 each", len(ses), len(ans))
	}
	// Events share the global sequence, so the two must differ.
	if ses[0].Sequence == ans[0].Sequence {
		t.Error("events across tables must not share a sequence number")
	}
}

func TestAttemptRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Add(ctx, &AttemptRecord{
			SessionID:      "s" + string(rune('1'+i)),
			LearnerID:      "l1",
			SessionType:    "normal",
			Score:          i,
			Total:          5,
			TimeSpentSecs:  40 + i,
			Config:         map[string]string{"reviewScheduling": "SM2"},
			ExecutionTimes: map[string]float64{"SM2": 1.2},
			Questions: []AttemptQuestion{
				{ID: "arr-001", Topic: "arrays", Title: "t", CorrectAnswer: 0},
			},
			Answers:     []int{0},
			CompletedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("add attempt %d: %v", i, err)
		}
	}

	recs, err := repo.Recent(ctx, "l1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d attempts, want 2", len(recs))
	}
	if recs[0].Score != 2 || recs[1].Score != 1 {
		t.Errorf("attempts not newest first: scores %d, %d", recs[0].Score, recs[1].Score)
	}
	if recs[0].Questions[0].ID != "arr-001" {
		t.Errorf("questions did not round-trip: %+v", recs[0].Questions)
	}
	if recs[0].ExecutionTimes["SM2"] != 1.2 {
		t.Errorf("execution times did not round-trip: %+v", recs[0].ExecutionTimes)
	}

	none, err := repo.Recent(ctx, "other", 0)
	if err != nil {
		t.Fatalf("recent (other): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d attempts for unknown learner, want 0", len(none))
	}
}
