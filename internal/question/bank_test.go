package question

import "testing"

func TestBankLoads(t *testing.T) {
	qs := All()
	if len(qs) == 0 {
		t.Fatal("expected non-empty question bank")
	}

	for _, q := range qs {
		if len(q.Options) == 0 {
			t.Errorf("question %s has no options", q.ID)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %s: correctAnswer %d out of range", q.ID, q.CorrectAnswer)
		}
	}
}

func TestByTopic(t *testing.T) {
	arrays := ByTopic(TopicArrays)
	lists := ByTopic(TopicLinkedLists)

	if len(arrays) < 3 {
		t.Errorf("expected at least 3 array questions, got %d", len(arrays))
	}
	if len(lists) < 2 {
		t.Errorf("expected at least 2 linked list questions, got %d", len(lists))
	}

	for _, q := range arrays {
		if q.Topic != TopicArrays {
			t.Errorf("question %s leaked into arrays filter", q.ID)
		}
	}

	if len(arrays)+len(lists) != len(All()) {
		t.Errorf("topics do not partition the bank: %d + %d != %d",
			len(arrays), len(lists), len(All()))
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Title = "mutated"

	if All()[0].Title == "mutated" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestTopicLabel(t *testing.T) {
	if got := TopicArrays.Label(); got != "Arrays" {
		t.Errorf("Label() = %q, want Arrays", got)
	}
	if got := TopicLinkedLists.Label(); got != "Linked Lists" {
		t.Errorf("Label() = %q, want Linked Lists", got)
	}
}
