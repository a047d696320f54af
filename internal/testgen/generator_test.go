package testgen

import (
	"math/rand/v2"
	"testing"

	"github.com/algodrill/algodrill/internal/question"
	"github.com/algodrill/algodrill/internal/strategy"
)

func testGenerator() *Generator {
	rng := rand.New(rand.NewPCG(3, 9))
	return NewGenerator(strategy.NewDispatcher(rng), rng)
}

func TestGenerateFillsBuckets(t *testing.T) {
	test := testGenerator().Generate(strategy.DefaultConfig(), DefaultBuckets())

	if len(test.Questions) != TargetLength {
		t.Fatalf("got %d questions, want %d", len(test.Questions), TargetLength)
	}

	counts := map[question.Topic]int{}
	for _, q := range test.Questions {
		counts[q.Topic]++
	}
	if counts[question.TopicArrays] != 3 {
		t.Errorf("arrays count = %d, want 3", counts[question.TopicArrays])
	}
	if counts[question.TopicLinkedLists] != 2 {
		t.Errorf("linked lists count = %d, want 2", counts[question.TopicLinkedLists])
	}

	seen := map[string]bool{}
	for _, q := range test.Questions {
		if seen[q.ID] {
			t.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerateRunsOneAlgorithmPerFamily(t *testing.T) {
	test := testGenerator().Generate(strategy.DefaultConfig(), DefaultBuckets())

	// One selection run per bucket, then scheduling, reward, tracing.
	if len(test.Results) != len(DefaultBuckets())+3 {
		t.Fatalf("got %d executions, want %d", len(test.Results), len(DefaultBuckets())+3)
	}
	wantTopics := []string{"Arrays", "Linked Lists", "Review Scheduling", "Reward System", "Knowledge Tracing"}
	for i, want := range wantTopics {
		if test.Results[i].Topic != want {
			t.Errorf("result[%d].Topic = %q, want %q", i, test.Results[i].Topic, want)
		}
	}
}

func TestGeneratePolicyIsUsable(t *testing.T) {
	test := testGenerator().Generate(strategy.DefaultConfig(), DefaultBuckets())

	if test.Policy.ReviewInterval < 1 {
		t.Errorf("ReviewInterval = %d, want >= 1", test.Policy.ReviewInterval)
	}
	if test.Policy.Reward == nil {
		t.Error("Reward policy must be set for generated tests")
	}
	if test.Policy.Knowledge == nil {
		t.Error("Knowledge state must be set for generated tests")
	}
}

func TestGenerateUnknownStrategiesFallBack(t *testing.T) {
	cfg := strategy.Config{
		QuestionSelection: "Bandit",
		ReviewScheduling:  "Leitner",
		RewardSystem:      "TokenEconomy",
		KnowledgeTracing:  "BKT",
	}
	test := testGenerator().Generate(cfg, DefaultBuckets())

	if len(test.Questions) != TargetLength {
		t.Fatalf("fallback run produced %d questions, want %d", len(test.Questions), TargetLength)
	}
	wantNames := []string{"QLearning", "QLearning", "SM2", "VariableRatio", "DKT"}
	for i, want := range wantNames {
		if test.Results[i].AlgorithmName != want {
			t.Errorf("result[%d] ran %s, want fallback %s", i, test.Results[i].AlgorithmName, want)
		}
	}
}

func TestGenerateQuotaExceedsPool(t *testing.T) {
	buckets := []Bucket{{Topic: question.TopicLinkedLists, Label: "Linked Lists", Quota: 99}}
	test := testGenerator().Generate(strategy.DefaultConfig(), buckets)

	pool := question.ByTopic(question.TopicLinkedLists)
	want := len(pool)
	if want > TargetLength {
		want = TargetLength
	}
	if len(test.Questions) != want {
		t.Errorf("got %d questions, want %d", len(test.Questions), want)
	}
}

func TestReviewBypassesAlgorithms(t *testing.T) {
	qs := question.ByTopic(question.TopicArrays)[:2]
	test := testGenerator().Review(qs)

	if len(test.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(test.Questions))
	}
	if len(test.Results) != 0 {
		t.Errorf("review test must not log executions, got %d", len(test.Results))
	}
	if test.Policy.ReviewInterval != 0 || test.Policy.Reward != nil || test.Policy.Knowledge != nil {
		t.Errorf("review test must carry a zero policy: %+v", test.Policy)
	}
}
