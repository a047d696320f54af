package strategy

import (
	"math/rand/v2"
	"testing"

	"github.com/algodrill/algodrill/internal/algorithms"
	"github.com/algodrill/algodrill/internal/question"
)

func testDispatcher() *Dispatcher {
	return NewDispatcher(rand.New(rand.NewPCG(7, 11)))
}

func samplePool(n int) []question.Question {
	diffs := []question.Difficulty{
		question.DifficultyEasy,
		question.DifficultyMedium,
		question.DifficultyHard,
	}
	pool := make([]question.Question, n)
	for i := range pool {
		pool[i] = question.Question{
			ID:         string(rune('a' + i)),
			Topic:      question.TopicArrays,
			Difficulty: diffs[i%len(diffs)],
			Options:    []string{"x", "y"},
		}
	}
	return pool
}

func TestSelectQuestionsQLearningRanksByQValue(t *testing.T) {
	pool := samplePool(8)
	indices, res := testDispatcher().SelectQuestions("QLearning", pool, 5)

	if res.AlgorithmName != "QLearning" || res.Family != algorithms.FamilySelection {
		t.Errorf("bad execution labels: %s/%s", res.Family, res.AlgorithmName)
	}
	if len(indices) != 5 {
		t.Fatalf("got %d indices, want 5", len(indices))
	}
	seen := map[int]bool{}
	for _, idx := range indices {
		if idx < 0 || idx >= len(pool) {
			t.Fatalf("index %d out of pool range", idx)
		}
		if seen[idx] {
			t.Fatalf("duplicate index %d", idx)
		}
		seen[idx] = true
	}

	payload := res.Result.(*algorithms.QLearningResult)
	for i := 1; i < len(indices); i++ {
		if payload.QValues[indices[i-1]] < payload.QValues[indices[i]] {
			t.Errorf("indices not ranked by q-value: %v", indices)
		}
	}
}

func TestSelectQuestionsKnapsackStaysInBudget(t *testing.T) {
	pool := samplePool(9)
	indices, res := testDispatcher().SelectQuestions("Knapsack", pool, 5)

	if res.AlgorithmName != "Knapsack" {
		t.Errorf("AlgorithmName = %s, want Knapsack", res.AlgorithmName)
	}
	weight := 0
	for _, idx := range indices {
		switch pool[idx].Difficulty {
		case question.DifficultyEasy:
			weight++
		case question.DifficultyMedium:
			weight += 2
		default:
			weight += 3
		}
	}
	if weight > 8 {
		t.Errorf("selected weight %d exceeds capacity 8", weight)
	}
}

func TestSelectQuestionsUnknownNameFallsBack(t *testing.T) {
	_, res := testDispatcher().SelectQuestions("ThompsonSampling", samplePool(6), 5)
	if res.AlgorithmName != "QLearning" {
		t.Errorf("unknown selection strategy must fall back to QLearning, got %s", res.AlgorithmName)
	}
}

func TestReviewIntervalAlwaysPositive(t *testing.T) {
	for _, name := range []string{"SM2", "MinHeap", "Leitner", ""} {
		days, res := testDispatcher().ReviewInterval(name)
		if days < 1 {
			t.Errorf("%q: interval %d, want >= 1", name, days)
		}
		if res.Family != algorithms.FamilyScheduling {
			t.Errorf("%q: family %s, want scheduling", name, res.Family)
		}
	}
}

func TestReviewIntervalMinHeapTakesSoonest(t *testing.T) {
	days, res := testDispatcher().ReviewInterval("MinHeap")
	if res.AlgorithmName != "MinHeap" {
		t.Fatalf("AlgorithmName = %s, want MinHeap", res.AlgorithmName)
	}
	if days != 1 {
		t.Errorf("interval = %d, want 1 (smallest priority)", days)
	}
}

func TestRewardPolicyVariants(t *testing.T) {
	d := testDispatcher()

	policy, res := d.RewardPolicy("VariableRatio")
	vr, ok := policy.(VariableRatioPolicy)
	if !ok {
		t.Fatalf("unexpected policy type %T", policy)
	}
	if len(vr.Schedule) != 10 {
		t.Errorf("schedule length = %d, want 10", len(vr.Schedule))
	}
	if res.Family != algorithms.FamilyReward {
		t.Errorf("family = %s, want reward", res.Family)
	}

	policy, res = d.RewardPolicy("FenwickTree")
	ft, ok := policy.(FenwickTreePolicy)
	if !ok {
		t.Fatalf("unexpected policy type %T", policy)
	}
	if ft.TotalReward != 15 {
		t.Errorf("TotalReward = %d, want 15", ft.TotalReward)
	}
	if res.AlgorithmName != "FenwickTree" {
		t.Errorf("AlgorithmName = %s, want FenwickTree", res.AlgorithmName)
	}
}

func TestKnowledgeStateVariants(t *testing.T) {
	d := testDispatcher()

	state, res := d.KnowledgeState("DKT")
	dkt, ok := state.(DKTState)
	if !ok {
		t.Fatalf("unexpected state type %T", state)
	}
	if len(dkt.Predictions) != 3 {
		t.Errorf("predictions length = %d, want 3", len(dkt.Predictions))
	}
	if res.AlgorithmName != "DKT" {
		t.Errorf("AlgorithmName = %s, want DKT", res.AlgorithmName)
	}

	state, res = d.KnowledgeState("DP")
	dp, ok := state.(DPState)
	if !ok {
		t.Fatalf("unexpected state type %T", state)
	}
	if dp.MaxValue != 29 {
		t.Errorf("MaxValue = %d, want 29", dp.MaxValue)
	}
	if res.AlgorithmName != "DP" {
		t.Errorf("AlgorithmName = %s, want DP", res.AlgorithmName)
	}
}

func TestUnknownRewardAndTracingFallBack(t *testing.T) {
	d := testDispatcher()
	if _, res := d.RewardPolicy("TokenEconomy"); res.AlgorithmName != "VariableRatio" {
		t.Errorf("reward fallback = %s, want VariableRatio", res.AlgorithmName)
	}
	if _, res := d.KnowledgeState("BKT"); res.AlgorithmName != "DKT" {
		t.Errorf("tracing fallback = %s, want DKT", res.AlgorithmName)
	}
}
