// Package testgen assembles assessment sessions: it runs one algorithm per
// family through the dispatcher, fills topic buckets from the question bank
// and packages the resulting per-session policy.
package testgen

import (
	"math/rand/v2"

	"github.com/algodrill/algodrill/internal/algorithms"
	"github.com/algodrill/algodrill/internal/question"
	"github.com/algodrill/algodrill/internal/strategy"
)

// TargetLength is the number of questions in a generated test.
const TargetLength = 5

// Bucket reserves a per-topic share of the generated test.
type Bucket struct {
	Topic question.Topic
	Label string
	Quota int
}

// DefaultBuckets is the stock topic split. Quotas sum to TargetLength.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Topic: question.TopicArrays, Label: "Arrays", Quota: 3},
		{Topic: question.TopicLinkedLists, Label: "Linked Lists", Quota: 2},
	}
}

// SessionPolicy carries the per-session verdicts the live session consumes.
// The zero value (interval 0, nil policies) means "no adaptive behavior",
// which is what review sessions get.
type SessionPolicy struct {
	ReviewInterval int
	Reward         strategy.RewardPolicy
	Knowledge      strategy.KnowledgeState
}

// GeneratedTest is a ready-to-run assessment.
type GeneratedTest struct {
	Questions []question.Question
	Policy    SessionPolicy

	// Results log one adapter execution per family, in family order,
	// tagged with a display topic. Empty for review sessions.
	Results []algorithms.ExecutionResult
}

// Generator builds tests against a strategy dispatcher.
type Generator struct {
	dispatcher *strategy.Dispatcher
	rng        *rand.Rand
}

// NewGenerator returns a Generator using the given dispatcher and
// randomness source for shortfall fills.
func NewGenerator(d *strategy.Dispatcher, rng *rand.Rand) *Generator {
	return &Generator{dispatcher: d, rng: rng}
}

// Generate builds a fresh test under cfg using the given buckets.
// Each bucket is filled to its quota even when the selection algorithm
// returns too few, too many or out-of-range indices.
func (g *Generator) Generate(cfg strategy.Config, buckets []Bucket) GeneratedTest {
	var test GeneratedTest

	for _, b := range buckets {
		pool := question.ByTopic(b.Topic)
		indices, res := g.dispatcher.SelectQuestions(cfg.QuestionSelection, pool, b.Quota)
		res.Topic = b.Label
		test.Results = append(test.Results, res)
		test.Questions = append(test.Questions, g.fill(pool, indices, b.Quota)...)
	}
	if len(test.Questions) > TargetLength {
		test.Questions = test.Questions[:TargetLength]
	}

	days, res := g.dispatcher.ReviewInterval(cfg.ReviewScheduling)
	res.Topic = "Review Scheduling"
	test.Results = append(test.Results, res)
	test.Policy.ReviewInterval = days

	reward, res := g.dispatcher.RewardPolicy(cfg.RewardSystem)
	res.Topic = "Reward System"
	test.Results = append(test.Results, res)
	test.Policy.Reward = reward

	knowledge, res := g.dispatcher.KnowledgeState(cfg.KnowledgeTracing)
	res.Topic = "Knowledge Tracing"
	test.Results = append(test.Results, res)
	test.Policy.Knowledge = knowledge

	return test
}

// Review wraps an existing question set without running any algorithm.
// The returned test has a zero policy and an empty execution log.
func (g *Generator) Review(questions []question.Question) GeneratedTest {
	qs := make([]question.Question, len(questions))
	copy(qs, questions)
	return GeneratedTest{Questions: qs}
}

// fill normalizes raw selection indices into exactly quota questions:
// out-of-range indices are dropped, duplicates collapse, and any shortfall
// is filled from a shuffle of the unselected remainder.
func (g *Generator) fill(pool []question.Question, indices []int, quota int) []question.Question {
	if quota > len(pool) {
		quota = len(pool)
	}

	taken := make(map[int]bool, quota)
	out := make([]question.Question, 0, quota)
	for _, idx := range indices {
		if idx < 0 || idx >= len(pool) || taken[idx] {
			continue
		}
		taken[idx] = true
		out = append(out, pool[idx])
		if len(out) == quota {
			return out
		}
	}

	rest := make([]int, 0, len(pool)-len(taken))
	for i := range pool {
		if !taken[i] {
			rest = append(rest, i)
		}
	}
	g.rng.Shuffle(len(rest), func(a, b int) {
		rest[a], rest[b] = rest[b], rest[a]
	})
	for _, idx := range rest {
		out = append(out, pool[idx])
		if len(out) == quota {
			break
		}
	}
	return out
}
