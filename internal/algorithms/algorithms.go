// Package algorithms implements the toy strategy computations behind each
// algorithm family. Each adapter is a pure function invoked once per session;
// it returns a typed payload wrapped in an ExecutionResult carrying timing
// and declared complexity labels for the performance panel.
package algorithms

import "time"

// Family names one of the four strategy families.
type Family string

const (
	FamilySelection        Family = "questionSelection"
	FamilyScheduling       Family = "reviewScheduling"
	FamilyReward           Family = "rewardSystem"
	FamilyKnowledgeTracing Family = "knowledgeTracing"
)

// Complexity holds the declared time/space complexity labels for an adapter.
type Complexity struct {
	Time  string
	Space string
}

// ExecutionResult records a single adapter invocation.
type ExecutionResult struct {
	Family        Family
	AlgorithmName string

	// Result is the family-specific payload (e.g. *SM2Result). The
	// dispatcher type-asserts; nothing here inspects it.
	Result any

	// ExecutionTimeMs is the wall-clock time the adapter took, in
	// milliseconds. Always >= 0.
	ExecutionTimeMs float64

	Complexity Complexity

	// Topic is a human-readable label assigned by the test generator
	// ("Arrays", "Review Scheduling", ...). Empty until tagged.
	Topic string
}

// elapsedMs converts a start time into fractional milliseconds.
func elapsedMs(start time.Time) float64 {
	ms := float64(time.Since(start).Nanoseconds()) / 1e6
	if ms < 0 {
		return 0
	}
	return ms
}
