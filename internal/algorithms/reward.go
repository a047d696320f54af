package algorithms

import (
	"math/rand/v2"
	"time"
)

// VariableRatioResult is the payload of the variable-ratio reward adapter.
type VariableRatioResult struct {
	// ReinforcementHistory marks which simulated trials paid out.
	ReinforcementHistory []bool

	// ShouldReward is the verdict for the current session: whether the
	// learner's next correct answer earns a reward message.
	ShouldReward bool
}

// VariableRatio simulates a variable-ratio reinforcement schedule over the
// given number of trials. Each trial draws a ratio from ratios; the trial
// pays out when the running response count reaches it.
func VariableRatio(trials int, ratios []int, rng *rand.Rand) ExecutionResult {
	start := time.Now()

	history := make([]bool, 0, trials)
	if len(ratios) > 0 {
		target := ratios[rng.IntN(len(ratios))]
		responses := 0
		for i := 0; i < trials; i++ {
			responses++
			if responses >= target {
				history = append(history, true)
				responses = 0
				target = ratios[rng.IntN(len(ratios))]
			} else {
				history = append(history, false)
			}
		}
	} else {
		history = make([]bool, trials)
	}

	should := len(history) > 0 && history[len(history)-1]

	return ExecutionResult{
		Family:        FamilyReward,
		AlgorithmName: "VariableRatio",
		Result: &VariableRatioResult{
			ReinforcementHistory: history,
			ShouldReward:         should,
		},
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(n)", Space: "O(n)"},
	}
}

// FenwickTreeResult is the payload of the Fenwick tree reward adapter.
type FenwickTreeResult struct {
	// TotalReward is the range sum over [lo, hi] of the input values.
	TotalReward int

	// PrefixSums[i] is the sum of values[0..i].
	PrefixSums []int
}

// FenwickTree builds a binary indexed tree over values and answers one
// inclusive range-sum query [lo, hi], along with all prefix sums.
func FenwickTree(values []int, lo, hi int) ExecutionResult {
	start := time.Now()

	n := len(values)
	tree := make([]int, n+1)
	add := func(i, delta int) {
		for ; i <= n; i += i & (-i) {
			tree[i] += delta
		}
	}
	sum := func(i int) int {
		s := 0
		for ; i > 0; i -= i & (-i) {
			s += tree[i]
		}
		return s
	}
	for i, v := range values {
		add(i+1, v)
	}

	prefix := make([]int, n)
	for i := range prefix {
		prefix[i] = sum(i + 1)
	}

	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	total := 0
	if lo <= hi && n > 0 {
		total = sum(hi + 1) - sum(lo)
	}

	return ExecutionResult{
		Family:        FamilyReward,
		AlgorithmName: "FenwickTree",
		Result: &FenwickTreeResult{
			TotalReward: total,
			PrefixSums:  prefix,
		},
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(n log n)", Space: "O(n)"},
	}
}
