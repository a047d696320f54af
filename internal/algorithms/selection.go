package algorithms

import (
	"math/rand/v2"
	"time"
)

// QLearningResult is the payload of the Q-learning selection adapter.
type QLearningResult struct {
	// QValues are the action values for the evaluated state, after the
	// single update step. The caller ranks candidates by these.
	QValues []float64

	// ChosenAction is the epsilon-greedy action for the evaluated state.
	ChosenAction int

	// BestQValue and AvgQValue summarize the state's value estimates.
	BestQValue float64
	AvgQValue  float64
}

// QLearning performs one epsilon-greedy step over the given Q-table and
// returns the (updated) action values for state. The table is indexed
// [state][action]; actions map to question-pool indices.
func QLearning(qTable [][]float64, state int, epsilon float64, rng *rand.Rand) ExecutionResult {
	start := time.Now()

	res := &QLearningResult{ChosenAction: -1}
	if state >= 0 && state < len(qTable) && len(qTable[state]) > 0 {
		actions := qTable[state]

		// Epsilon-greedy action choice.
		if rng.Float64() < epsilon {
			res.ChosenAction = rng.IntN(len(actions))
		} else {
			res.ChosenAction = argmax(actions)
		}

		// One value-iteration step with a simulated reward.
		const alpha, gamma = 0.1, 0.9
		reward := rng.Float64()*2 - 1
		best := actions[argmax(actions)]
		actions[res.ChosenAction] += alpha * (reward + gamma*best - actions[res.ChosenAction])

		res.QValues = make([]float64, len(actions))
		copy(res.QValues, actions)

		sum := 0.0
		for _, v := range actions {
			sum += v
		}
		res.BestQValue = actions[argmax(actions)]
		res.AvgQValue = sum / float64(len(actions))
	}

	return ExecutionResult{
		Family:          FamilySelection,
		AlgorithmName:   "QLearning",
		Result:          res,
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(n)", Space: "O(s·n)"},
	}
}

// KnapsackResult is the payload of the 0/1 knapsack selection adapter.
type KnapsackResult struct {
	MaxValue      float64
	SelectedItems []int
}

// Knapsack solves 0/1 knapsack over the given weights and values with the
// given capacity, returning the selected item indices in ascending order.
func Knapsack(weights []int, values []float64, capacity int) ExecutionResult {
	start := time.Now()

	n := len(weights)
	if len(values) < n {
		n = len(values)
	}
	if capacity < 0 {
		capacity = 0
	}

	// dp[i][w] = best value using the first i items within weight w.
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, capacity+1)
	}
	for i := 1; i <= n; i++ {
		for w := 0; w <= capacity; w++ {
			dp[i][w] = dp[i-1][w]
			if weights[i-1] <= w {
				take := dp[i-1][w-weights[i-1]] + values[i-1]
				if take > dp[i][w] {
					dp[i][w] = take
				}
			}
		}
	}

	// Walk back to recover the chosen items.
	var selected []int
	w := capacity
	for i := n; i > 0; i-- {
		if dp[i][w] != dp[i-1][w] {
			selected = append(selected, i-1)
			w -= weights[i-1]
		}
	}
	for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
		selected[i], selected[j] = selected[j], selected[i]
	}

	return ExecutionResult{
		Family:          FamilySelection,
		AlgorithmName:   "Knapsack",
		Result:          &KnapsackResult{MaxValue: dp[n][capacity], SelectedItems: selected},
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(n·W)", Space: "O(n·W)"},
	}
}

func argmax(xs []float64) int {
	best := 0
	for i, v := range xs {
		if v > xs[best] {
			best = i
		}
	}
	return best
}
