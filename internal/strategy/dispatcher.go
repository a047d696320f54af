package strategy

import (
	"math/rand/v2"
	"sort"

	"github.com/algodrill/algodrill/internal/algorithms"
	"github.com/algodrill/algodrill/internal/question"
)

// Per-session probe inputs for the non-selection families. The adapters
// model the learner abstractly; the session only consumes their verdicts.
var (
	heapPriorities   = []int{3, 1, 6, 5, 2, 4}
	ratioSchedule    = []int{2, 3, 4, 5}
	fenwickRewards   = []int{5, 3, 7, 2, 6}
	tracingInputs    = []float64{0.7, 0.5, 0.9}
	tracingWeights   = []float64{0.8, 0.6, 0.7}
	masteryGrid      = [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	knapsackCapacity = 8
)

// Dispatcher routes family calls to the configured algorithm. The zero
// value is not usable; construct with NewDispatcher.
type Dispatcher struct {
	rng *rand.Rand
}

// NewDispatcher builds a dispatcher around the given randomness source.
// Tests pass a seeded source for reproducible runs.
func NewDispatcher(rng *rand.Rand) *Dispatcher {
	return &Dispatcher{rng: rng}
}

// SelectQuestions ranks the pool with the named selection algorithm and
// returns preferred pool indices, highest priority first. The slice may be
// shorter or longer than count; the test generator normalizes it.
func (d *Dispatcher) SelectQuestions(name string, pool []question.Question, count int) ([]int, algorithms.ExecutionResult) {
	switch name {
	case "Knapsack":
		weights := make([]int, len(pool))
		values := make([]float64, len(pool))
		for i, q := range pool {
			switch q.Difficulty {
			case question.DifficultyEasy:
				weights[i], values[i] = 1, 5
			case question.DifficultyMedium:
				weights[i], values[i] = 2, 8
			default:
				weights[i], values[i] = 3, 12
			}
			values[i] *= 0.5 + d.rng.Float64()
		}
		res := algorithms.Knapsack(weights, values, knapsackCapacity)
		payload := res.Result.(*algorithms.KnapsackResult)
		return payload.SelectedItems, res
	default:
		qTable := make([][]float64, 3)
		for s := range qTable {
			qTable[s] = make([]float64, len(pool))
			for a := range qTable[s] {
				qTable[s][a] = d.rng.Float64()*2 - 1
			}
		}
		res := algorithms.QLearning(qTable, 0, 0.1, d.rng)
		payload := res.Result.(*algorithms.QLearningResult)

		indices := make([]int, len(payload.QValues))
		for i := range indices {
			indices[i] = i
		}
		sort.SliceStable(indices, func(a, b int) bool {
			return payload.QValues[indices[a]] > payload.QValues[indices[b]]
		})
		if count < len(indices) {
			indices = indices[:count]
		}
		return indices, res
	}
}

// ReviewInterval computes the next spaced-repetition interval in days.
// Always >= 1.
func (d *Dispatcher) ReviewInterval(name string) (int, algorithms.ExecutionResult) {
	var (
		res  algorithms.ExecutionResult
		days int
	)
	switch name {
	case "MinHeap":
		res = algorithms.MinHeap(heapPriorities)
		order := res.Result.(*algorithms.MinHeapResult).SchedulingOrder
		if len(order) > 0 {
			days = order[0]
		}
	default:
		res = algorithms.SM2(2.5, 1, 0)
		days = res.Result.(*algorithms.SM2Result).NewInterval
	}
	if days < 1 {
		days = 1
	}
	return days, res
}

// RewardPolicy computes the session's reward verdict.
func (d *Dispatcher) RewardPolicy(name string) (RewardPolicy, algorithms.ExecutionResult) {
	switch name {
	case "FenwickTree":
		res := algorithms.FenwickTree(fenwickRewards, 2, 4)
		payload := res.Result.(*algorithms.FenwickTreeResult)
		return FenwickTreePolicy{
			TotalReward: payload.TotalReward,
			PrefixSums:  payload.PrefixSums,
		}, res
	default:
		res := algorithms.VariableRatio(10, ratioSchedule, d.rng)
		payload := res.Result.(*algorithms.VariableRatioResult)
		return VariableRatioPolicy{
			Schedule:     payload.ReinforcementHistory,
			ShouldReward: payload.ShouldReward,
		}, res
	}
}

// KnowledgeState computes the session's mastery estimate.
func (d *Dispatcher) KnowledgeState(name string) (KnowledgeState, algorithms.ExecutionResult) {
	switch name {
	case "DP":
		res := algorithms.DP(masteryGrid)
		payload := res.Result.(*algorithms.DPResult)
		return DPState{MaxValue: payload.MaxValue, Path: payload.Path}, res
	default:
		res := algorithms.DKT(tracingInputs, tracingWeights)
		payload := res.Result.(*algorithms.DKTResult)
		return DKTState{
			Predictions:  payload.Predictions,
			HiddenStates: payload.HiddenStates,
		}, res
	}
}
