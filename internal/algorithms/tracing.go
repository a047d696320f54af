package algorithms

import (
	"math"
	"time"
)

// DKTResult is the payload of the deep-knowledge-tracing adapter.
type DKTResult struct {
	// Predictions[i] is the modelled probability of answering skill i
	// correctly, in (0, 1).
	Predictions []float64

	// HiddenStates are the recurrent activations, one per input.
	HiddenStates []float64
}

// DKT runs a single-unit recurrent forward pass over the per-skill inputs.
// weights pair with inputs positionally; a missing weight defaults to 0.5.
func DKT(inputs, weights []float64) ExecutionResult {
	start := time.Now()

	preds := make([]float64, len(inputs))
	hidden := make([]float64, len(inputs))
	h := 0.0
	for i, x := range inputs {
		w := 0.5
		if i < len(weights) {
			w = weights[i]
		}
		h = math.Tanh(x*w + h*0.3)
		hidden[i] = h
		preds[i] = sigmoid(h*2 + x - 0.5)
	}

	return ExecutionResult{
		Family:        FamilyKnowledgeTracing,
		AlgorithmName: "DKT",
		Result: &DKTResult{
			Predictions:  preds,
			HiddenStates: hidden,
		},
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(n)", Space: "O(n)"},
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// DPResult is the payload of the dynamic-programming tracing adapter.
type DPResult struct {
	// MaxValue is the maximum path sum from the grid's top-left to
	// bottom-right moving only right or down.
	MaxValue int

	// Path holds the [row, col] cells of one maximal path, in order.
	Path [][2]int
}

// DP solves the maximum path-sum problem over a mastery grid, moving only
// right or down, and reconstructs the winning path.
func DP(grid [][]int) ExecutionResult {
	start := time.Now()

	res := &DPResult{}
	rows := len(grid)
	if rows > 0 && len(grid[0]) > 0 {
		cols := len(grid[0])

		dp := make([][]int, rows)
		for r := range dp {
			dp[r] = make([]int, cols)
		}
		dp[0][0] = grid[0][0]
		for c := 1; c < cols; c++ {
			dp[0][c] = dp[0][c-1] + grid[0][c]
		}
		for r := 1; r < rows; r++ {
			dp[r][0] = dp[r-1][0] + grid[r][0]
			for c := 1; c < cols; c++ {
				from := dp[r-1][c]
				if dp[r][c-1] > from {
					from = dp[r][c-1]
				}
				dp[r][c] = from + grid[r][c]
			}
		}

		// Walk back from the bottom-right corner.
		path := [][2]int{{rows - 1, cols - 1}}
		r, c := rows-1, cols-1
		for r > 0 || c > 0 {
			if r == 0 {
				c--
			} else if c == 0 {
				r--
			} else if dp[r-1][c] >= dp[r][c-1] {
				r--
			} else {
				c--
			}
			path = append(path, [2]int{r, c})
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}

		res.MaxValue = dp[rows-1][cols-1]
		res.Path = path
	}

	return ExecutionResult{
		Family:          FamilyKnowledgeTracing,
		AlgorithmName:   "DP",
		Result:          res,
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(n·m)", Space: "O(n·m)"},
	}
}
