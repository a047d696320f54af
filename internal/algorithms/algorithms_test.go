package algorithms

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestQLearningUpdatesChosenAction(t *testing.T) {
	qTable := [][]float64{
		{0.1, 0.9, -0.3},
		{0.0, 0.0, 0.0},
	}
	res := QLearning(qTable, 0, 0.0, testRNG())

	payload, ok := res.Result.(*QLearningResult)
	if !ok {
		t.Fatalf("unexpected payload type %T", res.Result)
	}
	if payload.ChosenAction != 1 {
		t.Errorf("greedy choice = %d, want 1", payload.ChosenAction)
	}
	if len(payload.QValues) != 3 {
		t.Fatalf("got %d q-values, want 3", len(payload.QValues))
	}
	if payload.QValues[0] != 0.1 || payload.QValues[2] != -0.3 {
		t.Error("non-chosen actions must keep their values")
	}
	if payload.QValues[1] == 0.9 {
		t.Error("chosen action value must be updated")
	}
	if res.Family != FamilySelection || res.AlgorithmName != "QLearning" {
		t.Errorf("bad labels: %s/%s", res.Family, res.AlgorithmName)
	}
}

func TestQLearningOutOfRangeState(t *testing.T) {
	res := QLearning([][]float64{{0.5}}, 7, 0.1, testRNG())
	payload := res.Result.(*QLearningResult)
	if payload.ChosenAction != -1 || len(payload.QValues) != 0 {
		t.Errorf("out-of-range state must yield empty result, got %+v", payload)
	}
}

func TestKnapsackKnownOptimum(t *testing.T) {
	// Items: (w=1,v=5) (w=2,v=8) (w=3,v=12). Capacity 8 fits all, value 25.
	res := Knapsack([]int{1, 2, 3}, []float64{5, 8, 12}, 8)
	payload := res.Result.(*KnapsackResult)
	if payload.MaxValue != 25 {
		t.Errorf("MaxValue = %v, want 25", payload.MaxValue)
	}
	if len(payload.SelectedItems) != 3 {
		t.Errorf("SelectedItems = %v, want all three", payload.SelectedItems)
	}
}

func TestKnapsackTightCapacity(t *testing.T) {
	res := Knapsack([]int{3, 2, 2}, []float64{10, 7, 7}, 4)
	payload := res.Result.(*KnapsackResult)
	if payload.MaxValue != 14 {
		t.Errorf("MaxValue = %v, want 14", payload.MaxValue)
	}
	want := []int{1, 2}
	if len(payload.SelectedItems) != 2 || payload.SelectedItems[0] != want[0] || payload.SelectedItems[1] != want[1] {
		t.Errorf("SelectedItems = %v, want %v", payload.SelectedItems, want)
	}
}

func TestSM2FirstReviews(t *testing.T) {
	res := SM2(2.5, 1, 0)
	payload := res.Result.(*SM2Result)
	if payload.NewInterval != 1 {
		t.Errorf("first review interval = %d, want 1", payload.NewInterval)
	}
	if payload.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", payload.Repetitions)
	}

	res = SM2(payload.NewEaseFactor, payload.NewInterval, payload.Repetitions)
	payload = res.Result.(*SM2Result)
	if payload.NewInterval != 6 {
		t.Errorf("second review interval = %d, want 6", payload.NewInterval)
	}
}

func TestSM2EaseFloor(t *testing.T) {
	res := SM2(1.3, 10, 5)
	payload := res.Result.(*SM2Result)
	if payload.NewEaseFactor < 1.3 {
		t.Errorf("ease factor %v dropped below floor", payload.NewEaseFactor)
	}
	if payload.NewInterval < 10 {
		t.Errorf("mature interval %d must not shrink", payload.NewInterval)
	}
}

func TestMinHeapOrdersAscending(t *testing.T) {
	res := MinHeap([]int{3, 1, 6, 5, 2, 4})
	payload := res.Result.(*MinHeapResult)
	want := []int{1, 2, 3, 4, 5, 6}
	if len(payload.SchedulingOrder) != len(want) {
		t.Fatalf("got %d items, want %d", len(payload.SchedulingOrder), len(want))
	}
	for i, v := range want {
		if payload.SchedulingOrder[i] != v {
			t.Fatalf("SchedulingOrder = %v, want %v", payload.SchedulingOrder, want)
		}
	}
}

func TestVariableRatioHistory(t *testing.T) {
	res := VariableRatio(10, []int{2, 3, 4, 5}, testRNG())
	payload := res.Result.(*VariableRatioResult)
	if len(payload.ReinforcementHistory) != 10 {
		t.Fatalf("history length = %d, want 10", len(payload.ReinforcementHistory))
	}
	rewarded := 0
	for _, hit := range payload.ReinforcementHistory {
		if hit {
			rewarded++
		}
	}
	// With ratios 2..5 over 10 trials at least one payout must occur.
	if rewarded == 0 {
		t.Error("expected at least one reinforcement in 10 trials")
	}
	if payload.ShouldReward != payload.ReinforcementHistory[9] {
		t.Error("ShouldReward must mirror the final trial")
	}
}

func TestVariableRatioNoRatios(t *testing.T) {
	res := VariableRatio(5, nil, testRNG())
	payload := res.Result.(*VariableRatioResult)
	if len(payload.ReinforcementHistory) != 5 || payload.ShouldReward {
		t.Errorf("empty ratios must never reward: %+v", payload)
	}
}

func TestFenwickTreeRangeSum(t *testing.T) {
	res := FenwickTree([]int{5, 3, 7, 2, 6}, 2, 4)
	payload := res.Result.(*FenwickTreeResult)
	if payload.TotalReward != 15 {
		t.Errorf("TotalReward = %d, want 15", payload.TotalReward)
	}
	wantPrefix := []int{5, 8, 15, 17, 23}
	for i, v := range wantPrefix {
		if payload.PrefixSums[i] != v {
			t.Fatalf("PrefixSums = %v, want %v", payload.PrefixSums, wantPrefix)
		}
	}
}

func TestFenwickTreeClampsRange(t *testing.T) {
	res := FenwickTree([]int{1, 2, 3}, -4, 99)
	payload := res.Result.(*FenwickTreeResult)
	if payload.TotalReward != 6 {
		t.Errorf("clamped range sum = %d, want 6", payload.TotalReward)
	}
}

func TestDKTShapesAndBounds(t *testing.T) {
	res := DKT([]float64{0.7, 0.5, 0.9}, []float64{0.8, 0.6, 0.7})
	payload := res.Result.(*DKTResult)
	if len(payload.Predictions) != 3 || len(payload.HiddenStates) != 3 {
		t.Fatalf("unexpected shapes: %+v", payload)
	}
	for i, p := range payload.Predictions {
		if p <= 0 || p >= 1 {
			t.Errorf("prediction[%d] = %v out of (0,1)", i, p)
		}
	}
	for i, h := range payload.HiddenStates {
		if h <= -1 || h >= 1 {
			t.Errorf("hidden[%d] = %v out of (-1,1)", i, h)
		}
	}
}

func TestDKTStrongInputPredictsHigh(t *testing.T) {
	res := DKT([]float64{0.95}, []float64{0.9})
	payload := res.Result.(*DKTResult)
	if payload.Predictions[0] <= 0.5 {
		t.Errorf("strong evidence should predict > 0.5, got %v", payload.Predictions[0])
	}
}

func TestDPMaxPath(t *testing.T) {
	res := DP([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	payload := res.Result.(*DPResult)
	if payload.MaxValue != 29 {
		t.Errorf("MaxValue = %d, want 29", payload.MaxValue)
	}
	if len(payload.Path) != 5 {
		t.Fatalf("path length = %d, want 5", len(payload.Path))
	}
	if payload.Path[0] != [2]int{0, 0} || payload.Path[4] != [2]int{2, 2} {
		t.Errorf("path endpoints wrong: %v", payload.Path)
	}
	sum := 0
	grid := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for _, cell := range payload.Path {
		sum += grid[cell[0]][cell[1]]
	}
	if sum != payload.MaxValue {
		t.Errorf("path sums to %d, want %d", sum, payload.MaxValue)
	}
}

func TestDPEmptyGrid(t *testing.T) {
	res := DP(nil)
	payload := res.Result.(*DPResult)
	if payload.MaxValue != 0 || len(payload.Path) != 0 {
		t.Errorf("empty grid must yield zero result, got %+v", payload)
	}
}
