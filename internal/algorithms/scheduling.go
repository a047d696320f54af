package algorithms

import (
	"math"
	"time"
)

// SM2Result is the payload of the SM-2 review scheduling adapter.
type SM2Result struct {
	NewInterval   int
	NewEaseFactor float64
	Repetitions   int
}

// sm2Quality is the recall grade the scheduler assumes for interval
// computation at session start. 4 = "correct after hesitation".
const sm2Quality = 4

// SM2 performs one SuperMemo-2 step from the given ease factor, current
// interval (days) and repetition count.
func SM2(easeFactor float64, interval, repetitions int) ExecutionResult {
	start := time.Now()

	q := float64(sm2Quality)
	newEase := easeFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if newEase < 1.3 {
		newEase = 1.3
	}

	var newInterval int
	switch {
	case repetitions == 0:
		newInterval = 1
	case repetitions == 1:
		newInterval = 6
	default:
		newInterval = int(math.Ceil(float64(interval) * newEase))
	}

	return ExecutionResult{
		Family:        FamilyScheduling,
		AlgorithmName: "SM2",
		Result: &SM2Result{
			NewInterval:   newInterval,
			NewEaseFactor: newEase,
			Repetitions:   repetitions + 1,
		},
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(1)", Space: "O(1)"},
	}
}

// MinHeapResult is the payload of the min-heap scheduling adapter.
type MinHeapResult struct {
	// SchedulingOrder is the input priorities extracted in ascending
	// order (soonest review first).
	SchedulingOrder []int
}

// MinHeap heapifies the given priorities and extracts them in order.
func MinHeap(items []int) ExecutionResult {
	start := time.Now()

	heap := make([]int, len(items))
	copy(heap, items)
	for i := len(heap)/2 - 1; i >= 0; i-- {
		siftDown(heap, i, len(heap))
	}

	order := make([]int, 0, len(heap))
	for n := len(heap); n > 0; n-- {
		order = append(order, heap[0])
		heap[0] = heap[n-1]
		heap = heap[:n-1]
		siftDown(heap, 0, len(heap))
	}

	return ExecutionResult{
		Family:          FamilyScheduling,
		AlgorithmName:   "MinHeap",
		Result:          &MinHeapResult{SchedulingOrder: order},
		ExecutionTimeMs: elapsedMs(start),
		Complexity:      Complexity{Time: "O(n log n)", Space: "O(n)"},
	}
}

func siftDown(heap []int, i, n int) {
	for {
		smallest := i
		if l := 2*i + 1; l < n && heap[l] < heap[smallest] {
			smallest = l
		}
		if r := 2*i + 2; r < n && heap[r] < heap[smallest] {
			smallest = r
		}
		if smallest == i {
			return
		}
		heap[i], heap[smallest] = heap[smallest], heap[i]
		i = smallest
	}
}
