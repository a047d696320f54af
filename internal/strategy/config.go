// Package strategy dispatches each algorithm family to a concrete adapter
// and converts raw adapter payloads into the session-facing policy types.
package strategy

// Config names the algorithm chosen for each family. Unknown or empty
// names fall back to the family default at dispatch time.
type Config struct {
	QuestionSelection string `json:"questionSelection"`
	ReviewScheduling  string `json:"reviewScheduling"`
	RewardSystem      string `json:"rewardSystem"`
	KnowledgeTracing  string `json:"knowledgeTracing"`
}

// DefaultConfig returns the stock strategy assignment.
func DefaultConfig() Config {
	return Config{
		QuestionSelection: "QLearning",
		ReviewScheduling:  "SM2",
		RewardSystem:      "VariableRatio",
		KnowledgeTracing:  "DKT",
	}
}

// Alternatives lists the selectable algorithm names per family, default
// first. The play command surfaces these as flag choices.
func Alternatives() map[string][]string {
	return map[string][]string{
		"questionSelection": {"QLearning", "Knapsack"},
		"reviewScheduling":  {"SM2", "MinHeap"},
		"rewardSystem":      {"VariableRatio", "FenwickTree"},
		"knowledgeTracing":  {"DKT", "DP"},
	}
}
