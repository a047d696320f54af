package strategy

// RewardPolicy is the per-session reward verdict produced by the reward
// family. Implementations are closed: exactly one per reward algorithm.
type RewardPolicy interface {
	isRewardPolicy()
}

// VariableRatioPolicy rewards the learner's next correct answer when the
// simulated reinforcement schedule says so.
type VariableRatioPolicy struct {
	Schedule     []bool
	ShouldReward bool
}

func (VariableRatioPolicy) isRewardPolicy() {}

// FenwickTreePolicy reports an accumulated reward total on every correct
// answer.
type FenwickTreePolicy struct {
	TotalReward int
	PrefixSums  []int
}

func (FenwickTreePolicy) isRewardPolicy() {}

// KnowledgeState is the per-session mastery estimate produced by the
// knowledge tracing family.
type KnowledgeState interface {
	isKnowledgeState()
}

// DKTState carries per-skill correctness predictions from the recurrent
// tracing model.
type DKTState struct {
	Predictions  []float64
	HiddenStates []float64
}

func (DKTState) isKnowledgeState() {}

// DPState carries the optimal mastery-path value from the grid model.
type DPState struct {
	MaxValue int
	Path     [][2]int
}

func (DPState) isKnowledgeState() {}
