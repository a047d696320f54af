package cmd

import (
	"strings"

	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/spf13/cobra"
)

var (
	flagSelection  string
	flagScheduling string
	flagReward     string
	flagTracing    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a drill with a custom strategy mix",
	Long: "Start a drill session with explicit algorithm choices per strategy family.\n" +
		"Unknown names fall back to the family default.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := strategy.DefaultConfig()
		if flagSelection != "" {
			cfg.QuestionSelection = flagSelection
		}
		if flagScheduling != "" {
			cfg.ReviewScheduling = flagScheduling
		}
		if flagReward != "" {
			cfg.RewardSystem = flagReward
		}
		if flagTracing != "" {
			cfg.KnowledgeTracing = flagTracing
		}
		return runApp(cmd, cfg)
	},
}

func init() {
	alts := strategy.Alternatives()
	playCmd.Flags().StringVar(&flagSelection, "selection", "",
		"Question selection algorithm ("+strings.Join(alts["questionSelection"], ", ")+")")
	playCmd.Flags().StringVar(&flagScheduling, "scheduling", "",
		"Review scheduling algorithm ("+strings.Join(alts["reviewScheduling"], ", ")+")")
	playCmd.Flags().StringVar(&flagReward, "reward", "",
		"Reward system algorithm ("+strings.Join(alts["rewardSystem"], ", ")+")")
	playCmd.Flags().StringVar(&flagTracing, "tracing", "",
		"Knowledge tracing algorithm ("+strings.Join(alts["knowledgeTracing"], ", ")+")")
}
