package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil || snap.Data.Profile == nil {
			fmt.Println("No profile yet. Run `algodrill` to create one.")
			return nil
		}
		profile := snap.Data.Profile

		attempts, err := st.AttemptRepo().Recent(ctx, profile.LearnerID, 10)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		fmt.Printf("Learner: %s\n\n", profile.Name)
		if len(attempts) == 0 {
			fmt.Println("No attempts yet.")
			return nil
		}

		fmt.Printf("%-14s %-8s %-7s %s\n", "Date", "Type", "Score", "Time")
		for _, rec := range attempts {
			kind := "drill"
			if rec.SessionType != "normal" {
				kind = "review"
			}
			fmt.Printf("%-14s %-8s %d/%-5d %d:%02d\n",
				rec.CompletedAt.Format("Jan 02, 2006"),
				kind,
				rec.Score, rec.Total,
				rec.TimeSpentSecs/60, rec.TimeSpentSecs%60)
		}

		if snap.Data.Review != nil {
			fmt.Printf("\nNext review: %s (%s, every %d day(s))\n",
				snap.Data.Review.NextReviewDate.Format("Jan 02, 2006"),
				snap.Data.Review.Strategy,
				snap.Data.Review.IntervalDays)
		}
		return nil
	},
}
