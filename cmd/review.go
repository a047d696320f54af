package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/algodrill/algodrill/internal/app"
	"github.com/algodrill/algodrill/internal/review"
	"github.com/algodrill/algodrill/internal/strategy"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run the spaced-repetition review if one is due",
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

		if snap.Data.Review == nil {
			fmt.Println("No review scheduled yet. Finish a drill first.")
			return nil
		}
		sched := snap.Data.Review

		attempts, err := st.AttemptRepo().Recent(ctx, snap.Data.Profile.LearnerID, 0)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		queue := review.BuildQueue(attempts, review.DefaultQueueCap)

		if !review.Due(snap, time.Now()) {
			fmt.Printf("Nothing due yet. Next review: %s (every %d day(s) via %s).\n",
				sched.NextReviewDate.Format("Jan 02, 2006"),
				sched.IntervalDays, sched.Strategy)
			return nil
		}
		if len(queue) == 0 {
			fmt.Println("Review is due, but there are no missed questions to replay.")
			return nil
		}

		return app.Run(app.Options{
			Store:       st,
			Config:      strategy.DefaultConfig(),
			StartReview: true,
		})
	},
}
