package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Spaced-repetition reviews for exam tasks",
	}

	cmd.AddCommand(
		newReviewRecordCmd(app),
		newReviewPlanCmd(app),
	)

	return cmd
}

func newReviewRecordCmd(app *App) *cobra.Command {
	var quality int

	cmd := &cobra.Command{
		Use:   "record TASK",
		Short: "Grade a review session (0 = blackout, 5 = perfect)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			state, err := app.Reviews.RecordReview(context.Background(), app.DefaultUser, taskID, quality)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatReviewState(state))
			return nil
		},
	}

	cmd.Flags().IntVar(&quality, "quality", 0, "Recall quality 0-5")
	_ = cmd.MarkFlagRequired("quality")

	return cmd
}

func newReviewPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan TASK",
		Short: "Project review sessions up to the exam date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			task, err := app.Tasks.GetByID(ctx, app.DefaultUser, taskID)
			if err != nil {
				return err
			}
			blocks, err := app.Reviews.PlanReviews(ctx, app.DefaultUser, taskID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatReviewPlan(task, blocks))
			return nil
		},
	}
}
