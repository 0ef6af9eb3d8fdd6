package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
	"github.com/studyweave/studyweave/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate, confirm and inspect study plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanConfirmCmd(app),
		newPlanShowCmd(app),
		newPlanVersionsCmd(app),
		newPlanRollbackCmd(app),
		newPlanMoveCmd(app),
	)

	return cmd
}

func taskIndex(ctx context.Context, app *App) (map[int64]*domain.Task, error) {
	tasks, err := app.Tasks.List(ctx, app.DefaultUser)
	if err != nil {
		return nil, err
	}
	index := make(map[int64]*domain.Task, len(tasks))
	for _, t := range tasks {
		index[t.ID] = t
	}
	return index, nil
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Propose a new plan without saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			preview, err := app.Schedule.GeneratePreview(ctx, app.DefaultUser)
			if err != nil {
				return err
			}

			tasks, err := taskIndex(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n", formatter.FormatDiff(preview.Diff))
			fmt.Printf("%s\n\n", formatter.FormatBlockList(preview.Blocks, tasks, nil))
			fmt.Printf("%s\n", formatter.Dim(fmt.Sprintf(
				"Preview only. Run 'studyweave plan confirm' before %s to apply.",
				preview.ExpiresAt.Format("15:04"))))
			return nil
		},
	}
}

func newPlanConfirmCmd(app *App) *cobra.Command {
	var trigger string

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Apply the pending plan preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Schedule.ConfirmPlan(context.Background(), app.DefaultUser, trigger)
			if err != nil {
				return err
			}

			fmt.Printf("Confirmed plan v%d: %s (%d blocks)\n",
				result.VersionNumber, result.Diff.Summary(), result.BlockCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&trigger, "trigger", "", "Reason recorded in history (default manual_replan)")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var withEnergy bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			blocks, err := app.Schedule.ListBlocks(ctx, app.DefaultUser)
			if err != nil {
				return err
			}

			tasks, err := taskIndex(ctx, app)
			if err != nil {
				return err
			}

			var energies []float64
			if withEnergy {
				annotated, err := app.Energy.AnnotateBlocks(ctx, app.DefaultUser, blocks)
				if err != nil {
					return err
				}
				energies = make([]float64, len(annotated))
				for i, a := range annotated {
					energies[i] = a.Score
				}
			}

			fmt.Printf("%s\n", formatter.FormatBlockList(blocks, tasks, energies))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withEnergy, "energy", false, "Annotate each block with its energy fit")

	return cmd
}

func newPlanVersionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List plan history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := app.Versions.List(context.Background(), app.DefaultUser)
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				fmt.Println("No plan versions yet.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatVersionList(versions))
			return nil
		},
	}
}

func newPlanRollbackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rollback VERSION",
		Short: "Restore an older plan version as a new version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version number %q", args[0])
			}

			v, err := app.Versions.Rollback(context.Background(), app.DefaultUser, number)
			if err != nil {
				return err
			}

			fmt.Printf("Rolled back to v%d as new version v%d: %s\n",
				number, v.VersionNumber, v.DiffSummary)
			return nil
		},
	}
}

func newPlanMoveCmd(app *App) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "move BLOCK",
		Short: "Move a study block by hand and pin it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blockID, err := parseID(args[0])
			if err != nil {
				return err
			}
			newStart, err := parseDateTime(to)
			if err != nil {
				return err
			}

			b, err := app.Schedule.MoveBlock(context.Background(), app.DefaultUser, blockID, newStart)
			if err != nil {
				return err
			}

			fmt.Printf("Moved block %d to %s (pinned)\n", b.ID, formatter.TimeRange(b.Start, b.End))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "New start time (YYYY-MM-DD HH:MM)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
