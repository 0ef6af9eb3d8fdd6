package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
)

func newFreeTimeCmd(app *App) *cobra.Command {
	var users []string
	var minDuration int

	cmd := &cobra.Command{
		Use:   "freetime",
		Short: "Find mutual free slots across users",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.FreeTime.FindMutualFreeSlots(context.Background(), users, minDuration)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatFreeSlots(slots))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&users, "users", nil, "Users to intersect (at least two)")
	cmd.Flags().IntVar(&minDuration, "min", 30, "Minimum slot length in minutes")
	_ = cmd.MarkFlagRequired("users")

	return cmd
}
