package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
	"github.com/studyweave/studyweave/internal/domain"
)

func newGridCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Manage the weekly availability grid",
	}

	cmd.AddCommand(
		newGridShowCmd(app),
		newGridSetCmd(app),
		newGridClearCmd(app),
	)

	return cmd
}

// parseDay accepts a weekday name, a 3-letter prefix, or a 0-6 index
// (0 = Monday).
func parseDay(input string) (int, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("day index must be 0-6, got %d", n)
		}
		return n, nil
	}
	lower := strings.ToLower(input)
	for i, name := range domain.DayNames {
		if name == lower || (len(lower) >= 3 && strings.HasPrefix(name, lower)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", input)
}

func newGridShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the availability grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, err := app.Availability.Get(context.Background(), app.DefaultUser)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatWeekGrid(grid))
			return nil
		},
	}
}

func newGridSetCmd(app *App) *cobra.Command {
	var day string
	var from, to int
	var busy bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Mark an hour range free or busy on one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayIdx, err := parseDay(day)
			if err != nil {
				return err
			}

			if err := app.Availability.SetRange(context.Background(), app.DefaultUser, dayIdx, from, to, !busy); err != nil {
				return err
			}

			state := "free"
			if busy {
				state = "busy"
			}
			fmt.Printf("Marked %s %02d:00-%02d:00 as %s\n", domain.DayNames[dayIdx], from, to, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day (monday..sunday or 0-6)")
	cmd.Flags().IntVar(&from, "from", 0, "Start hour (inclusive)")
	cmd.Flags().IntVar(&to, "to", 0, "End hour (exclusive)")
	cmd.Flags().BoolVar(&busy, "busy", false, "Mark the range busy instead of free")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newGridClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Mark the whole week as busy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Availability.SetGrid(context.Background(), app.DefaultUser, &domain.WeekGrid{}); err != nil {
				return err
			}

			fmt.Println("Cleared availability grid.")
			return nil
		},
	}
}
