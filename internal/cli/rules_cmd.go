package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
)

func newRulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage scheduling rules",
	}

	cmd.AddCommand(
		newRulesShowCmd(app),
		newRulesSetCmd(app),
	)

	return cmd
}

func newRulesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the scheduling rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rules, err := app.Availability.Get(context.Background(), app.DefaultUser)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatRules(rules))
			return nil
		},
	}
}

func newRulesSetCmd(app *App) *cobra.Command {
	var dailyMax, weekendMax float64
	var breakAfter, breakFor, sameSubjectMax int
	var sleepStart, sleepEnd, preferredStart, preferredEnd int
	var lighterWeekends bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change scheduling rules (unset flags keep current values)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, rules, err := app.Availability.Get(ctx, app.DefaultUser)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("daily-max") {
				rules.DailyMaxHours = dailyMax
			}
			if cmd.Flags().Changed("weekend-max") {
				rules.WeekendMaxHours = weekendMax
			}
			if cmd.Flags().Changed("break-after") {
				rules.BreakAfterMinutes = breakAfter
			}
			if cmd.Flags().Changed("break-for") {
				rules.BreakDurationMinutes = breakFor
			}
			if cmd.Flags().Changed("same-subject-max") {
				rules.MaxConsecutiveSameSubjectMinutes = sameSubjectMax
			}
			if cmd.Flags().Changed("sleep-start") {
				rules.SleepStartHour = sleepStart
			}
			if cmd.Flags().Changed("sleep-end") {
				rules.SleepEndHour = sleepEnd
			}
			if cmd.Flags().Changed("preferred-start") {
				rules.PreferredStartHour = preferredStart
			}
			if cmd.Flags().Changed("preferred-end") {
				rules.PreferredEndHour = preferredEnd
			}
			if cmd.Flags().Changed("lighter-weekends") {
				rules.LighterWeekends = lighterWeekends
			}

			if err := app.Availability.UpdateRules(ctx, app.DefaultUser, rules); err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatRules(rules))
			return nil
		},
	}

	cmd.Flags().Float64Var(&dailyMax, "daily-max", 0, "Max study hours per weekday")
	cmd.Flags().Float64Var(&weekendMax, "weekend-max", 0, "Max study hours per weekend day")
	cmd.Flags().IntVar(&breakAfter, "break-after", 0, "Minutes of work before a break")
	cmd.Flags().IntVar(&breakFor, "break-for", 0, "Break length in minutes")
	cmd.Flags().IntVar(&sameSubjectMax, "same-subject-max", 0, "Max consecutive minutes on one subject")
	cmd.Flags().IntVar(&sleepStart, "sleep-start", 0, "Sleep window start hour")
	cmd.Flags().IntVar(&sleepEnd, "sleep-end", 0, "Sleep window end hour")
	cmd.Flags().IntVar(&preferredStart, "preferred-start", 0, "Preferred study window start hour")
	cmd.Flags().IntVar(&preferredEnd, "preferred-end", 0, "Preferred study window end hour")
	cmd.Flags().BoolVar(&lighterWeekends, "lighter-weekends", false, "Apply the weekend cap")

	return cmd
}
