package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
	"github.com/studyweave/studyweave/internal/contract"
)

func newWhatIfCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Simulate plan changes without saving anything",
	}

	cmd.AddCommand(
		newWhatIfCommitmentCmd(app),
		newWhatIfRemoveHoursCmd(app),
		newWhatIfAddTaskCmd(app),
		newWhatIfDeadlineCmd(app),
	)

	return cmd
}

func runSimulation(app *App, scenario contract.Scenario) error {
	result, err := app.WhatIf.Simulate(context.Background(), app.DefaultUser, scenario)
	if err != nil {
		return err
	}

	if warnings := formatter.FormatWarnings(result.Warnings); warnings != "" {
		fmt.Printf("%s\n\n", warnings)
	}
	fmt.Printf("%s\n", formatter.FormatDiff(result.Diff))
	return nil
}

func newWhatIfCommitmentCmd(app *App) *cobra.Command {
	var days []string
	var from, to int

	cmd := &cobra.Command{
		Use:   "add-commitment",
		Short: "What if some weekly hours become unavailable?",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayIdxs := make([]int, 0, len(days))
			for _, d := range days {
				idx, err := parseDay(d)
				if err != nil {
					return err
				}
				dayIdxs = append(dayIdxs, idx)
			}

			return runSimulation(app, contract.Scenario{
				Type:                contract.ScenarioAddCommitment,
				CommitmentDays:      dayIdxs,
				CommitmentStartHour: &from,
				CommitmentEndHour:   &to,
			})
		},
	}

	cmd.Flags().StringSliceVar(&days, "days", nil, "Days of the commitment (monday..sunday or 0-6)")
	cmd.Flags().IntVar(&from, "from", 0, "Start hour (inclusive)")
	cmd.Flags().IntVar(&to, "to", 0, "End hour (exclusive)")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newWhatIfRemoveHoursCmd(app *App) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "remove-hours",
		Short: "What if the daily study cap shrinks?",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(app, contract.Scenario{
				Type:          contract.ScenarioRemoveHours,
				ReduceHoursBy: &hours,
			})
		},
	}

	cmd.Flags().Float64Var(&hours, "by", 0, "Hours to subtract from the daily caps")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func newWhatIfAddTaskCmd(app *App) *cobra.Command {
	var title, due, focus string
	var estimated float64
	var difficulty int

	cmd := &cobra.Command{
		Use:   "add-task",
		Short: "What if a new task lands on the pile?",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := contract.Scenario{Type: contract.ScenarioAddTask}

			if title != "" {
				scenario.TaskTitle = &title
			}
			if due != "" {
				dueDate, err := parseDate(due)
				if err != nil {
					return err
				}
				scenario.TaskDueDate = &dueDate
			}
			if cmd.Flags().Changed("est") {
				scenario.TaskEstimatedHours = &estimated
			}
			if cmd.Flags().Changed("difficulty") {
				scenario.TaskDifficulty = &difficulty
			}
			if focus != "" {
				scenario.TaskFocusLoad = &focus
			}

			return runSimulation(app, scenario)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Hypothetical task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&estimated, "est", 0, "Estimated hours of work")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty 1-5")
	cmd.Flags().StringVar(&focus, "focus", "", "Focus load (light|medium|deep)")

	return cmd
}

func newWhatIfDeadlineCmd(app *App) *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "change-deadline TASK",
		Short: "What if a task's deadline moves?",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}
			newDeadline, err := parseDate(due)
			if err != nil {
				return err
			}

			return runSimulation(app, contract.Scenario{
				Type:         contract.ScenarioChangeDeadline,
				TargetTaskID: &taskID,
				NewDeadline:  &newDeadline,
			})
		},
	}

	cmd.Flags().StringVar(&due, "to", "", "New due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
