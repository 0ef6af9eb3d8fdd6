package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/studyweave/studyweave/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses      service.CourseService
	Tasks        service.TaskService
	Availability service.AvailabilityService
	Schedule     service.ScheduleService
	Versions     service.VersionService
	WhatIf       service.WhatIfService
	FreeTime     service.FreeTimeService
	Reviews      service.ReviewService
	Energy       service.EnergyService

	// DefaultUser is used when --user is not given.
	DefaultUser string

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "studyweave" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyweave",
		Short: "Study planner with versioned schedules and what-if simulation",
	}

	root.PersistentFlags().StringVar(&app.DefaultUser, "user", app.DefaultUser, "User the command acts for")

	// Accept underscores in flag names (e.g. --min_block).
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newTaskCmd(app),
		newCourseCmd(app),
		newGridCmd(app),
		newRulesCmd(app),
		newPlanCmd(app),
		newWhatIfCmd(app),
		newFreeTimeCmd(app),
		newReviewCmd(app),
		newEnergyCmd(app),
	)

	return root
}
