package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
	"github.com/studyweave/studyweave/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, due, priority, focus, taskType, description string
	var estimated float64
	var difficulty, minBlock, maxBlock int
	var courseID int64
	var noSplit bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// No --title means the interactive form, terminal permitting.
			if title == "" {
				if !app.interactive() {
					return fmt.Errorf("--title is required")
				}
				if err := runTaskAddForm(&title, &due, &priority, &focus, &taskType, &estimated, &difficulty); err != nil {
					return err
				}
			}

			if due == "" {
				return fmt.Errorf("--due is required")
			}
			dueDate, err := parseDate(due)
			if err != nil {
				return err
			}

			t := &domain.Task{
				UserID:      app.DefaultUser,
				Title:       title,
				Description: description,
				DueDate:     dueDate,
				Difficulty:  difficulty,
				Priority:    domain.Priority(priority),
				Type:        domain.TaskType(taskType),
				FocusLoad:   domain.FocusLoad(focus),
				Splittable:  !noSplit,
			}
			if cmd.Flags().Changed("est") || estimated > 0 {
				t.EstimatedHours = &estimated
			}
			if cmd.Flags().Changed("course") {
				t.CourseID = &courseID
			}
			if cmd.Flags().Changed("min-block") {
				t.MinBlockMinutes = minBlock
			}
			if cmd.Flags().Changed("max-block") {
				t.MaxBlockMinutes = maxBlock
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Created task %d: %s (due %s)\n", t.ID, t.Title, t.DueDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "notes", "", "Free-form notes")
	cmd.Flags().Float64Var(&estimated, "est", 0, "Estimated hours of work")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty 1-5")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (critical|high|medium|low)")
	cmd.Flags().StringVar(&focus, "focus", "", "Focus load (light|medium|deep)")
	cmd.Flags().StringVar(&taskType, "type", "", "Task type (assignment|exam|reading|project|other)")
	cmd.Flags().Int64Var(&courseID, "course", 0, "Course ID")
	cmd.Flags().BoolVar(&noSplit, "no-split", false, "Schedule as a single block")
	cmd.Flags().IntVar(&minBlock, "min-block", 0, "Minimum block length in minutes")
	cmd.Flags().IntVar(&maxBlock, "max-block", 0, "Maximum block length in minutes")

	return cmd
}

func runTaskAddForm(title, due, priority, focus, taskType *string, estimated *float64, difficulty *int) error {
	var estStr, diffStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Essay draft").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Placeholder("2026-09-15").
				Value(due).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Assignment", "assignment"),
					huh.NewOption("Exam", "exam"),
					huh.NewOption("Reading", "reading"),
					huh.NewOption("Project", "project"),
					huh.NewOption("Other", "other"),
				).
				Value(taskType),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Critical", "critical"),
					huh.NewOption("High", "high"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("Low", "low"),
				).
				Value(priority),
			huh.NewSelect[string]().
				Title("Focus Load").
				Options(
					huh.NewOption("Light", "light"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("Deep", "deep"),
				).
				Value(focus),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Estimated Hours (blank for default)").
				Placeholder("2.5").
				Value(&estStr),
			huh.NewInput().
				Title("Difficulty 1-5 (blank for default)").
				Placeholder("3").
				Value(&diffStr),
		),
	).WithTheme(studyweaveHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	if v, err := strconv.ParseFloat(estStr, 64); err == nil && v > 0 {
		*estimated = v
	}
	if v, err := strconv.Atoi(diffStr); err == nil && v > 0 {
		*difficulty = v
	}
	return nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var statuses []domain.TaskStatus
			switch {
			case status != "":
				statuses = []domain.TaskStatus{domain.TaskStatus(status)}
			case !all:
				statuses = []domain.TaskStatus{domain.TaskActive}
			}

			tasks, err := app.Tasks.List(ctx, app.DefaultUser, statuses...)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			courses, err := courseIndex(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(tasks, courses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed and archived tasks")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active|completed|archived)")

	return cmd
}

func courseIndex(ctx context.Context, app *App) (map[int64]*domain.Course, error) {
	courses, err := app.Courses.List(ctx, app.DefaultUser)
	if err != nil {
		return nil, err
	}
	index := make(map[int64]*domain.Course, len(courses))
	for _, c := range courses {
		index[c.ID] = c
	}
	return index, nil
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			t, err := app.Tasks.GetByID(ctx, app.DefaultUser, id)
			if err != nil {
				return err
			}

			var course *domain.Course
			if t.CourseID != nil {
				course, _ = app.Courses.GetByID(ctx, app.DefaultUser, *t.CourseID)
			}

			fmt.Printf("%s\n", formatter.FormatTaskDetail(t, course))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, due, priority, focus, taskType, description string
	var estimated float64
	var difficulty int
	var courseID int64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update domain.TaskUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("notes") {
				update.Description = &description
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := parseDate(due)
				if err != nil {
					return err
				}
				update.DueDate = &dueDate
			}
			if cmd.Flags().Changed("est") {
				update.EstimatedHours = &estimated
			}
			if cmd.Flags().Changed("difficulty") {
				update.Difficulty = &difficulty
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				update.Priority = &p
			}
			if cmd.Flags().Changed("focus") {
				f := domain.FocusLoad(focus)
				update.FocusLoad = &f
			}
			if cmd.Flags().Changed("type") {
				tt := domain.TaskType(taskType)
				update.Type = &tt
			}
			if cmd.Flags().Changed("course") {
				update.CourseID = &courseID
			}

			t, err := app.Tasks.Update(ctx, app.DefaultUser, id, update)
			if err != nil {
				return err
			}

			fmt.Printf("Updated task %d: %s\n", t.ID, t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "notes", "", "Free-form notes")
	cmd.Flags().Float64Var(&estimated, "est", 0, "Estimated hours of work")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty 1-5")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (critical|high|medium|low)")
	cmd.Flags().StringVar(&focus, "focus", "", "Focus load (light|medium|deep)")
	cmd.Flags().StringVar(&taskType, "type", "", "Task type (assignment|exam|reading|project|other)")
	cmd.Flags().Int64Var(&courseID, "course", 0, "Course ID")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			t, err := app.Tasks.Complete(context.Background(), app.DefaultUser, id)
			if err != nil {
				return err
			}

			fmt.Printf("Completed task %d: %s\n", t.ID, t.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task and its study blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.Delete(context.Background(), app.DefaultUser, id); err != nil {
				return err
			}

			fmt.Printf("Deleted task %d\n", id)
			return nil
		},
	}
}
