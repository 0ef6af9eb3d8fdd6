package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studyweave/studyweave/internal/cli/formatter"
	"github.com/studyweave/studyweave/internal/domain"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseUpdateCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var name, code, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new course",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Course{
				UserID: app.DefaultUser,
				Name:   name,
				Code:   code,
				Color:  color,
			}

			if err := app.Courses.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Created course %d: %s\n", c.ID, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&code, "code", "", "Course code (e.g. CS301)")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background(), app.DefaultUser)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Println("No courses found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCourseList(courses))
			return nil
		},
	}
}

func newCourseUpdateCmd(app *App) *cobra.Command {
	var name, code, color string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := app.Courses.GetByID(ctx, app.DefaultUser, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("code") {
				c.Code = code
			}
			if cmd.Flags().Changed("color") {
				c.Color = color
			}

			if err := app.Courses.Update(ctx, c); err != nil {
				return err
			}

			fmt.Printf("Updated course %d: %s\n", c.ID, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&code, "code", "", "Course code")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a course (tasks keep their data, lose the link)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.Courses.Delete(context.Background(), app.DefaultUser, id); err != nil {
				return err
			}

			fmt.Printf("Deleted course %d\n", id)
			return nil
		},
	}
}
