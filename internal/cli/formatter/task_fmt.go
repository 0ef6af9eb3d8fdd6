package formatter

import (
	"fmt"
	"strings"

	"github.com/studyweave/studyweave/internal/domain"
)

// FormatTaskList renders tasks as an aligned table, one row per task.
func FormatTaskList(tasks []*domain.Task, courses map[int64]*domain.Course) string {
	headers := []string{"ID", "TITLE", "COURSE", "DUE", "EST", "PRIORITY", "STATUS"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		courseName := ""
		if t.CourseID != nil {
			if c, ok := courses[*t.CourseID]; ok {
				courseName = c.Code
				if courseName == "" {
					courseName = c.Name
				}
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			StyleFg.Render(t.Title),
			StyleBlue.Render(courseName),
			RelativeDateStyled(t.DueDate),
			Hours(t.EffectiveEstimatedHours()),
			PriorityStyle(t.Priority).Render(string(t.Priority)),
			StatusPill(t.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskDetail renders one task as a boxed detail view.
func FormatTaskDetail(t *domain.Task, course *domain.Course) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(t.Title), StatusPill(t.Status))
	if course != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("Course:"), StyleBlue.Render(course.Name))
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Notes:"), t.Description)
	}
	fmt.Fprintf(&b, "%s %s (%s)\n", Dim("Due:"),
		t.DueDate.Format("Mon, Jan 2 2006"), RelativeDate(t.DueDate))
	fmt.Fprintf(&b, "%s %s   %s %d/5   %s %s   %s %s\n",
		Dim("Effort:"), Hours(t.EffectiveEstimatedHours()),
		Dim("Difficulty:"), t.Difficulty,
		Dim("Priority:"), PriorityStyle(t.Priority).Render(string(t.Priority)),
		Dim("Focus:"), string(t.FocusLoad))
	if t.Splittable {
		fmt.Fprintf(&b, "%s %d-%d min blocks\n", Dim("Splits into:"),
			t.MinBlockMinutes, t.MaxBlockMinutes)
	} else {
		fmt.Fprintf(&b, "%s\n", Dim("Scheduled as a single block"))
	}
	if t.CompletedAt != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("Completed:"), HumanDate(*t.CompletedAt))
	}

	return RenderBox(fmt.Sprintf("task %d", t.ID), strings.TrimRight(b.String(), "\n"))
}

// FormatCourseList renders courses as an aligned table.
func FormatCourseList(courses []*domain.Course) string {
	headers := []string{"ID", "CODE", "NAME", "COLOR"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.ID),
			StyleBlue.Render(c.Code),
			StyleFg.Render(c.Name),
			Dim(c.Color),
		})
	}
	return RenderTable(headers, rows)
}
