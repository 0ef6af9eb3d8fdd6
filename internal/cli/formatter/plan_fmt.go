package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
)

// FormatBlockList renders study blocks grouped by day. Titles are looked
// up from the tasks map; energies, when non-nil, must align with blocks
// by index.
func FormatBlockList(blocks []*domain.StudyBlock, tasks map[int64]*domain.Task, energies []float64) string {
	if len(blocks) == 0 {
		return Dim("No study blocks scheduled.")
	}

	var b strings.Builder
	currentDay := ""
	for i, blk := range blocks {
		day := blk.Start.Format("Monday, Jan 2")
		if day != currentDay {
			if currentDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(Header(day) + "\n")
			currentDay = day
		}

		title := fmt.Sprintf("task %d", blk.TaskID)
		if t, ok := tasks[blk.TaskID]; ok {
			title = t.Title
		}
		line := fmt.Sprintf("  %s-%s  %s",
			blk.Start.Format("15:04"), blk.End.Format("15:04"), StyleFg.Render(title))
		if blk.IsPinned {
			line += "  " + StylePurple.Render("⚲ pinned")
		}
		if energies != nil && i < len(energies) {
			line += "  " + EnergyIndicator(energies[i])
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDiff renders a plan diff: one-line summary plus per-block changes.
func FormatDiff(diff contract.PlanDiff) string {
	var b strings.Builder
	b.WriteString(Bold(diff.Summary()) + "\n")

	for _, item := range diff.Items {
		switch item.Action {
		case contract.ActionAdded:
			fmt.Fprintf(&b, "  %s %s %s\n", StyleGreen.Render("+"),
				item.TaskTitle, Dim(windowOf(item.NewStart, item.NewEnd)))
		case contract.ActionMoved:
			fmt.Fprintf(&b, "  %s %s %s %s %s\n", StyleYellow.Render("~"),
				item.TaskTitle, Dim(windowOf(item.OldStart, item.OldEnd)),
				Dim("→"), Dim(windowOf(item.NewStart, item.NewEnd)))
		case contract.ActionDeleted:
			fmt.Fprintf(&b, "  %s %s %s\n", StyleRed.Render("-"),
				item.TaskTitle, Dim(windowOf(item.OldStart, item.OldEnd)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func windowOf(start, end *time.Time) string {
	if start == nil {
		return ""
	}
	if end == nil {
		return start.Format("Jan 2 15:04")
	}
	return TimeRange(*start, *end)
}

// FormatVersionList renders plan history newest first.
func FormatVersionList(versions []*domain.PlanVersion) string {
	headers := []string{"VERSION", "WHEN", "TRIGGER", "CHANGES", "BLOCKS"}
	rows := make([][]string, 0, len(versions))
	for _, v := range versions {
		rows = append(rows, []string{
			fmt.Sprintf("v%d", v.VersionNumber),
			Dim(HumanDate(v.CreatedAt)),
			StyleBlue.Render(v.Trigger),
			StyleFg.Render(v.DiffSummary),
			fmt.Sprintf("%d", len(v.Snapshot)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatWarnings renders simulation warnings as a yellow bullet list.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("!"), w)
	}
	return strings.TrimRight(b.String(), "\n")
}
