package formatter

import (
	"fmt"
	"strings"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
)

// FormatFreeSlots renders mutual free windows grouped by weekday.
func FormatFreeSlots(slots []contract.FreeSlot) string {
	if len(slots) == 0 {
		return Dim("No mutual free slots found.")
	}

	var b strings.Builder
	currentDay := ""
	for _, s := range slots {
		if s.Day != currentDay {
			if currentDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(Header(s.Day) + "\n")
			currentDay = s.Day
		}
		fmt.Fprintf(&b, "  %s  %s\n",
			StyleGreen.Render(s.Window()), Dim(fmt.Sprintf("%d min", s.DurationMinutes)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatReviewPlan renders projected review sessions for an exam task.
func FormatReviewPlan(task *domain.Task, blocks []contract.ReviewBlock) string {
	if len(blocks) == 0 {
		return Dim("No review sessions to schedule.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)\n\n", Dim("Exam:"),
		Bold(task.Title), RelativeDate(task.DueDate))

	headers := []string{"#", "DATE", "INTERVAL"}
	rows := make([][]string, 0, len(blocks))
	for _, rb := range blocks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rb.RepetitionNumber),
			StyleFg.Render(rb.ReviewDate.Format("Mon, Jan 2")),
			Dim(fmt.Sprintf("%dd", rb.ExpectedInterval)),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return strings.TrimRight(b.String(), "\n")
}

// FormatReviewState renders the spaced-repetition state after a recorded review.
func FormatReviewState(state *domain.ReviewState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d   %s %.2f   %s %dd\n",
		Dim("Repetitions:"), state.Repetitions,
		Dim("Easiness:"), state.Easiness,
		Dim("Interval:"), state.IntervalDays)
	if state.NextReview != nil {
		fmt.Fprintf(&b, "%s %s", Dim("Next review:"),
			StyleGreen.Render(state.NextReview.Format("Mon, Jan 2")))
	}
	return strings.TrimRight(b.String(), "\n")
}
