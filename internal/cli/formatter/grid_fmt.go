package formatter

import (
	"fmt"
	"strings"

	"github.com/studyweave/studyweave/internal/domain"
)

// FormatWeekGrid renders the availability bitmap as one row per day with
// a column per hour. A hour counts as available when all four of its
// 15-minute slots are marked.
func FormatWeekGrid(grid *domain.WeekGrid) string {
	var b strings.Builder

	b.WriteString("      ")
	for h := 0; h < 24; h += 3 {
		b.WriteString(Dim(fmt.Sprintf("%-3s", fmt.Sprintf("%02d", h))))
	}
	b.WriteString("\n")

	abbrevs := [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for day := 0; day < 7; day++ {
		fmt.Fprintf(&b, "%s  ", StyleBlue.Render(fmt.Sprintf("%-4s", abbrevs[day])))
		for h := 0; h < 24; h++ {
			free := true
			for q := 0; q < 4; q++ {
				if !grid.Days[day][h*4+q] {
					free = false
					break
				}
			}
			if free {
				b.WriteString(StyleGreen.Render("█"))
			} else {
				b.WriteString(Dim("·"))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatRules renders the scheduling rules as labeled lines.
func FormatRules(rules *domain.SchedulingRules) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s weekdays", Dim("Daily cap:"), Hours(rules.DailyMaxHours))
	if rules.LighterWeekends {
		fmt.Fprintf(&b, ", %s weekends", Hours(rules.WeekendMaxHours))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d min break after %d min of work\n",
		Dim("Breaks:"), rules.BreakDurationMinutes, rules.BreakAfterMinutes)
	fmt.Fprintf(&b, "%s %d min per subject in a row\n",
		Dim("Variety:"), rules.MaxConsecutiveSameSubjectMinutes)
	fmt.Fprintf(&b, "%s %02d:00-%02d:00\n",
		Dim("Sleep:"), rules.SleepStartHour, rules.SleepEndHour)
	fmt.Fprintf(&b, "%s %02d:00-%02d:00",
		Dim("Preferred window:"), rules.PreferredStartHour, rules.PreferredEndHour)
	return b.String()
}

// FormatEnergyProfile renders the profile type and a bar per hour.
func FormatEnergyProfile(p *domain.EnergyProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Profile:"), StyleBlue.Render(string(p.Type)))
	for h := 0; h < 24; h++ {
		score := p.HourlyScores[h]
		bar := strings.Repeat("█", int(score*20+0.5))
		style := StyleRed
		if score >= 0.7 {
			style = StyleGreen
		} else if score >= 0.4 {
			style = StyleYellow
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			Dim(fmt.Sprintf("%02d:00", h)), style.Render(bar),
			Dim(fmt.Sprintf("%.2f", score)))
	}
	return strings.TrimRight(b.String(), "\n")
}
