package domain

import (
	"fmt"
	"time"
)

const (
	SlotMinutes = 15
	SlotsPerDay = 24 * 60 / SlotMinutes // 96
)

// DayNames index 0 = Monday, matching WeekGrid row order.
var DayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekGrid is a per-user availability bitmap: 7 days of 96 15-minute
// slots each, row 0 = Monday. True means the user is available.
type WeekGrid struct {
	Days [7][SlotsPerDay]bool `json:"days"`
}

// DayIndex maps a time to the grid row (0 = Monday .. 6 = Sunday).
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SlotIndex maps a time-of-day to the slot position within a day.
func SlotIndex(t time.Time) int {
	return (t.Hour()*60 + t.Minute()) / SlotMinutes
}

// IsFree reports whether the grid marks the slot containing t as available.
func (g *WeekGrid) IsFree(t time.Time) bool {
	return g.Days[DayIndex(t)][SlotIndex(t)]
}

// SetRange marks every slot in [startHour, endHour) on the given day.
func (g *WeekGrid) SetRange(day, startHour, endHour int, available bool) {
	if day < 0 || day > 6 {
		return
	}
	for h := startHour; h < endHour && h < 24; h++ {
		if h < 0 {
			continue
		}
		for q := 0; q < 4; q++ {
			g.Days[day][h*4+q] = available
		}
	}
}

// SchedulingRules are the per-user knobs consumed by the allocation walk.
type SchedulingRules struct {
	DailyMaxHours                    float64 `json:"daily_max_hours"`
	BreakAfterMinutes                int     `json:"break_after_minutes"`
	BreakDurationMinutes             int     `json:"break_duration_minutes"`
	MaxConsecutiveSameSubjectMinutes int     `json:"max_consecutive_same_subject_minutes"`
	// Preferred study window. Carried for the API surface; the
	// allocation walk does not consult it.
	PreferredStartHour  int `json:"preferred_start_hour"`
	PreferredEndHour    int `json:"preferred_end_hour"`
	SlotDurationMinutes int `json:"slot_duration_minutes"`

	// Sleep protection; the window wraps midnight when start > end.
	SleepStartHour int `json:"sleep_start_hour"`
	SleepEndHour   int `json:"sleep_end_hour"`

	LighterWeekends bool    `json:"lighter_weekends"`
	WeekendMaxHours float64 `json:"weekend_max_hours"`
}

// DefaultSchedulingRules returns the rule set applied to users who have
// never customized their rules.
func DefaultSchedulingRules() SchedulingRules {
	return SchedulingRules{
		DailyMaxHours:                    8.0,
		BreakAfterMinutes:                90,
		BreakDurationMinutes:             15,
		MaxConsecutiveSameSubjectMinutes: 120,
		PreferredStartHour:               8,
		PreferredEndHour:                 22,
		SlotDurationMinutes:              15,
		SleepStartHour:                   23,
		SleepEndHour:                     7,
		LighterWeekends:                  true,
		WeekendMaxHours:                  4.0,
	}
}

// InSleepWindow reports whether the given hour falls inside the sleep
// window, handling midnight wrap (e.g. 23..7).
func (r *SchedulingRules) InSleepWindow(hour int) bool {
	if r.SleepStartHour > r.SleepEndHour {
		return hour >= r.SleepStartHour || hour < r.SleepEndHour
	}
	return hour >= r.SleepStartHour && hour < r.SleepEndHour
}

// MaxHoursFor returns the daily cap applicable to the given day index.
func (r *SchedulingRules) MaxHoursFor(dayIndex int) float64 {
	if dayIndex >= 5 && r.LighterWeekends {
		return r.WeekendMaxHours
	}
	return r.DailyMaxHours
}

// Validate checks the hour-field ranges.
func (r *SchedulingRules) Validate() error {
	hours := map[string]int{
		"preferred_start_hour": r.PreferredStartHour,
		"preferred_end_hour":   r.PreferredEndHour,
		"sleep_start_hour":     r.SleepStartHour,
		"sleep_end_hour":       r.SleepEndHour,
	}
	for name, h := range hours {
		if h < 0 || h >= 24 {
			return fmt.Errorf("%s must be in [0,24), got %d", name, h)
		}
	}
	if r.DailyMaxHours < 0 || r.WeekendMaxHours < 0 {
		return fmt.Errorf("daily caps must be non-negative")
	}
	if r.BreakAfterMinutes < 0 || r.BreakDurationMinutes < 0 {
		return fmt.Errorf("break settings must be non-negative")
	}
	return nil
}
