package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayIndex_MondayFirst(t *testing.T) {
	// 2025-03-17 is a Monday.
	mon := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, DayIndex(mon.AddDate(0, 0, i)))
	}
}

func TestSlotIndex(t *testing.T) {
	tests := []struct {
		hour, minute, want int
	}{
		{0, 0, 0},
		{0, 14, 0},
		{0, 15, 1},
		{8, 0, 32},
		{12, 45, 51},
		{23, 45, 95},
	}
	for _, tt := range tests {
		ts := time.Date(2025, 3, 17, tt.hour, tt.minute, 0, 0, time.UTC)
		assert.Equal(t, tt.want, SlotIndex(ts), "%02d:%02d", tt.hour, tt.minute)
	}
}

func TestWeekGrid_SetRange(t *testing.T) {
	var g WeekGrid
	g.SetRange(0, 8, 10, true)

	assert.False(t, g.Days[0][31]) // 07:45
	assert.True(t, g.Days[0][32])  // 08:00
	assert.True(t, g.Days[0][39])  // 09:45
	assert.False(t, g.Days[0][40]) // 10:00
	// Other days untouched.
	assert.False(t, g.Days[1][32])
}

func TestSchedulingRules_InSleepWindow_Wrapping(t *testing.T) {
	r := DefaultSchedulingRules() // sleep 23..7

	assert.True(t, r.InSleepWindow(23))
	assert.True(t, r.InSleepWindow(3))
	assert.True(t, r.InSleepWindow(6))
	assert.False(t, r.InSleepWindow(7))
	assert.False(t, r.InSleepWindow(12))
	assert.False(t, r.InSleepWindow(22))
}

func TestSchedulingRules_InSleepWindow_NonWrapping(t *testing.T) {
	r := DefaultSchedulingRules()
	r.SleepStartHour = 1
	r.SleepEndHour = 9

	assert.False(t, r.InSleepWindow(0))
	assert.True(t, r.InSleepWindow(1))
	assert.True(t, r.InSleepWindow(8))
	assert.False(t, r.InSleepWindow(9))
	assert.False(t, r.InSleepWindow(23))
}

func TestSchedulingRules_MaxHoursFor(t *testing.T) {
	r := DefaultSchedulingRules()

	assert.Equal(t, 8.0, r.MaxHoursFor(0))
	assert.Equal(t, 4.0, r.MaxHoursFor(5))
	assert.Equal(t, 4.0, r.MaxHoursFor(6))

	r.LighterWeekends = false
	assert.Equal(t, 8.0, r.MaxHoursFor(6))
}

func TestSchedulingRules_Validate(t *testing.T) {
	r := DefaultSchedulingRules()
	assert.NoError(t, r.Validate())

	r.SleepStartHour = 24
	assert.Error(t, r.Validate())

	r = DefaultSchedulingRules()
	r.DailyMaxHours = -1
	assert.Error(t, r.Validate())
}

func TestTask_EffectiveEstimatedHours(t *testing.T) {
	task := Task{}
	assert.Equal(t, 1.0, task.EffectiveEstimatedHours())

	est := 2.5
	task.EstimatedHours = &est
	assert.Equal(t, 2.5, task.EffectiveEstimatedHours())
}

func TestTask_Apply_OnlySetFields(t *testing.T) {
	now := time.Now().UTC()
	task := Task{
		Title:           "Original",
		Difficulty:      3,
		Priority:        PriorityMedium,
		MinBlockMinutes: 30,
	}

	title := "Renamed"
	diff := 5
	task.Apply(TaskUpdate{Title: &title, Difficulty: &diff}, now)

	assert.Equal(t, "Renamed", task.Title)
	assert.Equal(t, 5, task.Difficulty)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, 30, task.MinBlockMinutes)
	assert.Equal(t, now, task.UpdatedAt)
}
