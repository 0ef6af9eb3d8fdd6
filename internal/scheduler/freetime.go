package scheduler

import (
	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
)

// UserAvailability pairs one user's grid with their scheduling rules.
type UserAvailability struct {
	Grid  domain.WeekGrid
	Rules domain.SchedulingRules
}

// FindMutualFreeSlots intersects the availability of all given users.
//
// For each weekday every user's grid is ANDed slot-by-slot, with any
// slot inside a user's sleep window forced unavailable regardless of
// the raw grid value. Maximal contiguous runs of at least
// minDurationMinutes are reported. Days are independent; runs never
// merge across midnight. Fewer than two users yields an empty result.
func FindMutualFreeSlots(users []UserAvailability, minDurationMinutes int) []contract.FreeSlot {
	if len(users) < 2 {
		return []contract.FreeSlot{}
	}

	results := []contract.FreeSlot{}

	for day := 0; day < 7; day++ {
		var mutual [domain.SlotsPerDay]bool
		for i := range mutual {
			mutual[i] = true
		}

		for _, u := range users {
			for slot := 0; slot < domain.SlotsPerDay; slot++ {
				if !u.Grid.Days[day][slot] {
					mutual[slot] = false
					continue
				}
				hour := slot * domain.SlotMinutes / 60
				if u.Rules.InSleepWindow(hour) {
					mutual[slot] = false
				}
			}
		}

		runStart := -1
		for slot := 0; slot <= domain.SlotsPerDay; slot++ {
			free := slot < domain.SlotsPerDay && mutual[slot]

			if free && runStart < 0 {
				runStart = slot
			} else if !free && runStart >= 0 {
				duration := (slot - runStart) * domain.SlotMinutes
				if duration >= minDurationMinutes {
					startMin := runStart * domain.SlotMinutes
					endMin := slot * domain.SlotMinutes
					results = append(results, contract.FreeSlot{
						Day:             domain.DayNames[day],
						StartHour:       startMin / 60,
						StartMinute:     startMin % 60,
						EndHour:         endMin / 60,
						EndMinute:       endMin % 60,
						DurationMinutes: duration,
					})
				}
				runStart = -1
			}
		}
	}

	return results
}
