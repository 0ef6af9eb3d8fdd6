package scheduler

import (
	"sort"
	"time"

	"github.com/studyweave/studyweave/internal/domain"
)

const slotMinutes = domain.SlotMinutes

// Block is the engine's output contract: one contiguous run of slots
// assigned to a task. Persistence is the caller's responsibility.
type Block struct {
	TaskID     int64
	Start      time.Time
	End        time.Time
	BlockIndex int
	Pinned     bool
}

// DurationMinutes returns the block length in whole minutes.
func (b Block) DurationMinutes() int {
	return int(b.End.Sub(b.Start).Minutes())
}

// priorityRank returns a sort priority (lower = more important).
func priorityRank(p domain.Priority) int {
	switch p {
	case domain.PriorityCritical:
		return 0
	case domain.PriorityHigh:
		return 1
	case domain.PriorityMedium:
		return 2
	case domain.PriorityLow:
		return 3
	default:
		return 2
	}
}

// sortTasks orders tasks by due date ascending, then priority
// descending. Urgency dominates importance: priority only breaks ties
// among equal deadlines. The sort is stable so equal tasks keep input
// order.
func sortTasks(tasks []*domain.Task) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return priorityRank(a.Priority) < priorityRank(b.Priority)
	})
	return sorted
}

func difficultyMultiplier(difficulty int) float64 {
	return 1.0 + float64(difficulty-3)*0.1
}

// slotUsable reports whether the 15-minute slot starting at t is inside
// the availability grid and outside the sleep window.
func slotUsable(t time.Time, grid *domain.WeekGrid, rules *domain.SchedulingRules) bool {
	if !grid.IsFree(t) {
		return false
	}
	return !rules.InSleepWindow(t.Hour())
}

// roundUpToSlot rounds t up to the next 15-minute boundary and strips
// sub-minute precision.
func roundUpToSlot(t time.Time) time.Time {
	rem := t.Minute() % slotMinutes
	if rem != 0 {
		t = t.Add(time.Duration(slotMinutes-rem) * time.Minute)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func startOfNextDay(t time.Time) time.Time {
	n := t.AddDate(0, 0, 1)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

// GeneratePlan allocates concrete time blocks to the active tasks.
//
// The walk is earliest-deadline-first: each task is scheduled as fully
// as possible before the next one is considered, so a later
// high-priority task can be starved of near-term slots by an
// earlier-deadline task. Pinned blocks are treated as immovable
// obstacles and returned unchanged. For fixed inputs the output is
// fully deterministic.
func GeneratePlan(
	tasks []*domain.Task,
	grid *domain.WeekGrid,
	rules *domain.SchedulingRules,
	pinned []Block,
	planStart time.Time,
) []Block {
	var active []*domain.Task
	for _, t := range tasks {
		if t.Status == domain.TaskActive {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return append([]Block(nil), pinned...)
	}

	now := roundUpToSlot(planStart)
	sorted := sortTasks(active)

	// Planning horizon: max(latest deadline + 14 days, start + 30 days).
	// The buffer lets overflow work still land somewhere.
	latest := sorted[0].DueDate
	for _, t := range sorted {
		if t.DueDate.After(latest) {
			latest = t.DueDate
		}
	}
	horizon := latest.AddDate(0, 0, 14)
	if alt := now.AddDate(0, 0, 30); alt.After(horizon) {
		horizon = alt
	}

	occupied := make(map[int64]struct{})
	for _, b := range pinned {
		for s := b.Start; s.Before(b.End); s = s.Add(slotMinutes * time.Minute) {
			occupied[s.Unix()] = struct{}{}
		}
	}

	dailyHours := make(map[string]float64)
	lastSubject := make(map[string]*int64)

	results := append([]Block(nil), pinned...)

	for _, task := range sorted {
		multiplier := difficultyMultiplier(task.Difficulty)
		totalNeeded := int(task.EffectiveEstimatedHours() * multiplier * 60)

		minBlock := task.MinBlockMinutes
		maxBlock := task.MaxBlockMinutes
		if !task.Splittable {
			minBlock = totalNeeded
			maxBlock = totalNeeded
		}

		// Minimum-viable-progress floor: even an overloaded task gets
		// at least this much before being abandoned.
		minProgress := minBlock
		if totalNeeded < minProgress {
			minProgress = totalNeeded
		}

		allocated := 0
		blockIndex := 0
		slot := now

		for allocated < totalNeeded && slot.Before(horizon) {
			if !slot.Before(task.DueDate) {
				// Past the deadline the walk keeps going until minimum
				// viable progress is met, then abandons the task.
				if allocated >= minProgress {
					break
				}
			}

			if !slotUsable(slot, grid, rules) {
				slot = slot.Add(slotMinutes * time.Minute)
				continue
			}
			if _, busy := occupied[slot.Unix()]; busy {
				slot = slot.Add(slotMinutes * time.Minute)
				continue
			}

			dayKey := dateKey(slot)
			if dailyHours[dayKey] >= rules.MaxHoursFor(domain.DayIndex(slot)) {
				slot = startOfNextDay(slot)
				continue
			}

			// Greedily extend a contiguous run from this slot.
			remaining := totalNeeded - allocated
			targetSlots := remaining
			if maxBlock < targetSlots {
				targetSlots = maxBlock
			}
			targetSlots /= slotMinutes
			if ms := minBlock / slotMinutes; targetSlots < ms {
				targetSlots = ms
			}

			blockSlots := 0
			consecutiveSameSubject := 0
			check := slot
			for blockSlots < targetSlots && check.Before(horizon) {
				if _, busy := occupied[check.Unix()]; busy {
					break
				}
				if !slotUsable(check, grid, rules) {
					break
				}

				checkKey := dateKey(check)
				checkHours := dailyHours[checkKey] + float64(blockSlots*slotMinutes)/60
				if checkHours >= rules.MaxHoursFor(domain.DayIndex(check)) {
					break
				}

				if task.CourseID != nil {
					if last := lastSubject[checkKey]; last != nil && *last == *task.CourseID {
						consecutiveSameSubject += slotMinutes
						if consecutiveSameSubject > rules.MaxConsecutiveSameSubjectMinutes {
							break
						}
					}
				}

				blockSlots++
				check = check.Add(slotMinutes * time.Minute)
			}

			minSlots := minBlock / slotMinutes
			if blockSlots < minSlots && allocated+blockSlots*slotMinutes < totalNeeded {
				// Run too short; advance one slot and retry.
				slot = slot.Add(slotMinutes * time.Minute)
				continue
			}
			if blockSlots == 0 {
				slot = slot.Add(slotMinutes * time.Minute)
				continue
			}

			blockStart := slot
			blockEnd := slot.Add(time.Duration(blockSlots*slotMinutes) * time.Minute)
			results = append(results, Block{
				TaskID:     task.ID,
				Start:      blockStart,
				End:        blockEnd,
				BlockIndex: blockIndex,
			})

			for s := blockStart; s.Before(blockEnd); s = s.Add(slotMinutes * time.Minute) {
				occupied[s.Unix()] = struct{}{}
			}

			blockMinutes := blockSlots * slotMinutes
			allocated += blockMinutes
			dailyHours[dayKey] += float64(blockMinutes) / 60
			lastSubject[dayKey] = task.CourseID
			blockIndex++

			// Reserve a break after long blocks. Break slots are
			// occupied but consume no task time.
			if blockMinutes >= rules.BreakAfterMinutes {
				breakSlots := rules.BreakDurationMinutes / slotMinutes
				s := blockEnd
				for i := 0; i < breakSlots; i++ {
					occupied[s.Unix()] = struct{}{}
					s = s.Add(slotMinutes * time.Minute)
				}
				slot = s
			} else {
				slot = blockEnd
			}
		}
	}

	return results
}
