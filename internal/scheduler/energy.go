package scheduler

import (
	"math"

	"github.com/studyweave/studyweave/internal/domain"
)

// Focus-load weights: how much the energy score matters per load level.
// Deep-focus tasks are penalised heavily at low-energy hours; light
// tasks are almost unaffected.
var focusLoadWeight = map[domain.FocusLoad]float64{
	domain.FocusDeep:   0.9,
	domain.FocusMedium: 0.5,
	domain.FocusLight:  0.2,
}

// bellCurve produces a score centred on peakHour with the given spread,
// using circular hour distance so 23:00 is close to 01:00.
func bellCurve(peakHour, spread float64, hour int) float64 {
	distance := math.Min(math.Abs(float64(hour)-peakHour), 24-math.Abs(float64(hour)-peakHour))
	return math.Max(0.05, math.Exp(-0.5*math.Pow(distance/spread, 2)))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// PresetProfiles returns the three built-in energy profiles.
func PresetProfiles() map[domain.EnergyProfileType]domain.EnergyProfile {
	var morning, night, balanced [24]float64

	// Morning person: peaks around 9-10 AM, drops sharply after 9 PM.
	for h := 0; h < 24; h++ {
		score := bellCurve(9.5, 4.0, h)
		if h >= 21 || h < 5 {
			score *= 0.3
		}
		morning[h] = round2(math.Min(1.0, score))
	}

	// Night owl: peaks around 9-10 PM, low in the early morning.
	for h := 0; h < 24; h++ {
		score := bellCurve(21.0, 4.5, h)
		if h >= 5 && h <= 9 {
			score *= 0.4
		}
		night[h] = round2(math.Min(1.0, score))
	}

	// Balanced: two moderate peaks, late morning and early afternoon.
	for h := 0; h < 24; h++ {
		score := math.Max(bellCurve(10.0, 3.5, h), bellCurve(15.0, 3.0, h))
		if h >= 23 || h < 6 {
			score *= 0.2
		}
		balanced[h] = round2(math.Min(1.0, score))
	}

	return map[domain.EnergyProfileType]domain.EnergyProfile{
		domain.ProfileMorningPerson: {Type: domain.ProfileMorningPerson, HourlyScores: morning},
		domain.ProfileNightOwl:      {Type: domain.ProfileNightOwl, HourlyScores: night},
		domain.ProfileBalanced:      {Type: domain.ProfileBalanced, HourlyScores: balanced},
	}
}

// ScoreSlot scores an hour of the day (0.0-1.0) for scheduling a task
// with the given focus load. A neutral 0.5 baseline is blended toward
// the profile's hourly energy, weighted by how much the focus load
// cares about energy. Out-of-range hours score 0.
//
// The allocation walk does not consult this; it exists for ranking and
// annotation on top of the baseline chronological placement.
func ScoreSlot(hour int, focusLoad domain.FocusLoad, profile domain.EnergyProfile) float64 {
	if hour < 0 || hour > 23 {
		return 0.0
	}
	weight, ok := focusLoadWeight[focusLoad]
	if !ok {
		weight = 0.5
	}
	score := (1.0-weight)*0.5 + weight*profile.HourlyScores[hour]
	return round3(math.Max(0.0, math.Min(1.0, score)))
}
