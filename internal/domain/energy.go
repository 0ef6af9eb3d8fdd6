package domain

// EnergyProfile maps hour-of-day to a 0-1 cognitive capacity score.
// HourlyScores[0] is midnight.
type EnergyProfile struct {
	Type         EnergyProfileType `json:"profile_type"`
	HourlyScores [24]float64       `json:"hourly_scores"`
}
