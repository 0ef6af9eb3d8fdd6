package contract

import "fmt"

// FreeSlot is a contiguous window of mutual availability on one weekday.
type FreeSlot struct {
	Day             string `json:"day"`
	StartHour       int    `json:"start_hour"`
	StartMinute     int    `json:"start_minute"`
	EndHour         int    `json:"end_hour"`
	EndMinute       int    `json:"end_minute"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Window renders the slot as "HH:MM-HH:MM".
func (s FreeSlot) Window() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.StartHour, s.StartMinute, s.EndHour, s.EndMinute)
}
