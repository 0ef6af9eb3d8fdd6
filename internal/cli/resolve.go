package cli

import (
	"fmt"
	"strconv"
	"time"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// parseDateTime accepts "YYYY-MM-DD HH:MM" or a bare date (midnight).
func parseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", value)
}

func validateDate(value string) error {
	if value == "" {
		return fmt.Errorf("required")
	}
	_, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
