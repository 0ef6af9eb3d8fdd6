package contract

import "fmt"

func formatSummary(added, moved, deleted int) string {
	return fmt.Sprintf("Added %d, moved %d, deleted %d blocks", added, moved, deleted)
}
