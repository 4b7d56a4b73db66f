package commands

import (
	"time"

	"tabuddy/pkg/config"
)

// CleanCutoff computes the clean sweep cutoff from today and the
// configured grace period: assignments due strictly before the cutoff
// are swept.
func CleanCutoff(cfg config.Config) time.Time {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -cfg.CleanHorizonDays)
}
