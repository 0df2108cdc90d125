package model

import "time"

// ProcessSummary captures metrics from one batch of processed objects.
type ProcessSummary struct {
	BatchID    string
	Processed  int
	Skipped    int
	Failed     int
	FailedKeys []string
	Duration   time.Duration
}
