package main

import (
	"time"

	"github.com/kpauljoseph/cartuli/pkg/logger"
)

type Report struct {
	StartTime     time.Time
	EndTime       time.Time
	Sheets        []string
	TotalCards    int
	TotalPages    int
	SkippedSheets int
	FailedSheets  int
}

func (r *Report) Print(log *logger.Logger) {
	log.Info("Processing complete:")
	log.Info("- Sheets created: %d", len(r.Sheets))
	for _, path := range r.Sheets {
		log.Info("    %s", path)
	}
	log.Info("- Total cards placed: %d", r.TotalCards)
	log.Info("- Total pages per side: %d", r.TotalPages)
	if r.SkippedSheets > 0 {
		log.Info("- Empty sheets skipped: %d", r.SkippedSheets)
	}
	if r.FailedSheets > 0 {
		log.Warn("- Sheets failed: %d", r.FailedSheets)
	}
	log.Info("- Duration: %s", r.EndTime.Sub(r.StartTime).Round(time.Millisecond))
}
