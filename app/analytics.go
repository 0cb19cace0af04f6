package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"triagelock/internal/errors"
	"triagelock/models"
)

// SessionStats aggregates a session's completed analyses for the console
// footer and exports
type SessionStats struct {
	Runs               int      `json:"runs"`
	DistinctDomains    int      `json:"distinct_domains"`
	AvgLatencySeconds  float64  `json:"avg_latency_seconds"`
	TotalManualMinutes int      `json:"total_manual_minutes"`
	TimeSavedMinutes   float64  `json:"time_saved_minutes"`
	Domains            []string `json:"domains"`
}

// ROIProjection extrapolates session performance to an annual volume.
// Business days per year is fixed at 260.
type ROIProjection struct {
	DailyVolume        int     `json:"daily_volume"`
	HourlyCost         float64 `json:"hourly_cost"`
	AnnualEvents       int     `json:"annual_events"`
	ManualHoursPerYear float64 `json:"manual_hours_per_year"`
	AutoHoursPerYear   float64 `json:"auto_hours_per_year"`
	HoursSavedPerYear  float64 `json:"hours_saved_per_year"`
	AnnualSavings      float64 `json:"annual_savings"`
}

const businessDaysPerYear = 260

// Stats computes session aggregates. A session with no completed analyses
// yields zero stats, not an error.
func (s *TriageService) Stats(ctx context.Context, sessionID uuid.UUID) (*SessionStats, error) {
	entries, err := s.history.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return computeStats(entries), nil
}

func computeStats(entries []models.HistoryEntry) *SessionStats {
	out := &SessionStats{Domains: []string{}}
	if len(entries) == 0 {
		return out
	}

	latencies := make([]float64, len(entries))
	seen := make(map[string]bool)
	for i, e := range entries {
		latencies[i] = e.LatencySeconds
		out.TotalManualMinutes += e.ManualMinutes
		if !seen[string(e.Domain)] {
			seen[string(e.Domain)] = true
			out.Domains = append(out.Domains, string(e.Domain))
		}
	}

	mean, err := stats.Mean(latencies)
	if err != nil {
		mean = 0
	}
	totalLatency, err := stats.Sum(latencies)
	if err != nil {
		totalLatency = 0
	}

	out.Runs = len(entries)
	out.DistinctDomains = len(out.Domains)
	out.AvgLatencySeconds = mean
	out.TimeSavedMinutes = float64(out.TotalManualMinutes) - totalLatency/60.0
	return out
}

// ProjectROI extrapolates the session's observed latency and manual-review
// baseline to an annual volume. Requires at least one completed analysis.
func (s *TriageService) ProjectROI(ctx context.Context, sessionID uuid.UUID, dailyVolume int, hourlyCost float64) (*ROIProjection, error) {
	if dailyVolume <= 0 {
		return nil, errors.InvalidInput("daily volume must be positive")
	}
	if hourlyCost <= 0 {
		return nil, errors.InvalidInput("hourly cost must be positive")
	}

	entries, err := s.history.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.InvalidInput("run at least one analysis before projecting ROI")
	}

	st := computeStats(entries)
	avgManualMinutes := float64(st.TotalManualMinutes) / float64(st.Runs)

	annual := dailyVolume * businessDaysPerYear
	manualHours := float64(annual) * avgManualMinutes / 60.0
	autoHours := float64(annual) * st.AvgLatencySeconds / 3600.0
	saved := manualHours - autoHours
	if saved < 0 {
		saved = 0
	}

	return &ROIProjection{
		DailyVolume:        dailyVolume,
		HourlyCost:         hourlyCost,
		AnnualEvents:       annual,
		ManualHoursPerYear: manualHours,
		AutoHoursPerYear:   autoHours,
		HoursSavedPerYear:  saved,
		AnnualSavings:      saved * hourlyCost,
	}, nil
}
