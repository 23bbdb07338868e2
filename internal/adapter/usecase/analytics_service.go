package usecase

import (
	"banca-insights/internal/core/domain"
	"banca-insights/internal/core/port"

	"github.com/montanaflynn/stats"
)

// AnalyticsService implements port.AnalyticsUseCase. It reads the
// immutable source tables through the dataset port and keeps the only
// mutable state, per-session audiences and schedules, in a session
// store. One instance serves all concurrent requests.
type AnalyticsService struct {
	repo     port.DatasetRepository
	sessions *sessionStore
}

// NewAnalyticsService creates a service over the given dataset.
func NewAnalyticsService(repo port.DatasetRepository) *AnalyticsService {
	return &AnalyticsService{
		repo:     repo,
		sessions: newSessionStore(),
	}
}

// compareMetrics are the metrics accepted by CompareCampaigns.
var compareMetrics = map[string]func(domain.CampaignMonthlyMetric) float64{
	"conversion_rate":      func(m domain.CampaignMonthlyMetric) float64 { return m.ConversionRate },
	"revenue_generated":    func(m domain.CampaignMonthlyMetric) float64 { return m.RevenueGenerated },
	"cost_per_acquisition": func(m domain.CampaignMonthlyMetric) float64 { return m.CostPerAcquisition },
	"actual_reach":         func(m domain.CampaignMonthlyMetric) float64 { return float64(m.ActualReach) },
}

// distributionMetrics are the metrics accepted by MetricDistributions.
var distributionMetrics = map[string]func(domain.CampaignMonthlyMetric) float64{
	"conversion_rate":      func(m domain.CampaignMonthlyMetric) float64 { return m.ConversionRate },
	"revenue_generated":    func(m domain.CampaignMonthlyMetric) float64 { return m.RevenueGenerated },
	"cost_per_acquisition": func(m domain.CampaignMonthlyMetric) float64 { return m.CostPerAcquisition },
}

// meanOf returns the arithmetic mean, or 0 for an empty input. The
// zero-for-empty convention keeps statistics over empty result sets
// well defined instead of propagating an error.
func meanOf(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// sumOf returns the sum, or 0 for an empty input.
func sumOf(values []float64) float64 {
	s, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return s
}
