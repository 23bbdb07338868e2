package usecase

import (
	"context"
	"fmt"
	"sort"

	"banca-insights/internal/core/domain"
	"banca-insights/internal/core/port"

	"github.com/montanaflynn/stats"
)

// Campaigns returns the fixed campaign enumeration.
func (s *AnalyticsService) Campaigns(ctx context.Context) ([]string, error) {
	return domain.CampaignNames(), nil
}

// CampaignSummary aggregates the twelve monthly rows of one campaign.
// All aggregates are unweighted sums and means over that campaign's rows
// only.
func (s *AnalyticsService) CampaignSummary(ctx context.Context, name string) (*port.CampaignSummary, error) {
	if !domain.KnownCampaign(name) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCampaign, name)
	}
	rows, err := s.campaignRows(ctx, name)
	if err != nil {
		return nil, err
	}

	revenues := make([]float64, len(rows))
	conversions := make([]float64, len(rows))
	cpas := make([]float64, len(rows))
	totalReach := 0
	for i, m := range rows {
		revenues[i] = m.RevenueGenerated
		conversions[i] = m.ConversionRate
		cpas[i] = m.CostPerAcquisition
		totalReach += m.ActualReach
	}

	return &port.CampaignSummary{
		CampaignName:              name,
		TotalRevenue:              sumOf(revenues),
		AverageConversionRate:     meanOf(conversions),
		TotalReach:                totalReach,
		AverageCostPerAcquisition: meanOf(cpas),
		Monthly:                   rows,
	}, nil
}

// RankCampaigns orders campaigns by mean conversion rate, descending.
func (s *AnalyticsService) RankCampaigns(ctx context.Context) ([]port.CampaignRank, error) {
	return s.rankBy(ctx, compareMetrics["conversion_rate"])
}

// CompareCampaigns orders campaigns by the mean of the chosen metric,
// descending.
func (s *AnalyticsService) CompareCampaigns(ctx context.Context, metric string) ([]port.CampaignRank, error) {
	value, ok := compareMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, metric)
	}
	return s.rankBy(ctx, value)
}

// MetricDistributions returns the per-campaign monthly values of the
// chosen metric with a five-number summary, campaigns in enumeration
// order.
func (s *AnalyticsService) MetricDistributions(ctx context.Context, metric string) ([]port.MetricDistribution, error) {
	value, ok := distributionMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMetric, metric)
	}
	metrics, err := s.repo.CampaignMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load campaign metrics: %w", err)
	}

	dists := make([]port.MetricDistribution, 0, len(domain.CampaignNames()))
	for _, name := range domain.CampaignNames() {
		values := make([]float64, 0, 12)
		for _, m := range metrics {
			if m.CampaignName == name {
				values = append(values, value(m))
			}
		}
		dists = append(dists, distribution(name, values))
	}
	return dists, nil
}

// rankBy computes the mean of a metric per campaign and sorts the
// campaigns by it, descending. The sort is stable so exact ties keep
// the enumeration order; the mean is order-independent, so shuffling
// the source rows never changes the ranking.
func (s *AnalyticsService) rankBy(ctx context.Context, value func(domain.CampaignMonthlyMetric) float64) ([]port.CampaignRank, error) {
	metrics, err := s.repo.CampaignMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load campaign metrics: %w", err)
	}

	ranks := make([]port.CampaignRank, 0, len(domain.CampaignNames()))
	for _, name := range domain.CampaignNames() {
		values := make([]float64, 0, 12)
		for _, m := range metrics {
			if m.CampaignName == name {
				values = append(values, value(m))
			}
		}
		ranks = append(ranks, port.CampaignRank{CampaignName: name, Value: meanOf(values)})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Value > ranks[j].Value })
	return ranks, nil
}

// campaignRows selects one campaign's rows, preserving table order.
func (s *AnalyticsService) campaignRows(ctx context.Context, name string) ([]domain.CampaignMonthlyMetric, error) {
	metrics, err := s.repo.CampaignMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load campaign metrics: %w", err)
	}
	rows := make([]domain.CampaignMonthlyMetric, 0, 12)
	for _, m := range metrics {
		if m.CampaignName == name {
			rows = append(rows, m)
		}
	}
	return rows, nil
}

// distribution builds the five-number summary for one campaign.
func distribution(name string, values []float64) port.MetricDistribution {
	d := port.MetricDistribution{CampaignName: name, Values: values}
	if len(values) == 0 {
		return d
	}
	d.Min, _ = stats.Min(values)
	d.Max, _ = stats.Max(values)
	d.Median, _ = stats.Median(values)
	if q, err := stats.Quartile(values); err == nil {
		d.Q1 = q.Q1
		d.Q3 = q.Q3
	}
	return d
}
