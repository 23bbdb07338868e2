package usecase

import (
	"context"
	"fmt"

	"banca-insights/internal/core/domain"
	"banca-insights/internal/core/port"
)

// Overview computes the dashboard KPI block: customer totals, dataset
// means, revenue and conversion aggregates, and the distribution tables
// the overview panels render. Segments and regions appear in canonical
// order, including empty ones.
func (s *AnalyticsService) Overview(ctx context.Context) (*port.Overview, error) {
	customers, err := s.repo.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	metrics, err := s.repo.CampaignMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load campaign metrics: %w", err)
	}

	ov := &port.Overview{TotalCustomers: len(customers)}

	balances := make([]float64, len(customers))
	for i, c := range customers {
		balances[i] = c.TotalBalance
		if c.CampaignEligible {
			ov.EligibleCustomers++
		}
	}
	ov.AverageBalance = meanOf(balances)

	revenues := make([]float64, len(metrics))
	conversions := make([]float64, len(metrics))
	for i, m := range metrics {
		revenues[i] = m.RevenueGenerated
		conversions[i] = m.ConversionRate
	}
	ov.TotalRevenue = sumOf(revenues)
	ov.AverageConversionRate = meanOf(conversions)

	for _, seg := range domain.IncomeSegments() {
		var ages, segBalances, products []float64
		for _, c := range customers {
			if c.IncomeSegment != seg {
				continue
			}
			ages = append(ages, float64(c.Age))
			segBalances = append(segBalances, c.TotalBalance)
			products = append(products, float64(c.ProductHoldings))
		}
		ov.IncomeDistribution = append(ov.IncomeDistribution, port.SegmentCount{
			Segment: seg,
			Count:   len(ages),
		})
		ov.Demographics = append(ov.Demographics, port.SegmentDemographics{
			Segment:      seg,
			Count:        len(ages),
			MeanAge:      meanOf(ages),
			MeanBalance:  meanOf(segBalances),
			MeanProducts: meanOf(products),
		})
	}

	for _, region := range domain.Regions() {
		count := 0
		for _, c := range customers {
			if c.Region == region {
				count++
			}
		}
		ov.RegionDistribution = append(ov.RegionDistribution, port.RegionCount{
			Region: region,
			Count:  count,
		})
	}

	ov.CampaignPerformance, err = s.RankCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return ov, nil
}
