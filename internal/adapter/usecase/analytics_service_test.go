package usecase

import (
	"context"
	"slices"

	"banca-insights/internal/core/domain"
)

// fixtureRepo is a hand-rolled port.DatasetRepository over literal
// fixtures, so the engine is tested against fixed rows instead of
// generated randomness.
type fixtureRepo struct {
	customers []domain.Customer
	metrics   []domain.CampaignMonthlyMetric
}

func (r *fixtureRepo) Customers(ctx context.Context) ([]domain.Customer, error) {
	return slices.Clone(r.customers), nil
}

func (r *fixtureRepo) CampaignMetrics(ctx context.Context) ([]domain.CampaignMonthlyMetric, error) {
	return slices.Clone(r.metrics), nil
}

// specCustomers is the documented three-customer scenario: only A
// passes the reference criteria.
func specCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: "A", TotalBalance: 2000, Age: 30, IncomeSegment: domain.IncomeMedium, Region: domain.RegionNorth, ProductHoldings: 2, CampaignEligible: true},
		{ID: "B", TotalBalance: 500, Age: 40, IncomeSegment: domain.IncomeHigh, Region: domain.RegionSouth, ProductHoldings: 1, CampaignEligible: true},
		{ID: "C", TotalBalance: 3000, Age: 50, IncomeSegment: domain.IncomeMedium, Region: domain.RegionNorth, ProductHoldings: 3, CampaignEligible: false},
	}
}

func specCriteria() domain.AudienceCriteria {
	return domain.AudienceCriteria{
		MinBalance:   1000,
		MaxAge:       45,
		IncomeLevels: []domain.IncomeSegment{domain.IncomeMedium, domain.IncomeHigh},
		Regions:      []domain.Region{domain.RegionNorth, domain.RegionSouth},
		MinProducts:  1,
	}
}

// twelveMonths builds a full year of rows for one campaign with constant
// metric values.
func twelveMonths(name string, conv, revenue, cpa float64, reach int) []domain.CampaignMonthlyMetric {
	rows := make([]domain.CampaignMonthlyMetric, 0, 12)
	for month := 1; month <= 12; month++ {
		rows = append(rows, domain.CampaignMonthlyMetric{
			CampaignName:       name,
			Month:              month,
			ActualReach:        reach,
			ConversionRate:     conv,
			RevenueGenerated:   revenue,
			CostPerAcquisition: cpa,
		})
	}
	return rows
}
