package dataset

import (
	"fmt"
	"math/rand"

	"banca-insights/internal/core/domain"
)

// Generate synthesizes the two source tables from a seeded generator.
// The same seed and customer count always produce the same tables, so
// a deployment can be pinned to a reproducible dataset. Balances follow
// a normal distribution (mean 5000, sd 3000) clamped at zero; income
// and risk segments are drawn with fixed weights. Campaign metrics form
// a complete grid of five campaigns by twelve months. ActualReach is
// drawn independently of TargetAudience and may exceed it.
func Generate(seed int64, customers int) ([]domain.Customer, []domain.CampaignMonthlyMetric) {
	r := rand.New(rand.NewSource(seed))

	custs := make([]domain.Customer, 0, customers)
	regions := domain.Regions()
	for i := 0; i < customers; i++ {
		balance := r.NormFloat64()*3000 + 5000
		if balance < 0 {
			balance = 0
		}
		custs = append(custs, domain.Customer{
			ID:                  fmt.Sprintf("CUST_%04d", i),
			Age:                 18 + r.Intn(52),
			IncomeSegment:       pickIncome(r),
			ProductHoldings:     1 + r.Intn(5),
			LastTransactionDays: 1 + r.Intn(89),
			TotalBalance:        balance,
			RiskProfile:         pickRisk(r),
			Region:              regions[r.Intn(len(regions))],
			CampaignEligible:    r.Float64() < 0.7,
		})
	}

	names := domain.CampaignNames()
	metrics := make([]domain.CampaignMonthlyMetric, 0, len(names)*12)
	for _, name := range names {
		for month := 1; month <= 12; month++ {
			metrics = append(metrics, domain.CampaignMonthlyMetric{
				CampaignName:       name,
				Month:              month,
				TargetAudience:     500 + r.Intn(1500),
				ActualReach:        400 + r.Intn(1500),
				ConversionRate:     0.02 + r.Float64()*0.13,
				RevenueGenerated:   5000 + r.Float64()*45000,
				CostPerAcquisition: 50 + r.Float64()*150,
			})
		}
	}

	return custs, metrics
}

// pickIncome draws an income segment with weights 0.3/0.5/0.2.
func pickIncome(r *rand.Rand) domain.IncomeSegment {
	switch x := r.Float64(); {
	case x < 0.3:
		return domain.IncomeLow
	case x < 0.8:
		return domain.IncomeMedium
	default:
		return domain.IncomeHigh
	}
}

// pickRisk draws a risk profile with weights 0.6/0.3/0.1.
func pickRisk(r *rand.Rand) domain.RiskProfile {
	switch x := r.Float64(); {
	case x < 0.6:
		return domain.RiskLow
	case x < 0.9:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}
