package usecase

import (
	"context"
	"math/rand"
	"testing"

	"banca-insights/internal/core/domain"

	"github.com/stretchr/testify/require"
)

// Two campaigns with disjoint value ranges: aggregates must never mix
// rows across campaigns.
func TestCampaignSummaryNoLeakage(t *testing.T) {
	metrics := twelveMonths("Personal Loan", 0.10, 100, 10, 50)
	metrics = append(metrics, twelveMonths("Mortgage", 0.90, 9000, 900, 5000)...)
	svc := NewAnalyticsService(&fixtureRepo{metrics: metrics})
	ctx := context.Background()

	loan, err := svc.CampaignSummary(ctx, "Personal Loan")
	require.NoError(t, err)
	require.Equal(t, 1200.0, loan.TotalRevenue)
	require.InDelta(t, 0.10, loan.AverageConversionRate, 1e-9)
	require.Equal(t, 600, loan.TotalReach)
	require.InDelta(t, 10.0, loan.AverageCostPerAcquisition, 1e-9)
	require.Len(t, loan.Monthly, 12)
	for _, m := range loan.Monthly {
		require.Equal(t, "Personal Loan", m.CampaignName)
	}

	mortgage, err := svc.CampaignSummary(ctx, "Mortgage")
	require.NoError(t, err)
	require.Equal(t, 9000.0*12, mortgage.TotalRevenue)
	require.Equal(t, 5000*12, mortgage.TotalReach)
}

func TestCampaignSummaryUnknownName(t *testing.T) {
	svc := NewAnalyticsService(&fixtureRepo{metrics: twelveMonths("Mortgage", 0.1, 100, 10, 50)})
	_, err := svc.CampaignSummary(context.Background(), "Crypto Fund")
	require.ErrorIs(t, err, domain.ErrUnknownCampaign)
}

func TestRankCampaigns(t *testing.T) {
	var metrics []domain.CampaignMonthlyMetric
	convs := map[string]float64{
		"Credit Card Premium": 0.05,
		"Personal Loan":       0.12,
		"Mortgage":            0.03,
		"Investment Fund":     0.12,
		"Insurance":           0.08,
	}
	for name, conv := range convs {
		metrics = append(metrics, twelveMonths(name, conv, 100, 10, 50)...)
	}
	svc := NewAnalyticsService(&fixtureRepo{metrics: metrics})

	ranks, err := svc.RankCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, ranks, 5)

	got := make([]string, len(ranks))
	for i, r := range ranks {
		got[i] = r.CampaignName
	}
	// Personal Loan and Investment Fund tie at 0.12; enumeration order
	// puts Personal Loan first.
	require.Equal(t, []string{"Personal Loan", "Investment Fund", "Insurance", "Credit Card Premium", "Mortgage"}, got)
}

// Shuffling the source rows must not change the ranking: the mean is
// order independent and ties fall back to enumeration order.
func TestRankCampaignsStableUnderPermutation(t *testing.T) {
	var metrics []domain.CampaignMonthlyMetric
	for i, name := range domain.CampaignNames() {
		metrics = append(metrics, twelveMonths(name, 0.02*float64(i+1), 100, 10, 50)...)
	}
	svc := NewAnalyticsService(&fixtureRepo{metrics: metrics})
	baseline, err := svc.RankCampaigns(context.Background())
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]domain.CampaignMonthlyMetric, len(metrics))
		copy(shuffled, metrics)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		svc := NewAnalyticsService(&fixtureRepo{metrics: shuffled})
		ranks, err := svc.RankCampaigns(context.Background())
		require.NoError(t, err)
		require.Equal(t, baseline, ranks, "trial %d", trial)
	}
}

func TestCompareCampaigns(t *testing.T) {
	metrics := twelveMonths("Personal Loan", 0.10, 100, 40, 700)
	metrics = append(metrics, twelveMonths("Mortgage", 0.20, 50, 80, 300)...)
	svc := NewAnalyticsService(&fixtureRepo{metrics: metrics})
	ctx := context.Background()

	byRevenue, err := svc.CompareCampaigns(ctx, "revenue_generated")
	require.NoError(t, err)
	require.Equal(t, "Personal Loan", byRevenue[0].CampaignName)
	require.InDelta(t, 100.0, byRevenue[0].Value, 1e-9)

	byCPA, err := svc.CompareCampaigns(ctx, "cost_per_acquisition")
	require.NoError(t, err)
	require.Equal(t, "Mortgage", byCPA[0].CampaignName)

	byReach, err := svc.CompareCampaigns(ctx, "actual_reach")
	require.NoError(t, err)
	require.Equal(t, "Personal Loan", byReach[0].CampaignName)
	require.InDelta(t, 700.0, byReach[0].Value, 1e-9)

	_, err = svc.CompareCampaigns(ctx, "roi")
	require.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestMetricDistributions(t *testing.T) {
	rows := make([]domain.CampaignMonthlyMetric, 0, 12)
	for month := 1; month <= 12; month++ {
		rows = append(rows, domain.CampaignMonthlyMetric{
			CampaignName:     "Insurance",
			Month:            month,
			RevenueGenerated: float64(month * 100),
		})
	}
	svc := NewAnalyticsService(&fixtureRepo{metrics: rows})

	dists, err := svc.MetricDistributions(context.Background(), "revenue_generated")
	require.NoError(t, err)
	require.Len(t, dists, 5, "one entry per enumerated campaign")

	var insurance *struct {
		min, median, max float64
		values           int
	}
	for _, d := range dists {
		if d.CampaignName != "Insurance" {
			require.Empty(t, d.Values, "campaigns without rows carry no values")
			continue
		}
		insurance = &struct {
			min, median, max float64
			values           int
		}{d.Min, d.Median, d.Max, len(d.Values)}
		require.LessOrEqual(t, d.Q1, d.Median)
		require.LessOrEqual(t, d.Median, d.Q3)
	}
	require.NotNil(t, insurance)
	require.Equal(t, 12, insurance.values)
	require.Equal(t, 100.0, insurance.min)
	require.Equal(t, 650.0, insurance.median)
	require.Equal(t, 1200.0, insurance.max)

	// actual_reach is a comparison metric, not a distribution metric.
	_, err = svc.MetricDistributions(context.Background(), "actual_reach")
	require.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestCampaignsEnumeration(t *testing.T) {
	svc := NewAnalyticsService(&fixtureRepo{})
	names, err := svc.Campaigns(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Credit Card Premium", "Personal Loan", "Mortgage", "Investment Fund", "Insurance"}, names)
}
