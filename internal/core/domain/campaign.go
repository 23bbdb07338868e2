package domain

var campaignNames = []string{
	"Credit Card Premium",
	"Personal Loan",
	"Mortgage",
	"Investment Fund",
	"Insurance",
}

// CampaignNames returns the fixed campaign enumeration in its canonical
// order. Ranking ties are broken by this order.
func CampaignNames() []string {
	names := make([]string, len(campaignNames))
	copy(names, campaignNames)
	return names
}

// KnownCampaign reports whether name belongs to the fixed enumeration.
func KnownCampaign(name string) bool {
	for _, n := range campaignNames {
		if n == name {
			return true
		}
	}
	return false
}

// CampaignMonthlyMetric is a row in the campaign performance table. Each
// campaign has exactly twelve rows, one per calendar month. ActualReach
// is not constrained against TargetAudience; the source data allows
// reach to exceed target.
type CampaignMonthlyMetric struct {
	CampaignName       string  `json:"campaign_name"`
	Month              int     `json:"month"`
	TargetAudience     int     `json:"target_audience"`
	ActualReach        int     `json:"actual_reach"`
	ConversionRate     float64 `json:"conversion_rate"`
	RevenueGenerated   float64 `json:"revenue_generated"`
	CostPerAcquisition float64 `json:"cost_per_acquisition"`
}
