package domain

// IncomeSegment buckets customers by declared income.
type IncomeSegment string

const (
	IncomeLow    IncomeSegment = "Low"
	IncomeMedium IncomeSegment = "Medium"
	IncomeHigh   IncomeSegment = "High"
)

// IncomeSegments returns all segments in their canonical order.
func IncomeSegments() []IncomeSegment {
	return []IncomeSegment{IncomeLow, IncomeMedium, IncomeHigh}
}

// Valid reports whether the segment is one of the known values.
func (s IncomeSegment) Valid() bool {
	switch s {
	case IncomeLow, IncomeMedium, IncomeHigh:
		return true
	}
	return false
}

// RiskProfile classifies a customer's risk appetite.
type RiskProfile string

const (
	RiskLow    RiskProfile = "Low"
	RiskMedium RiskProfile = "Medium"
	RiskHigh   RiskProfile = "High"
)

// Valid reports whether the profile is one of the known values.
func (p RiskProfile) Valid() bool {
	switch p {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Region is one of the bank's five operating regions.
type Region string

const (
	RegionNorth   Region = "North"
	RegionSouth   Region = "South"
	RegionEast    Region = "East"
	RegionWest    Region = "West"
	RegionCentral Region = "Central"
)

// Regions returns all regions in their canonical order.
func Regions() []Region {
	return []Region{RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral}
}

// Valid reports whether the region is one of the known values.
func (r Region) Valid() bool {
	switch r {
	case RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral:
		return true
	}
	return false
}

// Customer is a row in the customer table. The table is immutable after
// generation: rows are never mutated or deleted, only filtered views are
// derived from it. TotalBalance is never negative.
type Customer struct {
	ID                  string        `json:"customer_id"`
	Age                 int           `json:"age"`
	IncomeSegment       IncomeSegment `json:"income_segment"`
	ProductHoldings     int           `json:"product_holdings"`
	LastTransactionDays int           `json:"last_transaction_days"`
	TotalBalance        float64       `json:"total_balance"`
	RiskProfile         RiskProfile   `json:"risk_profile"`
	Region              Region        `json:"region"`
	CampaignEligible    bool          `json:"campaign_eligible"`
}
