package domain

import "fmt"

// AudienceCriteria is a conjunction of predicates over the customer
// table. All conditions must hold for a customer to be included; there
// is no OR or NOT composition. Empty IncomeLevels or Regions make the
// membership test unsatisfiable, so the resulting audience is empty.
type AudienceCriteria struct {
	MinBalance   float64         `json:"min_balance"`
	MaxAge       int             `json:"max_age"`
	IncomeLevels []IncomeSegment `json:"income_levels"`
	Regions      []Region        `json:"regions"`
	MinProducts  int             `json:"min_products"`
}

// Validate checks bounds and enum membership. Empty sets pass: they are
// a degenerate empty-result case, not an error.
func (c AudienceCriteria) Validate() error {
	if c.MinBalance < 0 {
		return fmt.Errorf("%w: min_balance must be non-negative, got %v", ErrInvalidCriteria, c.MinBalance)
	}
	if c.MaxAge < 18 {
		return fmt.Errorf("%w: max_age must be at least 18, got %d", ErrInvalidCriteria, c.MaxAge)
	}
	if c.MinProducts < 1 || c.MinProducts > 5 {
		return fmt.Errorf("%w: min_products must be within 1..5, got %d", ErrInvalidCriteria, c.MinProducts)
	}
	for _, s := range c.IncomeLevels {
		if !s.Valid() {
			return fmt.Errorf("%w: unknown income segment %q", ErrInvalidCriteria, s)
		}
	}
	for _, r := range c.Regions {
		if !r.Valid() {
			return fmt.Errorf("%w: unknown region %q", ErrInvalidCriteria, r)
		}
	}
	return nil
}

// Matches reports whether the customer satisfies every criterion.
func (c AudienceCriteria) Matches(cust Customer) bool {
	if !cust.CampaignEligible {
		return false
	}
	if cust.TotalBalance < c.MinBalance {
		return false
	}
	if cust.Age > c.MaxAge {
		return false
	}
	if cust.ProductHoldings < c.MinProducts {
		return false
	}
	if !containsSegment(c.IncomeLevels, cust.IncomeSegment) {
		return false
	}
	return containsRegion(c.Regions, cust.Region)
}

func containsSegment(set []IncomeSegment, s IncomeSegment) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsRegion(set []Region, r Region) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}
