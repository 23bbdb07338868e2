package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"banca-insights/internal/core/domain"
	"banca-insights/internal/export"
)

// GenerateAudience applies the criteria as a single stable pass over the
// customer table: the result preserves generation order and contains
// exactly the rows satisfying every predicate. The audience replaces
// whatever the session held before.
func (s *AnalyticsService) GenerateAudience(ctx context.Context, sessionID string, criteria domain.AudienceCriteria) (*domain.Audience, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	customers, err := s.repo.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	matched := make([]domain.Customer, 0)
	for _, c := range customers {
		if criteria.Matches(c) {
			matched = append(matched, c)
		}
	}

	audience := &domain.Audience{
		Criteria:    criteria,
		Customers:   matched,
		Stats:       audienceStats(matched),
		GeneratedAt: time.Now().UTC(),
	}
	s.sessions.setAudience(sessionID, audience)
	return audience, nil
}

// CurrentAudience returns the session's cached audience.
func (s *AnalyticsService) CurrentAudience(ctx context.Context, sessionID string) (*domain.Audience, error) {
	a := s.sessions.audience(sessionID)
	if a == nil {
		return nil, domain.ErrNoAudience
	}
	return a, nil
}

// ExportAudience writes the session's cached audience to w as CSV.
func (s *AnalyticsService) ExportAudience(ctx context.Context, sessionID string, w io.Writer) error {
	a, err := s.CurrentAudience(ctx, sessionID)
	if err != nil {
		return err
	}
	return export.WriteAudience(w, a.Customers)
}

// audienceStats computes the descriptive statistics for a result set.
// An empty set reports count 0 and zero means.
func audienceStats(customers []domain.Customer) domain.AudienceStats {
	balances := make([]float64, len(customers))
	products := make([]float64, len(customers))
	ages := make([]float64, len(customers))
	for i, c := range customers {
		balances[i] = c.TotalBalance
		products[i] = float64(c.ProductHoldings)
		ages[i] = float64(c.Age)
	}
	return domain.AudienceStats{
		Count:        len(customers),
		MeanBalance:  meanOf(balances),
		MeanProducts: meanOf(products),
		MeanAge:      meanOf(ages),
	}
}
