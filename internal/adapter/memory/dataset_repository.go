package memory

import (
	"context"
	"slices"

	"banca-insights/internal/core/domain"
)

// DatasetRepository implements port.DatasetRepository over two in-memory
// tables. The tables are fixed at construction; accessors hand out
// copies so no caller can mutate the shared dataset.
type DatasetRepository struct {
	customers []domain.Customer
	metrics   []domain.CampaignMonthlyMetric
}

// NewDatasetRepository returns a repository over the given tables.
func NewDatasetRepository(customers []domain.Customer, metrics []domain.CampaignMonthlyMetric) *DatasetRepository {
	return &DatasetRepository{
		customers: slices.Clone(customers),
		metrics:   slices.Clone(metrics),
	}
}

// Customers returns a copy of the customer table in generation order.
func (r *DatasetRepository) Customers(ctx context.Context) ([]domain.Customer, error) {
	return slices.Clone(r.customers), nil
}

// CampaignMetrics returns a copy of the campaign performance table.
func (r *DatasetRepository) CampaignMetrics(ctx context.Context) ([]domain.CampaignMonthlyMetric, error) {
	return slices.Clone(r.metrics), nil
}
