package port

import (
	"context"
	"io"
	"time"

	"banca-insights/internal/core/domain"
)

// AnalyticsUseCase defines the business operations exposed by the
// analytics core. This interface is the primary port into the
// application domain; the HTTP layer and the terminal dashboard are its
// consumers. Session IDs scope the mutable audience state so concurrent
// users never observe each other's results.
type AnalyticsUseCase interface {
	// Overview computes the dashboard KPIs and distributions over both
	// source tables.
	Overview(ctx context.Context) (*Overview, error)

	// GenerateAudience filters the customer table with the given
	// criteria, caches the result under the session and returns it.
	// Invalid criteria yield domain.ErrInvalidCriteria.
	GenerateAudience(ctx context.Context, sessionID string, criteria domain.AudienceCriteria) (*domain.Audience, error)

	// CurrentAudience returns the session's cached audience, or
	// domain.ErrNoAudience when none has been generated.
	CurrentAudience(ctx context.Context, sessionID string) (*domain.Audience, error)

	// ExportAudience serializes the session's cached audience to w as
	// CSV, header first, field order matching the customer schema.
	ExportAudience(ctx context.Context, sessionID string, w io.Writer) error

	// Campaigns returns the fixed campaign enumeration.
	Campaigns(ctx context.Context) ([]string, error)

	// CampaignSummary aggregates the twelve monthly rows of one
	// campaign. Names outside the enumeration yield
	// domain.ErrUnknownCampaign.
	CampaignSummary(ctx context.Context, name string) (*CampaignSummary, error)

	// RankCampaigns orders campaigns by mean conversion rate,
	// descending; exact ties keep enumeration order.
	RankCampaigns(ctx context.Context) ([]CampaignRank, error)

	// CompareCampaigns orders campaigns by the mean of the chosen
	// metric, descending. Supported metrics: conversion_rate,
	// revenue_generated, cost_per_acquisition, actual_reach.
	CompareCampaigns(ctx context.Context, metric string) ([]CampaignRank, error)

	// MetricDistributions returns, per campaign, the twelve monthly
	// values of the chosen metric with a five-number summary. Supported
	// metrics: conversion_rate, revenue_generated, cost_per_acquisition.
	MetricDistributions(ctx context.Context, metric string) ([]MetricDistribution, error)

	// ScheduleCampaign records a simulated campaign execution in the
	// session. No delivery takes place.
	ScheduleCampaign(ctx context.Context, sessionID string, req ScheduleRequest) (*domain.ScheduledCampaign, error)

	// Pipeline summarizes the execution console: status counts and
	// recent entries, mock history first, then the session's own
	// scheduled campaigns.
	Pipeline(ctx context.Context, sessionID string) (*PipelineSummary, error)
}

// Overview carries the dashboard KPI block. It is a DTO for the
// presentation layer and holds no domain behaviour.
type Overview struct {
	TotalCustomers        int                   `json:"total_customers"`
	EligibleCustomers     int                   `json:"eligible_customers"`
	AverageBalance        float64               `json:"average_balance"`
	TotalRevenue          float64               `json:"total_revenue"`
	AverageConversionRate float64               `json:"average_conversion_rate"`
	IncomeDistribution    []SegmentCount        `json:"income_distribution"`
	Demographics          []SegmentDemographics `json:"demographics"`
	RegionDistribution    []RegionCount         `json:"region_distribution"`
	CampaignPerformance   []CampaignRank        `json:"campaign_performance"`
}

// SegmentCount is a customer count per income segment.
type SegmentCount struct {
	Segment domain.IncomeSegment `json:"segment"`
	Count   int                  `json:"count"`
}

// SegmentDemographics holds per-segment means over the customer table.
type SegmentDemographics struct {
	Segment      domain.IncomeSegment `json:"segment"`
	Count        int                  `json:"count"`
	MeanAge      float64              `json:"mean_age"`
	MeanBalance  float64              `json:"mean_balance"`
	MeanProducts float64              `json:"mean_products"`
}

// RegionCount is a customer count per region.
type RegionCount struct {
	Region domain.Region `json:"region"`
	Count  int           `json:"count"`
}

// CampaignRank pairs a campaign with the mean of a ranking metric.
type CampaignRank struct {
	CampaignName string  `json:"campaign_name"`
	Value        float64 `json:"value"`
}

// CampaignSummary aggregates one campaign's twelve monthly rows.
type CampaignSummary struct {
	CampaignName              string                         `json:"campaign_name"`
	TotalRevenue              float64                        `json:"total_revenue"`
	AverageConversionRate     float64                        `json:"average_conversion_rate"`
	TotalReach                int                            `json:"total_reach"`
	AverageCostPerAcquisition float64                        `json:"average_cost_per_acquisition"`
	Monthly                   []domain.CampaignMonthlyMetric `json:"monthly"`
}

// MetricDistribution holds one campaign's twelve monthly values for a
// metric, in month order, with a five-number summary for box-plot style
// rendering.
type MetricDistribution struct {
	CampaignName string    `json:"campaign_name"`
	Values       []float64 `json:"values"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
}

// ScheduleRequest describes a simulated campaign execution.
type ScheduleRequest struct {
	Name               string
	ExecutionDate      time.Time
	Channel            domain.Channel
	Priority           domain.Priority
	UseCurrentAudience bool
	MessageTemplate    string
}

// PipelineSummary is the execution console view: entry counts by status
// and the recent entries themselves.
type PipelineSummary struct {
	Scheduled  int                        `json:"scheduled"`
	Ready      int                        `json:"ready"`
	InProgress int                        `json:"in_progress"`
	Paused     int                        `json:"paused"`
	Completed  int                        `json:"completed"`
	Recent     []domain.ScheduledCampaign `json:"recent"`
}
