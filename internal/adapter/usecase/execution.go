package usecase

import (
	"context"
	"fmt"
	"time"

	"banca-insights/internal/core/domain"
	"banca-insights/internal/core/port"

	"github.com/google/uuid"
)

// mockHistory is the fixed execution history shown in the console. The
// execution panel is simulated: nothing is ever delivered, these entries
// only seed the pipeline view.
var mockHistory = []domain.ScheduledCampaign{
	{
		ID:            "hist-0001",
		Name:          "Credit Card Q4",
		ExecutionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Channel:       domain.ChannelEmail,
		Priority:      domain.PriorityHigh,
		AudienceSize:  15234,
		Status:        domain.StatusCompleted,
	},
	{
		ID:            "hist-0002",
		Name:          "Personal Loan Promo",
		ExecutionDate: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		Channel:       domain.ChannelSMS,
		Priority:      domain.PriorityMedium,
		AudienceSize:  8567,
		Status:        domain.StatusInProgress,
	},
	{
		ID:            "hist-0003",
		Name:          "Mortgage Special",
		ExecutionDate: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		Channel:       domain.ChannelEmail,
		Priority:      domain.PriorityMedium,
		AudienceSize:  12890,
		Status:        domain.StatusCompleted,
	},
	{
		ID:            "hist-0004",
		Name:          "Investment Fund",
		ExecutionDate: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Channel:       domain.ChannelDirectMail,
		Priority:      domain.PriorityLow,
		AudienceSize:  5432,
		Status:        domain.StatusPaused,
	},
}

// ScheduleCampaign validates and records a simulated campaign execution
// in the session. When the request asks for the current audience, the
// session's audience size is snapshotted at scheduling time; a session
// without an audience is not an error, the entry is just flagged as
// having none attached.
func (s *AnalyticsService) ScheduleCampaign(ctx context.Context, sessionID string, req port.ScheduleRequest) (*domain.ScheduledCampaign, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidSchedule)
	}
	if req.ExecutionDate.IsZero() {
		return nil, fmt.Errorf("%w: execution_date is required", domain.ErrInvalidSchedule)
	}
	if !req.Channel.Valid() {
		return nil, fmt.Errorf("%w: unknown channel %q", domain.ErrInvalidSchedule, req.Channel)
	}
	if !req.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidSchedule, req.Priority)
	}

	sc := domain.ScheduledCampaign{
		ID:              uuid.NewString(),
		Name:            req.Name,
		ExecutionDate:   req.ExecutionDate,
		Channel:         req.Channel,
		Priority:        req.Priority,
		MessageTemplate: req.MessageTemplate,
		Status:          domain.StatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}
	if req.UseCurrentAudience {
		if a := s.sessions.audience(sessionID); a != nil {
			sc.AudienceSize = a.Stats.Count
			sc.AudienceAttached = true
		}
	}

	s.sessions.appendSchedule(sessionID, sc)
	return &sc, nil
}

// Pipeline summarizes the execution console for a session: the mock
// history followed by the session's own scheduled campaigns, with entry
// counts per status.
func (s *AnalyticsService) Pipeline(ctx context.Context, sessionID string) (*port.PipelineSummary, error) {
	recent := make([]domain.ScheduledCampaign, 0, len(mockHistory))
	recent = append(recent, mockHistory...)
	recent = append(recent, s.sessions.schedules(sessionID)...)

	summary := &port.PipelineSummary{Recent: recent}
	for _, sc := range recent {
		switch sc.Status {
		case domain.StatusScheduled:
			summary.Scheduled++
		case domain.StatusReady:
			summary.Ready++
		case domain.StatusInProgress:
			summary.InProgress++
		case domain.StatusPaused:
			summary.Paused++
		case domain.StatusCompleted:
			summary.Completed++
		}
	}
	return summary, nil
}
