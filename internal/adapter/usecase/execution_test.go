package usecase

import (
	"context"
	"testing"
	"time"

	"banca-insights/internal/core/domain"
	"banca-insights/internal/core/port"

	"github.com/stretchr/testify/require"
)

func validSchedule() port.ScheduleRequest {
	return port.ScheduleRequest{
		Name:          "Q1_2024_CreditCard_Promo",
		ExecutionDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Channel:       domain.ChannelEmail,
		Priority:      domain.PriorityMedium,
	}
}

func TestScheduleCampaign(t *testing.T) {
	svc := NewAnalyticsService(&fixtureRepo{customers: specCustomers()})
	ctx := context.Background()

	_, err := svc.GenerateAudience(ctx, "s1", specCriteria())
	require.NoError(t, err)

	req := validSchedule()
	req.UseCurrentAudience = true
	sc, err := svc.ScheduleCampaign(ctx, "s1", req)
	require.NoError(t, err)
	require.NotEmpty(t, sc.ID)
	require.Equal(t, domain.StatusScheduled, sc.Status)
	require.True(t, sc.AudienceAttached)
	require.Equal(t, 1, sc.AudienceSize, "snapshot of the session audience")
}

// A session without an audience can still schedule; the entry is just
// flagged as having no audience attached.
func TestScheduleCampaignWithoutAudience(t *testing.T) {
	svc := NewAnalyticsService(&fixtureRepo{})

	req := validSchedule()
	req.UseCurrentAudience = true
	sc, err := svc.ScheduleCampaign(context.Background(), "s1", req)
	require.NoError(t, err)
	require.False(t, sc.AudienceAttached)
	require.Zero(t, sc.AudienceSize)
}

func TestScheduleCampaignValidation(t *testing.T) {
	svc := NewAnalyticsService(&fixtureRepo{})
	ctx := context.Background()

	cases := map[string]func(*port.ScheduleRequest){
		"empty name":       func(r *port.ScheduleRequest) { r.Name = "" },
		"zero date":        func(r *port.ScheduleRequest) { r.ExecutionDate = time.Time{} },
		"unknown channel":  func(r *port.ScheduleRequest) { r.Channel = "Carrier Pigeon" },
		"unknown priority": func(r *port.ScheduleRequest) { r.Priority = "Urgent" },
	}
	for name, mutate := range cases {
		req := validSchedule()
		mutate(&req)
		_, err := svc.ScheduleCampaign(ctx, "s1", req)
		require.ErrorIs(t, err, domain.ErrInvalidSchedule, name)
	}
}

func TestPipeline(t *testing.T) {
	svc := NewAnalyticsService(&fixtureRepo{})
	ctx := context.Background()

	before, err := svc.Pipeline(ctx, "s1")
	require.NoError(t, err)
	require.Zero(t, before.Scheduled)
	require.Equal(t, 2, before.Completed)
	require.Equal(t, 1, before.InProgress)
	require.Equal(t, 1, before.Paused)
	require.Len(t, before.Recent, 4, "mock history only")

	_, err = svc.ScheduleCampaign(ctx, "s1", validSchedule())
	require.NoError(t, err)
	_, err = svc.ScheduleCampaign(ctx, "s1", validSchedule())
	require.NoError(t, err)

	after, err := svc.Pipeline(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 2, after.Scheduled)
	require.Len(t, after.Recent, 6)

	// Another session sees only the mock history.
	other, err := svc.Pipeline(ctx, "s2")
	require.NoError(t, err)
	require.Zero(t, other.Scheduled)
	require.Len(t, other.Recent, 4)
}
