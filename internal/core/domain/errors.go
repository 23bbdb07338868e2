package domain

import "errors"

var (
	// ErrInvalidCriteria marks audience criteria with out-of-range bounds
	// or unknown enum members. Empty membership sets are not invalid;
	// they produce an empty audience.
	ErrInvalidCriteria = errors.New("invalid audience criteria")

	// ErrUnknownCampaign is returned when a campaign name is outside the
	// fixed enumeration.
	ErrUnknownCampaign = errors.New("unknown campaign")

	// ErrUnknownMetric is returned when a comparison or distribution
	// metric name is not supported.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrNoAudience is returned when a session has no generated audience
	// to read or export.
	ErrNoAudience = errors.New("no audience generated")

	// ErrInvalidSchedule marks a campaign schedule request with a missing
	// name, zero date or unknown channel/priority.
	ErrInvalidSchedule = errors.New("invalid schedule request")
)
