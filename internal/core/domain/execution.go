package domain

import "time"

// Channel is the communication channel a campaign is delivered over.
type Channel string

const (
	ChannelEmail      Channel = "Email"
	ChannelSMS        Channel = "SMS"
	ChannelPush       Channel = "Push Notification"
	ChannelDirectMail Channel = "Direct Mail"
)

// Valid reports whether the channel is one of the known values.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelPush, ChannelDirectMail:
		return true
	}
	return false
}

// Priority orders campaigns in the execution pipeline.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ScheduleStatus is the lifecycle state of a scheduled campaign. No
// delivery happens in this system; statuses other than scheduled only
// appear in the mock execution history.
type ScheduleStatus string

const (
	StatusScheduled  ScheduleStatus = "scheduled"
	StatusReady      ScheduleStatus = "ready"
	StatusInProgress ScheduleStatus = "in_progress"
	StatusPaused     ScheduleStatus = "paused"
	StatusCompleted  ScheduleStatus = "completed"
)

// ScheduledCampaign is an entry in the execution console. AudienceSize
// is a snapshot of the session audience at scheduling time;
// AudienceAttached is false when the session had no generated audience.
type ScheduledCampaign struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ExecutionDate    time.Time      `json:"execution_date"`
	Channel          Channel        `json:"channel"`
	Priority         Priority       `json:"priority"`
	AudienceSize     int            `json:"audience_size"`
	AudienceAttached bool           `json:"audience_attached"`
	MessageTemplate  string         `json:"message_template,omitempty"`
	Status           ScheduleStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}
