package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrCampaignAlreadyExists = errors.New("campaign already exists")
)

const (
	MessageStatusReady     = "READY"
	MessageStatusScheduled = "SCHEDULED"
	MessageStatusDue       = "DUE"
)

type Campaign struct {
	ID             string              `json:"id"`
	Lead           EnrichedLeadProfile `json:"lead_profile"`
	Product        ProductInfo         `json:"product"`
	ColdEmail      GeneratedMessage    `json:"cold_email"`
	FollowUps      []GeneratedMessage  `json:"followups"`
	Summary        CampaignSummary     `json:"campaign_summary"`
	Timeline       []TimelineEntry     `json:"execution_timeline"`
	SuccessMetrics SuccessMetrics      `json:"success_metrics"`
	NextSteps      []string            `json:"next_steps"`
	CreatedAt      time.Time           `json:"campaign_created_at"`
}

// Messages returns the cold email followed by the follow-ups.
func (c *Campaign) Messages() []GeneratedMessage {
	out := make([]GeneratedMessage, 0, 1+len(c.FollowUps))
	out = append(out, c.ColdEmail)
	return append(out, c.FollowUps...)
}

type CampaignSummary struct {
	TargetPersona           string   `json:"target_persona"`
	CompanySize             string   `json:"company_size"`
	PrimaryPainPoints       []string `json:"primary_pain_points"`
	PersonalizationApproach []string `json:"personalization_approach"`
	EmailSequenceCount      int      `json:"email_sequence_count"`
	TotalCampaignDuration   string   `json:"total_campaign_duration"`
	CommunicationStyle      string   `json:"communication_style"`
}

type TimelineEntry struct {
	Day       int         `json:"day"`
	Action    string      `json:"action"`
	EmailType MessageKind `json:"email_type"`
	Subject   string      `json:"subject"`
	Status    string      `json:"status"`
}

type SuccessMetrics struct {
	PrimaryMetrics []string          `json:"primary_metrics"`
	Benchmarks     map[string]string `json:"benchmarks"`
	TrackingPoints []string          `json:"tracking_points"`
}

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *Campaign) error
	CreateMessages(ctx context.Context, campaignID string, msgs []GeneratedMessage) error
	FindByID(ctx context.Context, id string) (*Campaign, error)
	Delete(ctx context.Context, id string) error
}
