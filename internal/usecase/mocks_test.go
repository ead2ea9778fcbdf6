package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/prompt"
)

type MockGenerator struct {
	mock.Mock
	mu sync.Mutex
}

func (m *MockGenerator) Generate(ctx context.Context, req prompt.GenerationRequest) (entity.GeneratedMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	args := m.Called(ctx, req)
	return args.Get(0).(entity.GeneratedMessage), args.Error(1)
}

type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) CreateMessages(ctx context.Context, campaignID string, msgs []entity.GeneratedMessage) error {
	args := m.Called(ctx, campaignID, msgs)
	return args.Error(0)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id string) (*entity.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(c *entity.Campaign) (string, error) {
	args := m.Called(c)
	return args.String(0), args.Error(1)
}

var testNow = time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

func message(kind entity.MessageKind, subject string) entity.GeneratedMessage {
	msg := entity.GeneratedMessage{Type: kind, Subject: subject, Body: "body of " + subject, GeneratedAt: testNow}
	if kind.IsFollowUp() {
		days := kind.SendAfterDays()
		send := testNow.AddDate(0, 0, days)
		msg.SendAfterDays = &days
		msg.SuggestedSendDate = &send
	}
	return msg
}

func kindIs(kind entity.MessageKind) any {
	return mock.MatchedBy(func(req prompt.GenerationRequest) bool { return req.Kind == kind })
}

func followUpWithSubject(kind entity.MessageKind, subject string) any {
	return mock.MatchedBy(func(req prompt.GenerationRequest) bool {
		return req.Kind == kind && strings.Contains(req.User, "Subject: "+subject)
	})
}
