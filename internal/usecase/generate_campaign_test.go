package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/generation"
)

func campaignInput() GenerateCampaignInput {
	return GenerateCampaignInput{
		Lead: entity.LeadProfile{
			Name:        "Jane Doe",
			Company:     "Acme",
			JobTitle:    "CTO",
			Industry:    "Healthcare Technology",
			CompanySize: 80,
			Email:       "jane@acme.io",
		},
		Product: entity.ProductInfo{
			Name:          "DevOps Acceleration Platform",
			Description:   "AI-powered DevOps platform",
			Benefits:      []string{"Reduce deployment time by 60%"},
			TargetOutcome: "Accelerate development velocity",
		},
	}
}

func happyGenerator() *MockGenerator {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, kindIs(entity.KindColdEmail)).Return(message(entity.KindColdEmail, "Faster deploys"), nil)
	gen.On("Generate", mock.Anything, followUpWithSubject(entity.KindFollowUp1, "Faster deploys")).Return(message(entity.KindFollowUp1, "A resource"), nil)
	gen.On("Generate", mock.Anything, followUpWithSubject(entity.KindFollowUp2, "Faster deploys")).Return(message(entity.KindFollowUp2, "Wrong person?"), nil)
	return gen
}

func TestGenerateCampaign_Success(t *testing.T) {
	gen := happyGenerator()
	repo := new(MockCampaignRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Campaign")).Return(nil)
	repo.On("CreateMessages", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(msgs []entity.GeneratedMessage) bool {
		return len(msgs) == 3
	})).Return(nil)
	exporter := new(MockExporter)
	exporter.On("Export", mock.Anything).Return("/tmp/campaigns/x", nil)

	uc := NewGenerateCampaignUseCase(gen, repo, exporter)
	out, err := uc.Execute(context.Background(), campaignInput())
	require.NoError(t, err)

	c := out.Campaign
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "/tmp/campaigns/x", out.ExportDir)
	assert.Equal(t, "Technical Leadership", c.Lead.RoleContext.Level)
	assert.Equal(t, "Faster deploys", c.ColdEmail.Subject)
	require.Len(t, c.FollowUps, 2)
	assert.Equal(t, entity.KindFollowUp1, c.FollowUps[0].Type)
	assert.Equal(t, entity.KindFollowUp2, c.FollowUps[1].Type)

	assert.Equal(t, "CTO at Acme", c.Summary.TargetPersona)
	assert.Equal(t, "mid-size company", c.Summary.CompanySize)
	assert.Equal(t, 3, c.Summary.EmailSequenceCount)
	assert.Equal(t, "7 days", c.Summary.TotalCampaignDuration)
	assert.Equal(t, "technical depth, solution-oriented", c.Summary.CommunicationStyle)

	require.Len(t, c.Timeline, 3)
	assert.Equal(t, 0, c.Timeline[0].Day)
	assert.Equal(t, "ready", c.Timeline[0].Status)
	assert.Equal(t, 3, c.Timeline[1].Day)
	assert.Equal(t, 7, c.Timeline[2].Day)
	assert.Equal(t, "scheduled", c.Timeline[2].Status)

	assert.Contains(t, c.NextSteps, "Prepare technical demo or proof of concept")
	assert.Equal(t, "20-25%", c.SuccessMetrics.Benchmarks["cold_email_open_rate"])

	gen.AssertNumberOfCalls(t, "Generate", 3)
	repo.AssertExpectations(t)
	exporter.AssertExpectations(t)
}

func TestGenerateCampaign_WithoutInfrastructure(t *testing.T) {
	out, err := NewGenerateCampaignUseCase(happyGenerator(), nil, nil).Execute(context.Background(), campaignInput())
	require.NoError(t, err)
	assert.Empty(t, out.ExportDir)
	assert.Len(t, out.Campaign.Messages(), 3)
}

func TestGenerateCampaign_ColdEmailFailureStopsEverything(t *testing.T) {
	gen := new(MockGenerator)
	genErr := &generation.Error{Kind: generation.KindEmptyResponse, MessageKind: entity.KindColdEmail}
	gen.On("Generate", mock.Anything, kindIs(entity.KindColdEmail)).Return(entity.GeneratedMessage{}, genErr)
	repo := new(MockCampaignRepository)

	out, err := NewGenerateCampaignUseCase(gen, repo, nil).Execute(context.Background(), campaignInput())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeGenerationFailed, ErrorCode(err))
	assert.True(t, errors.Is(err, generation.ErrEmptyResponse))
	assert.Equal(t, generation.KindEmptyResponse, generation.KindOf(err))
	assert.Contains(t, err.Error(), "cold_email")

	gen.AssertNumberOfCalls(t, "Generate", 1)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerateCampaign_FollowUpFailureReturnsNoCampaign(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, kindIs(entity.KindColdEmail)).Return(message(entity.KindColdEmail, "Hi"), nil)
	gen.On("Generate", mock.Anything, kindIs(entity.KindFollowUp1)).Return(message(entity.KindFollowUp1, "Again"), nil)
	gen.On("Generate", mock.Anything, kindIs(entity.KindFollowUp2)).Return(entity.GeneratedMessage{},
		&generation.Error{Kind: generation.KindMalformedResponse, MessageKind: entity.KindFollowUp2, Err: errors.New("bad json")})

	out, err := NewGenerateCampaignUseCase(gen, nil, nil).Execute(context.Background(), campaignInput())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, generation.ErrMalformedResponse))
}

func TestGenerateCampaign_ValidationError(t *testing.T) {
	input := campaignInput()
	input.Lead.Email = "not-an-email"
	input.Lead.CompanySize = -5
	gen := new(MockGenerator)

	_, err := NewGenerateCampaignUseCase(gen, nil, nil).Execute(context.Background(), input)
	require.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, CodeValidation, ErrorCode(err))
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "company_size")
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateCampaign_PersistFailureRollsBack(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateMessages", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))
	repo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	_, err := NewGenerateCampaignUseCase(happyGenerator(), repo, nil).Execute(context.Background(), campaignInput())
	require.Error(t, err)
	assert.Equal(t, CodeDatabase, ErrorCode(err))
	repo.AssertCalled(t, "Delete", mock.Anything, mock.AnythingOfType("string"))
}

func TestGenerateCampaign_ExportFailureIsNotFatal(t *testing.T) {
	exporter := new(MockExporter)
	exporter.On("Export", mock.Anything).Return("", errors.New("read-only fs"))

	out, err := NewGenerateCampaignUseCase(happyGenerator(), nil, exporter).Execute(context.Background(), campaignInput())
	require.NoError(t, err)
	assert.Empty(t, out.ExportDir)
}

func TestBuildNextSteps(t *testing.T) {
	steps := buildNextSteps(entity.EnrichedLeadProfile{RoleContext: entity.RoleContext{Level: "C-Level"}})
	assert.Len(t, steps, 6)
	assert.Contains(t, steps, "Research recent company announcements or funding")

	steps = buildNextSteps(entity.EnrichedLeadProfile{RoleContext: entity.RoleContext{Level: "Human Resources"}})
	assert.Len(t, steps, 4)
}

func TestPreviewPrompt(t *testing.T) {
	out, err := PreviewPrompt(PreviewPromptInput{
		Lead:            campaignInput().Lead,
		Product:         campaignInput().Product,
		Kind:            entity.KindFollowUp1,
		OriginalSubject: "Faster deploys",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Request.SendAfterDays)
	assert.Contains(t, out.Request.User, "Subject: Faster deploys")
	assert.Equal(t, "Technical Leadership", out.Lead.RoleContext.Level)

	_, err = PreviewPrompt(PreviewPromptInput{Kind: "bogus"})
	require.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestGetCampaign(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrCampaignNotFound)
	repo.On("FindByID", mock.Anything, "c-1").Return(&entity.Campaign{ID: "c-1"}, nil)

	uc := NewGetCampaignUseCase(repo)

	_, err := uc.Execute(context.Background(), "missing")
	assert.Equal(t, CodeNotFound, ErrorCode(err))

	c, err := uc.Execute(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", c.ID)
}
