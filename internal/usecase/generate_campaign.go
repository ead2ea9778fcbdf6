package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/ligue-outreach/internal/enrichment"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/prompt"
)

type GenerateCampaignUseCase struct {
	Generator MessageGenerator
	Repo      entity.CampaignRepositoryInterface
	Exporter  DraftExporter
	now       func() time.Time
}

// NewGenerateCampaignUseCase wires the assembler. repo and exporter are
// optional; a nil value skips persistence or export.
func NewGenerateCampaignUseCase(
	generator MessageGenerator,
	repo entity.CampaignRepositoryInterface,
	exporter DraftExporter,
) *GenerateCampaignUseCase {
	return &GenerateCampaignUseCase{
		Generator: generator,
		Repo:      repo,
		Exporter:  exporter,
		now:       time.Now,
	}
}

func (uc *GenerateCampaignUseCase) Execute(ctx context.Context, input GenerateCampaignInput) (*GenerateCampaignOutput, error) {
	errs := append(ValidateLead(input.Lead), ValidateProduct(input.Product)...)
	if len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	lead, err := enrichment.Enrich(input.Lead)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	log.Printf("[CAMPAIGN] Enriched %s at %s (%s, %s)", lead.Name, lead.Company, lead.RoleContext.Level, lead.CompanySizeCategory)

	cold, err := uc.generate(ctx, lead, input.Product, entity.KindColdEmail, nil)
	if err != nil {
		return nil, err
	}

	followUps, err := uc.generateFollowUps(ctx, lead, input.Product, cold)
	if err != nil {
		return nil, err
	}

	campaign := &entity.Campaign{
		ID:             uuid.New().String(),
		Lead:           lead,
		Product:        input.Product,
		ColdEmail:      cold,
		FollowUps:      followUps,
		Summary:        buildSummary(lead, followUps),
		Timeline:       buildTimeline(cold, followUps),
		SuccessMetrics: defaultSuccessMetrics(),
		NextSteps:      buildNextSteps(lead),
		CreatedAt:      uc.now(),
	}

	if uc.Repo != nil {
		if err := uc.persist(ctx, campaign); err != nil {
			return nil, err
		}
	}

	out := &GenerateCampaignOutput{Campaign: campaign}
	if uc.Exporter != nil {
		dir, err := uc.Exporter.Export(campaign)
		if err != nil {
			log.Printf("[CAMPAIGN] WARNING: draft export for %s failed: %v", campaign.ID, err)
		} else {
			out.ExportDir = dir
		}
	}

	log.Printf("[CAMPAIGN] Campaign %s ready for %s (%d emails)", campaign.ID, lead.Name, campaign.Summary.EmailSequenceCount)
	return out, nil
}

// generateFollowUps runs both follow-ups concurrently. They depend only on
// the cold email, not on each other.
func (uc *GenerateCampaignUseCase) generateFollowUps(ctx context.Context, lead entity.EnrichedLeadProfile, product entity.ProductInfo, cold entity.GeneratedMessage) ([]entity.GeneratedMessage, error) {
	kinds := []entity.MessageKind{entity.KindFollowUp1, entity.KindFollowUp2}
	out := make([]entity.GeneratedMessage, len(kinds))
	fc := &prompt.FollowUpContext{OriginalSubject: cold.Subject}

	g, gCtx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			msg, err := uc.generate(gCtx, lead, product, kind, fc)
			if err != nil {
				return err
			}
			out[i] = msg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *GenerateCampaignUseCase) generate(ctx context.Context, lead entity.EnrichedLeadProfile, product entity.ProductInfo, kind entity.MessageKind, fc *prompt.FollowUpContext) (entity.GeneratedMessage, error) {
	req, err := prompt.Build(lead, product, kind, fc)
	if err != nil {
		return entity.GeneratedMessage{}, &TechnicalError{Code: CodeGenerationFailed, Message: err.Error(), Err: err}
	}

	msg, err := uc.Generator.Generate(ctx, req)
	if err != nil {
		return entity.GeneratedMessage{}, &TechnicalError{Code: CodeGenerationFailed, Message: err.Error(), Err: err}
	}
	return msg, nil
}

func (uc *GenerateCampaignUseCase) persist(ctx context.Context, c *entity.Campaign) error {
	txn := NewTransaction()
	txn.AddOperation("create_campaign",
		func(ctx context.Context) error { return uc.Repo.Create(ctx, c) },
		func(ctx context.Context) error { return uc.Repo.Delete(ctx, c.ID) },
	)
	txn.AddOperation("create_messages",
		func(ctx context.Context) error { return uc.Repo.CreateMessages(ctx, c.ID, c.Messages()) },
		nil,
	)

	if err := txn.Execute(ctx); err != nil {
		return &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist campaign: " + err.Error(),
			Err:     err,
		}
	}
	return nil
}

func buildSummary(lead entity.EnrichedLeadProfile, followUps []entity.GeneratedMessage) entity.CampaignSummary {
	title := lead.JobTitle
	if title == "" {
		title = "Professional"
	}
	company := lead.Company
	if company == "" {
		company = "target company"
	}
	style := lead.RoleContext.CommunicationStyle
	if style == "" {
		style = "professional"
	}

	duration := 0
	for _, f := range followUps {
		if f.SendAfterDays != nil && *f.SendAfterDays > duration {
			duration = *f.SendAfterDays
		}
	}

	return entity.CampaignSummary{
		TargetPersona:           fmt.Sprintf("%s at %s", title, company),
		CompanySize:             string(lead.CompanySizeCategory),
		PrimaryPainPoints:       append([]string(nil), lead.LikelyPainPoints...),
		PersonalizationApproach: append([]string(nil), lead.PersonalizationHooks...),
		EmailSequenceCount:      1 + len(followUps),
		TotalCampaignDuration:   fmt.Sprintf("%d days", duration),
		CommunicationStyle:      style,
	}
}

func buildTimeline(cold entity.GeneratedMessage, followUps []entity.GeneratedMessage) []entity.TimelineEntry {
	timeline := []entity.TimelineEntry{{
		Day:       0,
		Action:    "Send cold email",
		EmailType: entity.KindColdEmail,
		Subject:   cold.Subject,
		Status:    "ready",
	}}
	for _, f := range followUps {
		day := f.Type.SendAfterDays()
		if f.SendAfterDays != nil {
			day = *f.SendAfterDays
		}
		timeline = append(timeline, entity.TimelineEntry{
			Day:       day,
			Action:    "Send " + string(f.Type),
			EmailType: f.Type,
			Subject:   f.Subject,
			Status:    "scheduled",
		})
	}
	return timeline
}

func defaultSuccessMetrics() entity.SuccessMetrics {
	return entity.SuccessMetrics{
		PrimaryMetrics: []string{"open_rate", "reply_rate", "meeting_scheduled", "positive_response"},
		Benchmarks: map[string]string{
			"cold_email_open_rate":     "20-25%",
			"cold_email_reply_rate":    "2-5%",
			"followup_engagement_lift": "10-15%",
			"meeting_conversion":       "1-3%",
		},
		TrackingPoints: []string{
			"Email delivered",
			"Email opened",
			"Links clicked",
			"Reply received",
			"Meeting scheduled",
			"Opt-out requested",
		},
	}
}

func buildNextSteps(lead entity.EnrichedLeadProfile) []string {
	steps := []string{
		"Review and customize emails before sending",
		"Set up email tracking and analytics",
		"Prepare for potential responses and objections",
		"Schedule follow-up reminders",
	}

	switch lead.RoleContext.Level {
	case enrichment.LevelCLevel:
		steps = append(steps,
			"Prepare executive-level meeting agenda if they respond",
			"Research recent company announcements or funding",
		)
	case enrichment.LevelTechLeadership:
		steps = append(steps,
			"Prepare technical demo or proof of concept",
			"Gather relevant case studies from similar tech companies",
		)
	}
	return steps
}

// EnrichLead runs enrichment on its own, mapping bad input to a DomainError.
func EnrichLead(lead entity.LeadProfile) (entity.EnrichedLeadProfile, error) {
	if errs := ValidateLead(lead); len(errs) > 0 {
		return entity.EnrichedLeadProfile{}, validationFailure(errs)
	}
	p, err := enrichment.Enrich(lead)
	if err != nil {
		return entity.EnrichedLeadProfile{}, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	return p, nil
}

// PreviewPrompt renders the request for one message without calling the model.
func PreviewPrompt(input PreviewPromptInput) (*PreviewPromptOutput, error) {
	lead, err := EnrichLead(input.Lead)
	if err != nil {
		return nil, err
	}
	if errs := ValidateProduct(input.Product); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	req, err := prompt.Build(lead, input.Product, input.Kind, &prompt.FollowUpContext{OriginalSubject: input.OriginalSubject})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
		}
		return nil, &TechnicalError{Code: CodeGenerationFailed, Message: err.Error(), Err: err}
	}
	return &PreviewPromptOutput{Lead: lead, Request: req}, nil
}
