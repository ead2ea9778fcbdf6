// Package prompt renders enriched leads and product data into generation
// requests. Rendering is deterministic: the same inputs always produce the
// same request.
package prompt

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	defaultName            = "there"
	defaultRoleLevel       = "Professional"
	defaultProductName     = "our solution"
	defaultDescription     = "a comprehensive business solution"
	defaultTargetOutcome   = "business growth and optimization"
	defaultOriginalSubject = "(not provided)"
	notSpecified           = "not specified"
)

var defaultBenefits = []string{"improved efficiency", "cost savings"}

// GenerationRequest is everything the generation client needs for one call.
type GenerationRequest struct {
	Kind             entity.MessageKind `json:"kind"`
	System           string             `json:"system"`
	User             string             `json:"user"`
	StructuredOutput bool               `json:"structured_output"`
	Temperature      float64            `json:"temperature"`
	SendAfterDays    int                `json:"send_after_days"`
}

// FollowUpContext carries what a follow-up needs from the cold email.
type FollowUpContext struct {
	OriginalSubject string
}

type approach struct {
	directive string
	tone      string
}

var followUpApproaches = map[int]approach{
	1: {
		directive: "Introduce a new piece of value, insight, or resource that was not in the original email",
		tone:      "Helpful and resource-focused",
	},
	2: {
		directive: "Shift the angle: ask for their feedback, or offer to connect them with someone better placed, and include a clear opt-out",
		tone:      "Gracefully persistent but understanding",
	},
}

var (
	coldEmailTemplate = prompts.NewPromptTemplate(coldEmailUser, nil)
	followUpTemplate  = prompts.NewPromptTemplate(followUpUser, nil)
)

// Build renders the request for one message of the sequence. fc is only read
// for follow-ups and may be nil.
func Build(profile entity.EnrichedLeadProfile, product entity.ProductInfo, kind entity.MessageKind, fc *FollowUpContext) (GenerationRequest, error) {
	values := baseValues(profile, product)
	values["word_range"] = kind.WordRange()

	req := GenerationRequest{
		Kind:             kind,
		StructuredOutput: true,
		Temperature:      kind.Temperature(),
		SendAfterDays:    kind.SendAfterDays(),
	}

	var tmpl prompts.PromptTemplate
	switch kind {
	case entity.KindColdEmail:
		req.System = coldEmailSystem
		tmpl = coldEmailTemplate
	case entity.KindFollowUp1, entity.KindFollowUp2:
		idx := kind.FollowUpIndex()
		a := followUpApproaches[idx]
		subject := defaultOriginalSubject
		if fc != nil && strings.TrimSpace(fc.OriginalSubject) != "" {
			subject = fc.OriginalSubject
		}
		values["followup_number"] = idx
		values["send_after_days"] = kind.SendAfterDays()
		values["original_subject"] = subject
		values["approach"] = a.directive
		values["tone"] = a.tone
		req.System = followUpSystem
		tmpl = followUpTemplate
	default:
		return GenerationRequest{}, &entity.InvalidInputError{Field: "message_kind", Message: fmt.Sprintf("unknown kind %q", kind)}
	}

	user, err := tmpl.Format(values)
	if err != nil {
		return GenerationRequest{}, fmt.Errorf("render %s prompt: %w", kind, err)
	}
	req.User = user
	return req, nil
}

func baseValues(p entity.EnrichedLeadProfile, product entity.ProductInfo) map[string]any {
	level := p.RoleContext.Level
	if level == "" {
		level = defaultRoleLevel
	}

	benefits := product.Benefits
	if len(benefits) == 0 {
		benefits = defaultBenefits
	}

	return map[string]any{
		"name":                  orDefault(p.Name, defaultName),
		"job_title":             orDefault(p.JobTitle, notSpecified),
		"company":               orDefault(p.Company, notSpecified),
		"industry":              orDefault(p.Industry, notSpecified),
		"company_size_category": orDefault(string(p.CompanySizeCategory), notSpecified),
		"role_level":            level,
		"priorities":            joinOr(p.RoleContext.Priorities),
		"communication_style":   orDefault(p.RoleContext.CommunicationStyle, notSpecified),
		"pain_points":           joinOr(p.LikelyPainPoints),
		"key_trends":            joinOr(p.IndustryInsights.KeyTrends),
		"challenges":            joinOr(p.IndustryInsights.CommonChallenges),
		"hooks":                 p.PersonalizationHooks,

		"product_name":        orDefault(product.Name, defaultProductName),
		"product_description": orDefault(product.Description, defaultDescription),
		"benefits":            strings.Join(benefits, ", "),
		"target_outcome":      orDefault(product.TargetOutcome, defaultTargetOutcome),
		"pricing_model":       orDefault(product.PricingModel, notSpecified),
		"use_cases":           joinOr(product.UseCases),
		"differentiators":     joinOr(product.Differentiators),
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func joinOr(items []string) string {
	if len(items) == 0 {
		return notSpecified
	}
	return strings.Join(items, ", ")
}
