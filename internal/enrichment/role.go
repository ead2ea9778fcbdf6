package enrichment

import (
	"slices"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	LevelCLevel         = "C-Level"
	LevelTechLeadership = "Technical Leadership"
	LevelMarketing      = "Marketing Leadership"
	LevelSales          = "Sales Leadership"
	LevelHR             = "Human Resources"
	LevelProfessional   = "Professional"
)

// Order matters: "director" contains "cto", so titles such as
// "Sales Director" resolve to Technical Leadership.
var roleRules = []rule[entity.RoleContext]{
	{
		keywords: []string{"ceo", "founder", "president"},
		value: entity.RoleContext{
			Level:              LevelCLevel,
			Priorities:         []string{"company growth", "strategic decisions", "revenue optimization"},
			CommunicationStyle: "high-level, results-focused",
		},
	},
	{
		keywords: []string{"cto", "vp engineering", "head of tech"},
		value: entity.RoleContext{
			Level:              LevelTechLeadership,
			Priorities:         []string{"technical innovation", "team productivity", "system reliability"},
			CommunicationStyle: "technical depth, solution-oriented",
		},
	},
	{
		keywords: []string{"cmo", "marketing director", "head of marketing"},
		value: entity.RoleContext{
			Level:              LevelMarketing,
			Priorities:         []string{"lead generation", "brand growth", "marketing ROI"},
			CommunicationStyle: "metrics-driven, creative solutions",
		},
	},
	{
		keywords: []string{"sales director", "vp sales", "head of sales"},
		value: entity.RoleContext{
			Level:              LevelSales,
			Priorities:         []string{"revenue growth", "sales efficiency", "team performance"},
			CommunicationStyle: "results-focused, competitive advantage",
		},
	},
	{
		keywords: []string{"hr", "people", "talent"},
		value: entity.RoleContext{
			Level:              LevelHR,
			Priorities:         []string{"employee experience", "talent retention", "organizational culture"},
			CommunicationStyle: "people-first, collaborative approach",
		},
	},
}

var defaultRole = entity.RoleContext{
	Level:              LevelProfessional,
	Priorities:         []string{"operational efficiency", "process improvement", "professional growth"},
	CommunicationStyle: "practical solutions, clear benefits",
}

// ClassifyRole maps a job title to a role category. Empty or unknown titles
// fall back to Professional.
func ClassifyRole(jobTitle string) entity.RoleContext {
	rc := firstMatch(jobTitle, roleRules, defaultRole)
	rc.Priorities = slices.Clone(rc.Priorities)
	return rc
}
