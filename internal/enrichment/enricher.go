package enrichment

import (
	"fmt"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// Enrich builds the enriched profile for a lead. The input is copied, never
// modified, and the result shares no memory with it.
func Enrich(lead entity.LeadProfile) (entity.EnrichedLeadProfile, error) {
	if lead.CompanySize < 0 {
		return entity.EnrichedLeadProfile{}, &entity.InvalidInputError{
			Field:   "company_size",
			Message: "must not be negative",
		}
	}

	sizeCategory, pains := ClassifySize(lead.CompanySize)
	role := ClassifyRole(lead.JobTitle)
	insights := LookupIndustry(lead.Industry)

	return entity.EnrichedLeadProfile{
		Name:        lead.Name,
		Company:     lead.Company,
		JobTitle:    lead.JobTitle,
		Industry:    lead.Industry,
		CompanySize: lead.CompanySize,
		Email:       lead.Email,
		Extra:       copyExtra(lead.Extra),

		CompanySizeCategory:  sizeCategory,
		LikelyPainPoints:     pains,
		RoleContext:          role,
		IndustryInsights:     insights,
		PersonalizationHooks: hooks(lead, sizeCategory, role, insights),
	}, nil
}

func hooks(lead entity.LeadProfile, size entity.SizeCategory, role entity.RoleContext, ins entity.IndustryInsights) []string {
	return []string{
		fmt.Sprintf("Given %s's position as a %s in the %s space", lead.Company, size, lead.Industry),
		fmt.Sprintf("As a %s professional focused on %s", role.Level, joinFirst(role.Priorities, 2)),
		fmt.Sprintf("With the current %s trends around %s", lead.Industry, joinFirst(ins.KeyTrends, 2)),
	}
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func copyExtra(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyExtra(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
