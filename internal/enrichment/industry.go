package enrichment

import (
	"slices"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

var industryRules = []rule[entity.IndustryInsights]{
	{
		keywords: []string{"technology", "software"},
		value: entity.IndustryInsights{
			KeyTrends:        []string{"AI adoption", "cloud migration", "cybersecurity"},
			CommonChallenges: []string{"scaling infrastructure", "talent acquisition", "rapid innovation"},
		},
	},
	{
		keywords: []string{"healthcare", "medical"},
		value: entity.IndustryInsights{
			KeyTrends:        []string{"digital transformation", "patient experience", "regulatory compliance"},
			CommonChallenges: []string{"data security", "cost management", "regulatory changes"},
		},
	},
	{
		keywords: []string{"finance", "banking"},
		value: entity.IndustryInsights{
			KeyTrends:        []string{"fintech disruption", "regulatory compliance", "digital banking"},
			CommonChallenges: []string{"legacy system modernization", "regulatory compliance", "customer experience"},
		},
	},
	{
		keywords: []string{"retail", "ecommerce"},
		value: entity.IndustryInsights{
			KeyTrends:        []string{"omnichannel experience", "personalization", "supply chain optimization"},
			CommonChallenges: []string{"inventory management", "customer acquisition", "digital transformation"},
		},
	},
}

var defaultIndustry = entity.IndustryInsights{
	KeyTrends:        []string{"digital transformation", "operational efficiency", "customer experience"},
	CommonChallenges: []string{"process optimization", "technology adoption", "competitive pressure"},
}

// LookupIndustry returns trend and challenge tags for an industry label.
func LookupIndustry(industry string) entity.IndustryInsights {
	ins := firstMatch(industry, industryRules, defaultIndustry)
	return entity.IndustryInsights{
		KeyTrends:        slices.Clone(ins.KeyTrends),
		CommonChallenges: slices.Clone(ins.CommonChallenges),
	}
}
