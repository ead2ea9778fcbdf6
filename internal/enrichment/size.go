package enrichment

import (
	"slices"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	midSizeThreshold    = 50
	enterpriseThreshold = 500
)

var painPoints = map[entity.SizeCategory][]string{
	entity.SizeSmallStartup: {"scaling challenges", "resource constraints", "process optimization"},
	entity.SizeMidSize:      {"operational efficiency", "team coordination", "growth management"},
	entity.SizeEnterprise:   {"system integration", "compliance requirements", "enterprise scalability"},
}

// ClassifySize buckets a headcount and returns the pain points that go with
// the bucket.
func ClassifySize(headcount int) (entity.SizeCategory, []string) {
	var cat entity.SizeCategory
	switch {
	case headcount < midSizeThreshold:
		cat = entity.SizeSmallStartup
	case headcount < enterpriseThreshold:
		cat = entity.SizeMidSize
	default:
		cat = entity.SizeEnterprise
	}
	return cat, slices.Clone(painPoints[cat])
}
