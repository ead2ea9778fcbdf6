package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		title string
		level string
	}{
		{"CEO", LevelCLevel},
		{"ceo ", LevelCLevel},
		{"Chief Executive and CEO of Acme", LevelCLevel},
		{"Co-Founder", LevelCLevel},
		{"President", LevelCLevel},
		{"CTO", LevelTechLeadership},
		{"VP Engineering", LevelTechLeadership},
		{"Head of Technology", LevelTechLeadership},
		{"CMO", LevelMarketing},
		{"Head of Marketing", LevelMarketing},
		{"VP Sales", LevelSales},
		{"Head of Sales", LevelSales},
		{"HR Manager", LevelHR},
		{"People Partner", LevelHR},
		{"Talent Acquisition Lead", LevelHR},
		{"Software Engineer", LevelProfessional},
		{"", LevelProfessional},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.level, ClassifyRole(tt.title).Level)
		})
	}
}

func TestClassifyRole_PrecedenceFollowsTableOrder(t *testing.T) {
	// "director" contains "cto", and the technical group is checked first.
	assert.Equal(t, LevelTechLeadership, ClassifyRole("Sales Director").Level)
	assert.Equal(t, LevelTechLeadership, ClassifyRole("Marketing Director").Level)
	// C-Level wins over anything further down.
	assert.Equal(t, LevelCLevel, ClassifyRole("Founder & Head of Sales").Level)
}

func TestClassifyRole_ReturnsFixedContext(t *testing.T) {
	rc := ClassifyRole("CTO")
	assert.Equal(t, []string{"technical innovation", "team productivity", "system reliability"}, rc.Priorities)
	assert.Equal(t, "technical depth, solution-oriented", rc.CommunicationStyle)

	def := ClassifyRole("Accountant")
	assert.Equal(t, []string{"operational efficiency", "process improvement", "professional growth"}, def.Priorities)
	assert.Equal(t, "practical solutions, clear benefits", def.CommunicationStyle)
}

func TestClassifyRole_ResultDoesNotAliasTable(t *testing.T) {
	rc := ClassifyRole("CEO")
	rc.Priorities[0] = "changed"

	assert.Equal(t, "company growth", ClassifyRole("CEO").Priorities[0])
}

func TestLookupIndustry(t *testing.T) {
	tests := []struct {
		industry string
		trend    string
	}{
		{"Software", "AI adoption"},
		{"Information Technology", "AI adoption"},
		{"Healthcare Technology", "AI adoption"},
		{"Medical Devices", "digital transformation"},
		{"Banking", "fintech disruption"},
		{"FINANCE", "fintech disruption"},
		{"eCommerce", "omnichannel experience"},
		{"Retail", "omnichannel experience"},
		{"Agriculture", "digital transformation"},
		{"", "digital transformation"},
	}

	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			ins := LookupIndustry(tt.industry)
			assert.Equal(t, tt.trend, ins.KeyTrends[0])
			assert.Len(t, ins.KeyTrends, 3)
			assert.Len(t, ins.CommonChallenges, 3)
		})
	}
}

func TestLookupIndustry_DefaultIsNotHealthcare(t *testing.T) {
	ins := LookupIndustry("Agriculture")
	assert.Equal(t, []string{"process optimization", "technology adoption", "competitive pressure"}, ins.CommonChallenges)
}

func TestClassifySize_Boundaries(t *testing.T) {
	tests := []struct {
		size int
		want entity.SizeCategory
	}{
		{0, entity.SizeSmallStartup},
		{49, entity.SizeSmallStartup},
		{50, entity.SizeMidSize},
		{499, entity.SizeMidSize},
		{500, entity.SizeEnterprise},
		{10000, entity.SizeEnterprise},
	}

	for _, tt := range tests {
		cat, pains := ClassifySize(tt.size)
		assert.Equal(t, tt.want, cat, "size %d", tt.size)
		assert.Len(t, pains, 3)
	}
}

func TestClassifySize_PainPoints(t *testing.T) {
	_, pains := ClassifySize(80)
	assert.Equal(t, []string{"operational efficiency", "team coordination", "growth management"}, pains)

	_, pains = ClassifySize(5000)
	assert.Equal(t, []string{"system integration", "compliance requirements", "enterprise scalability"}, pains)
}
