package usecase

import (
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/prompt"
)

type GenerateCampaignInput struct {
	Lead    entity.LeadProfile `json:"lead"`
	Product entity.ProductInfo `json:"product"`
}

type GenerateCampaignOutput struct {
	Campaign  *entity.Campaign `json:"campaign"`
	ExportDir string           `json:"export_dir,omitempty"`
}

type PreviewPromptInput struct {
	Lead            entity.LeadProfile `json:"lead"`
	Product         entity.ProductInfo `json:"product"`
	Kind            entity.MessageKind `json:"kind"`
	OriginalSubject string             `json:"original_subject,omitempty"`
}

type PreviewPromptOutput struct {
	Lead    entity.EnrichedLeadProfile `json:"lead_profile"`
	Request prompt.GenerationRequest   `json:"request"`
}
