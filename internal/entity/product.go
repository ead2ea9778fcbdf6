package entity

// ProductInfo describes what the campaign is selling.
type ProductInfo struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Benefits        []string `json:"benefits"`
	TargetOutcome   string   `json:"target_outcome"`
	PricingModel    string   `json:"pricing_model,omitempty"`
	UseCases        []string `json:"use_cases,omitempty"`
	Differentiators []string `json:"differentiators,omitempty"`
}
