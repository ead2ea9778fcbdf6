package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type EnrichmentHandler struct{}

func NewEnrichmentHandler() *EnrichmentHandler {
	return &EnrichmentHandler{}
}

// Handle serves POST /leads/enrich. The body is a bare lead profile.
func (h *EnrichmentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var lead entity.LeadProfile
	if !decodeBody(w, r, &lead) {
		return
	}

	enriched, err := usecase.EnrichLead(lead)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, enriched)
}
