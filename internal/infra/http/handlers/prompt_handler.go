package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type PromptHandler struct{}

func NewPromptHandler() *PromptHandler {
	return &PromptHandler{}
}

type PromptRequest struct {
	Lead            entity.LeadProfile `json:"lead"`
	Product         entity.ProductInfo `json:"product"`
	OriginalSubject string             `json:"original_subject,omitempty"`
}

// Handle serves POST /prompts/{kind} and returns the rendered prompt without
// calling the model.
func (h *PromptHandler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, err := entity.ParseMessageKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, err.Error())
		return
	}

	var req PromptRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := usecase.PreviewPrompt(usecase.PreviewPromptInput{
		Lead:            req.Lead,
		Product:         req.Product,
		Kind:            kind,
		OriginalSubject: req.OriginalSubject,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}
