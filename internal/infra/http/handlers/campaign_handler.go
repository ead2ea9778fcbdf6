package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/generation"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type CampaignGenerator interface {
	Execute(ctx context.Context, input usecase.GenerateCampaignInput) (*usecase.GenerateCampaignOutput, error)
}

type CampaignFinder interface {
	Execute(ctx context.Context, id string) (*entity.Campaign, error)
}

type CampaignHandler struct {
	GenerateUC CampaignGenerator
	GetUC      CampaignFinder
	Producer   queue.QueueProducerInterface
}

// NewCampaignHandler accepts a nil producer, in which case async requests
// are refused with 503. A nil finder does the same for lookups.
func NewCampaignHandler(gen CampaignGenerator, get CampaignFinder, producer queue.QueueProducerInterface) *CampaignHandler {
	return &CampaignHandler{
		GenerateUC: gen,
		GetUC:      get,
		Producer:   producer,
	}
}

type AcceptedResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

// HandleCreate serves POST /campaigns. With ?async=true the request is queued
// and answered with 202.
func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateCampaignInput
	if !decodeBody(w, r, &input) {
		return
	}

	if r.URL.Query().Get("async") == "true" {
		h.enqueue(w, r, input)
		return
	}

	start := time.Now()
	output, err := h.GenerateUC.Execute(r.Context(), input)
	if err != nil {
		if kind := generation.KindOf(err); kind != "" {
			middleware.RecordGenerationError(string(kind))
		}
		middleware.RecordCampaign("api", "failure", time.Since(start))
		writeUsecaseError(w, err)
		return
	}
	middleware.RecordCampaign("api", "success", time.Since(start))

	writeJSON(w, http.StatusCreated, output)
}

func (h *CampaignHandler) enqueue(w http.ResponseWriter, r *http.Request, input usecase.GenerateCampaignInput) {
	if h.Producer == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, usecase.CodeQueue, "async generation is not configured")
		return
	}

	errs := append(usecase.ValidateLead(input.Lead), usecase.ValidateProduct(input.Product)...)
	if len(errs) > 0 {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, errs[0].Error())
		return
	}

	id, err := h.Producer.PublishCampaignRequest(r.Context(), queue.CampaignRequestPayload{
		Lead:    input.Lead,
		Product: input.Product,
		Origin:  "api",
	})
	if err != nil {
		log.Printf("[HTTP] failed to queue campaign request: %v", err)
		writeErrorResponse(w, http.StatusServiceUnavailable, usecase.CodeQueue, "failed to queue campaign request")
		return
	}

	writeJSON(w, http.StatusAccepted, AcceptedResponse{RequestID: id, Status: "queued"})
}

// HandleGet serves GET /campaigns/{id}.
func (h *CampaignHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if h.GetUC == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, usecase.CodeDatabase, "campaign storage is not configured")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, "id is required")
		return
	}

	campaign, err := h.GetUC.Execute(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}
