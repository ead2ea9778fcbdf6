package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/generation"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

const codeInvalidJSON = "INVALID_JSON"

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// decodeBody reads a JSON request body. Bad input found while decoding a lead
// is reported with its field name.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var inv *entity.InvalidInputError
		if errors.As(err, &inv) {
			writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, inv.Error())
			return false
		}
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidJSON, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// writeUsecaseError maps a use-case failure to an HTTP status.
func writeUsecaseError(w http.ResponseWriter, err error) {
	code := usecase.ErrorCode(err)

	switch {
	case errors.Is(err, entity.ErrInvalidInput) || code == usecase.CodeValidation:
		writeErrorResponse(w, http.StatusBadRequest, usecase.CodeValidation, err.Error())
	case errors.Is(err, entity.ErrCampaignNotFound) || code == usecase.CodeNotFound:
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeNotFound, err.Error())
	case generation.KindOf(err) != "":
		writeErrorResponse(w, http.StatusBadGateway, string(generation.KindOf(err)), err.Error())
	case code == usecase.CodeGenerationFailed:
		writeErrorResponse(w, http.StatusBadGateway, code, err.Error())
	default:
		log.Printf("[HTTP] internal error: %v", err)
		if code == "" {
			code = "INTERNAL_ERROR"
		}
		writeErrorResponse(w, http.StatusInternalServerError, code, "internal error")
	}
}
