package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// AdminHandler serves the admin review surface: deciding on dossiers
// and browsing submitted verification requests.
type AdminHandler struct {
	verificationService ports.VerificationService
}

func NewAdminHandler(verification ports.VerificationService) *AdminHandler {
	return &AdminHandler{verificationService: verification}
}

type VerifyRequest struct {
	OrphanageID     string `json:"orphanage_id"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	status := domain.VerificationStatus(req.Status)
	if err := h.verificationService.Decide(r.Context(), req.OrphanageID, status, req.RejectionReason); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("Orphanage %s successfully!", status)})
}

func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.verificationService.ListRequests(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.VerificationRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *AdminHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	request, err := h.verificationService.GetRequest(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}
