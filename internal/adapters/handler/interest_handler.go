package handler

import (
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/middleware"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// InterestHandler serves the orphanage's inbox of guest submissions.
type InterestHandler struct {
	interestService ports.InterestService
}

func NewInterestHandler(interests ports.InterestService) *InterestHandler {
	return &InterestHandler{interestService: interests}
}

func (h *InterestHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	orphanageID := middleware.SubjectID(r.Context())
	submissions, err := h.interestService.ListMine(r.Context(), orphanageID)
	if err != nil {
		respondError(w, err)
		return
	}
	if submissions == nil {
		submissions = []domain.InterestSubmission{}
	}
	respondJSON(w, http.StatusOK, submissions)
}
