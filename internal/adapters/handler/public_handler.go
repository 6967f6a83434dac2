package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// PublicHandler serves the unauthenticated browsing surface: the
// approved-children listing, child detail with orphanage name, and
// guest interest submissions.
type PublicHandler struct {
	childService    ports.ChildService
	interestService ports.InterestService
}

func NewPublicHandler(children ports.ChildService, interests ports.InterestService) *PublicHandler {
	return &PublicHandler{
		childService:    children,
		interestService: interests,
	}
}

func (h *PublicHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.childService.ListApproved(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if children == nil {
		children = []domain.PublicChild{}
	}
	respondJSON(w, http.StatusOK, children)
}

func (h *PublicHandler) GetChildByID(w http.ResponseWriter, r *http.Request) {
	child, err := h.childService.GetPublicChild(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, child)
}

type ExpressInterestRequest struct {
	OrphanageID  string  `json:"orphanage_id"`
	ChildID      *string `json:"child_id,omitempty"`
	GuestName    string  `json:"guest_name"`
	GuestEmail   string  `json:"guest_email"`
	InterestType string  `json:"interest_type"`
	Message      string  `json:"message,omitempty"`
}

func (h *PublicHandler) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	var req ExpressInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	submission := domain.InterestSubmission{
		OrphanageID: req.OrphanageID,
		ChildID:     req.ChildID,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		Type:        domain.InterestType(req.InterestType),
		Message:     req.Message,
	}

	if err := h.interestService.Express(r.Context(), submission); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "Interest request submitted successfully!"})
}
