package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/middleware"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type DonationHandler struct {
	donationService ports.DonationService
}

func NewDonationHandler(donations ports.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donations}
}

type AddDonationInfoRequest struct {
	DonationMethod  string `json:"donation_method"`
	DonationDetails string `json:"donation_details"`
}

func (h *DonationHandler) AddDonationInfo(w http.ResponseWriter, r *http.Request) {
	var req AddDonationInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	info := domain.DonationInfo{
		DonationMethod:  req.DonationMethod,
		DonationDetails: req.DonationDetails,
	}

	orphanageID := middleware.SubjectID(r.Context())
	if err := h.donationService.Add(r.Context(), orphanageID, info); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "Donation information added successfully!"})
}

func (h *DonationHandler) GetDonationInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.donationService.GetByOrphanageID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}
