package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/middleware"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// VerificationHandler serves the orphanage-facing verification routes.
// The admin decision routes live in AdminHandler.
type VerificationHandler struct {
	verificationService ports.VerificationService
}

func NewVerificationHandler(verification ports.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verification}
}

type SetupAccountRequest struct {
	Governorate                   string `json:"governorate"`
	Address                       string `json:"address"`
	RegistrationCertificateNumber string `json:"registration_certificate_number"`
	OperatingLicenseNumber        string `json:"operating_license_number"`
	LicenseExpirationDate         string `json:"license_expiration_date"`
	ManagerNationalID             string `json:"manager_national_id"`
	TaxID                         string `json:"tax_id"`
	BankAccountDetails            string `json:"bank_account_details"`
}

func (h *VerificationHandler) SetupAccount(w http.ResponseWriter, r *http.Request) {
	var req SetupAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.Validationf("invalid request body"))
		return
	}

	record := domain.VerificationRecord{
		Governorate:                   req.Governorate,
		Address:                       req.Address,
		RegistrationCertificateNumber: req.RegistrationCertificateNumber,
		OperatingLicenseNumber:        req.OperatingLicenseNumber,
		LicenseExpirationDate:         req.LicenseExpirationDate,
		ManagerNationalID:             req.ManagerNationalID,
		TaxID:                         req.TaxID,
		BankAccountDetails:            req.BankAccountDetails,
	}

	orphanageID := middleware.SubjectID(r.Context())
	if err := h.verificationService.Submit(r.Context(), orphanageID, record); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "Orphanage verification data submitted successfully!"})
}

func (h *VerificationHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	orphanageID := middleware.SubjectID(r.Context())
	record, err := h.verificationService.ReadRecord(r.Context(), orphanageID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

type StatusResponse struct {
	Status          domain.VerificationStatus `json:"status"`
	RejectionReason *string                   `json:"rejection_reason"`
}

func (h *VerificationHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	orphanageID := middleware.SubjectID(r.Context())
	status, reason, err := h.verificationService.ReadStatus(r.Context(), orphanageID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, StatusResponse{Status: status, RejectionReason: reason})
}
