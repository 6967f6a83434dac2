package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/handler"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/services"
	"github.com/hopehomes/orphanage-platform/backoffice-service/test/mocks"
)

func newAdminFixture() (*handler.AdminHandler, *mocks.MockVerificationRepository) {
	repo := mocks.NewMockVerificationRepository()
	svc := services.NewVerificationService(repo, mocks.NewMockListingCache())
	return handler.NewAdminHandler(svc), repo
}

func seedPendingRequest(repo *mocks.MockVerificationRepository, orphanageID string) {
	repo.SeedRecord(&domain.VerificationRecord{
		OrphanageID:                   orphanageID,
		Governorate:                   "Cairo",
		Address:                       "12 Nile St",
		RegistrationCertificateNumber: "RC-100",
		OperatingLicenseNumber:        "OL-200",
		LicenseExpirationDate:         "2027-12-31",
		ManagerNationalID:             "29001010100123",
		TaxID:                         "TX-300",
		BankAccountDetails:            "Bank Misr 555",
		Status:                        domain.StatusPending,
	})
	repo.SeedAccountInfo(orphanageID, "Hope House", "hope@example.com")
}

func TestAdminHandler_Verify(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"approve", `{"orphanage_id":"orphanage-1","status":"approved"}`, http.StatusOK},
		{"reject_with_reason", `{"orphanage_id":"orphanage-1","status":"rejected","rejection_reason":"expired license"}`, http.StatusOK},
		{"reject_without_reason", `{"orphanage_id":"orphanage-1","status":"rejected"}`, http.StatusBadRequest},
		{"bogus_status", `{"orphanage_id":"orphanage-1","status":"parked"}`, http.StatusBadRequest},
		{"unknown_orphanage", `{"orphanage_id":"ghost","status":"approved"}`, http.StatusNotFound},
		{"malformed_body", `{"orphanage_id":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newAdminFixture()
			seedPendingRequest(repo, "orphanage-1")

			rec := postJSON(t, h.Verify, "/admin/verify", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestAdminHandler_VerifyMessage(t *testing.T) {
	h, repo := newAdminFixture()
	seedPendingRequest(repo, "orphanage-1")

	rec := postJSON(t, h.Verify, "/admin/verify", `{"orphanage_id":"orphanage-1","status":"approved"}`)
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["message"] != "Orphanage approved successfully!" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestAdminHandler_ListRequests(t *testing.T) {
	h, repo := newAdminFixture()

	req := httptest.NewRequest(http.MethodGet, "/admin/verification-requests", nil)
	rec := httptest.NewRecorder()
	h.ListRequests(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// no submissions yet: an empty array, never null
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("empty listing body = %q, want []", got)
	}

	seedPendingRequest(repo, "orphanage-1")
	rec = httptest.NewRecorder()
	h.ListRequests(rec, req)

	var requests []domain.VerificationRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &requests); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(requests) != 1 || requests[0].Name != "Hope House" {
		t.Errorf("unexpected listing: %+v", requests)
	}
}

func TestAdminHandler_GetRequestByID(t *testing.T) {
	h, repo := newAdminFixture()
	seedPendingRequest(repo, "orphanage-1")

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", "orphanage-1", http.StatusOK},
		{"missing", "ghost", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/verification-requests/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.GetRequestByID(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
