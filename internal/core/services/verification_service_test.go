package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/services"
	"github.com/hopehomes/orphanage-platform/backoffice-service/test/mocks"
)

func completeRecord() domain.VerificationRecord {
	return domain.VerificationRecord{
		Governorate:                   "Cairo",
		Address:                       "12 Nile St",
		RegistrationCertificateNumber: "RC-100",
		OperatingLicenseNumber:        "OL-200",
		LicenseExpirationDate:         "2027-12-31",
		ManagerNationalID:             "29001011234567",
		TaxID:                         "TAX-300",
		BankAccountDetails:            "EG12 0001 0000 0000 1234 5678 901",
	}
}

func TestVerificationService_Submit(t *testing.T) {
	repo := mocks.NewMockVerificationRepository()
	svc := services.NewVerificationService(repo, mocks.NewMockListingCache())
	ctx := context.Background()

	if err := svc.Submit(ctx, "orphanage-1", completeRecord()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	status, reason, err := svc.ReadStatus(ctx, "orphanage-1")
	if err != nil {
		t.Fatalf("read status failed: %v", err)
	}
	if status != domain.StatusPending {
		t.Errorf("expected pending after submit, got %s", status)
	}
	if reason != nil {
		t.Errorf("expected nil rejection reason, got %v", *reason)
	}
}

func TestVerificationService_SubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.VerificationRecord)
	}{
		{"missing_governorate", func(r *domain.VerificationRecord) { r.Governorate = "" }},
		{"missing_address", func(r *domain.VerificationRecord) { r.Address = "" }},
		{"missing_certificate", func(r *domain.VerificationRecord) { r.RegistrationCertificateNumber = "" }},
		{"missing_license", func(r *domain.VerificationRecord) { r.OperatingLicenseNumber = "" }},
		{"missing_expiration", func(r *domain.VerificationRecord) { r.LicenseExpirationDate = "" }},
		{"missing_manager_id", func(r *domain.VerificationRecord) { r.ManagerNationalID = "" }},
		{"missing_tax_id", func(r *domain.VerificationRecord) { r.TaxID = "" }},
		{"missing_bank_details", func(r *domain.VerificationRecord) { r.BankAccountDetails = "" }},
		{"malformed_date", func(r *domain.VerificationRecord) { r.LicenseExpirationDate = "31-12-2024" }},
		{"not_a_date", func(r *domain.VerificationRecord) { r.LicenseExpirationDate = "soon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockVerificationRepository()
			svc := services.NewVerificationService(repo, mocks.NewMockListingCache())

			record := completeRecord()
			tt.mutate(&record)

			err := svc.Submit(context.Background(), "orphanage-1", record)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if len(repo.CreateCalls) != 0 {
				t.Error("invalid submission reached the repository")
			}
		})
	}
}

func TestVerificationService_SubmitTwice(t *testing.T) {
	repo := mocks.NewMockVerificationRepository()
	svc := services.NewVerificationService(repo, mocks.NewMockListingCache())
	ctx := context.Background()

	if err := svc.Submit(ctx, "orphanage-1", completeRecord()); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	err := svc.Submit(ctx, "orphanage-1", completeRecord())
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation on re-submission, got %v", err)
	}
}

func TestVerificationService_Decide(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.VerificationStatus
		reason     string
		wantErr    bool
		wantStatus domain.VerificationStatus
		wantReason *string
	}{
		{
			name:       "approve_clears_reason",
			status:     domain.StatusApproved,
			wantStatus: domain.StatusApproved,
			wantReason: nil,
		},
		{
			name:       "reject_with_reason",
			status:     domain.StatusRejected,
			reason:     "too small",
			wantStatus: domain.StatusRejected,
			wantReason: strPtr("too small"),
		},
		{
			name:    "reject_without_reason",
			status:  domain.StatusRejected,
			wantErr: true,
		},
		{
			name:    "unknown_status",
			status:  "parked",
			wantErr: true,
		},
		{
			name:    "back_to_pending_not_allowed",
			status:  domain.StatusPending,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockVerificationRepository()
			cache := mocks.NewMockListingCache()
			svc := services.NewVerificationService(repo, cache)
			ctx := context.Background()

			if err := svc.Submit(ctx, "orphanage-1", completeRecord()); err != nil {
				t.Fatalf("submit failed: %v", err)
			}

			err := svc.Decide(ctx, "orphanage-1", tt.status, tt.reason)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decide failed: %v", err)
			}

			status, reason, err := svc.ReadStatus(ctx, "orphanage-1")
			if err != nil {
				t.Fatalf("read status failed: %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, status)
			}
			if (reason == nil) != (tt.wantReason == nil) {
				t.Fatalf("expected reason %v, got %v", tt.wantReason, reason)
			}
			if reason != nil && *reason != *tt.wantReason {
				t.Errorf("expected reason %q, got %q", *tt.wantReason, *reason)
			}

			if cache.InvalidateCalls != 1 {
				t.Errorf("expected 1 listing invalidation, got %d", cache.InvalidateCalls)
			}
			if len(repo.OutboxPayloads) != 1 {
				t.Errorf("expected 1 outbox payload, got %d", len(repo.OutboxPayloads))
			}
		})
	}
}

func TestVerificationService_DecideUnknownOrphanage(t *testing.T) {
	repo := mocks.NewMockVerificationRepository()
	svc := services.NewVerificationService(repo, mocks.NewMockListingCache())

	err := svc.Decide(context.Background(), "nobody", domain.StatusApproved, "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestVerificationService_ReadStatusUnsubmitted(t *testing.T) {
	svc := services.NewVerificationService(mocks.NewMockVerificationRepository(), mocks.NewMockListingCache())

	_, _, err := svc.ReadStatus(context.Background(), "orphanage-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound before submission, got %v", err)
	}
}

func strPtr(s string) *string { return &s }
