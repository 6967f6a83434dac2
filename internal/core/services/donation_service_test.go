package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/services"
	"github.com/hopehomes/orphanage-platform/backoffice-service/test/mocks"
)

func TestDonationService_AddAndGet(t *testing.T) {
	repo := mocks.NewMockDonationRepository()
	svc := services.NewDonationService(repo)
	ctx := context.Background()

	info := domain.DonationInfo{
		DonationMethod:  "bank_transfer",
		DonationDetails: "IBAN EG380019000500000000263180002",
	}
	if err := svc.Add(ctx, "orphanage-1", info); err != nil {
		t.Fatalf("add donation info failed: %v", err)
	}

	got, err := svc.GetByOrphanageID(ctx, "orphanage-1")
	if err != nil {
		t.Fatalf("get donation info failed: %v", err)
	}
	if got.OrphanageID != "orphanage-1" {
		t.Errorf("donation info not scoped to caller, got %s", got.OrphanageID)
	}
	if got.DonationMethod != "bank_transfer" {
		t.Errorf("donation method = %s, want bank_transfer", got.DonationMethod)
	}
}

// A second add replaces the existing row instead of accumulating.
func TestDonationService_AddReplacesExisting(t *testing.T) {
	repo := mocks.NewMockDonationRepository()
	svc := services.NewDonationService(repo)
	ctx := context.Background()

	first := domain.DonationInfo{DonationMethod: "bank_transfer", DonationDetails: "old account"}
	second := domain.DonationInfo{DonationMethod: "mobile_wallet", DonationDetails: "+20-100-555-0100"}

	if err := svc.Add(ctx, "orphanage-1", first); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.Add(ctx, "orphanage-1", second); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	got, err := svc.GetByOrphanageID(ctx, "orphanage-1")
	if err != nil {
		t.Fatalf("get donation info failed: %v", err)
	}
	if got.DonationMethod != "mobile_wallet" {
		t.Errorf("expected the second add to win, got method %s", got.DonationMethod)
	}
}

func TestDonationService_AddValidation(t *testing.T) {
	tests := []struct {
		name string
		info domain.DonationInfo
	}{
		{"missing_method", domain.DonationInfo{DonationDetails: "IBAN ..."}},
		{"missing_details", domain.DonationInfo{DonationMethod: "bank_transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockDonationRepository()
			svc := services.NewDonationService(repo)

			err := svc.Add(context.Background(), "orphanage-1", tt.info)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if len(repo.UpsertCalls) != 0 {
				t.Error("invalid info must not reach the repository")
			}
		})
	}
}

func TestDonationService_GetUnknownOrphanage(t *testing.T) {
	svc := services.NewDonationService(mocks.NewMockDonationRepository())

	_, err := svc.GetByOrphanageID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
