package services

import (
	"context"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// DonationService manages an orphanage's donation channel: at most one
// method/details pair per account, readable publicly by orphanage id.
type DonationService struct {
	donationRepo ports.DonationRepository
}

func NewDonationService(donationRepo ports.DonationRepository) *DonationService {
	return &DonationService{donationRepo: donationRepo}
}

func (s *DonationService) Add(ctx context.Context, orphanageID string, info domain.DonationInfo) error {
	if info.DonationMethod == "" {
		return domain.Validationf("donation_method is required")
	}
	if info.DonationDetails == "" {
		return domain.Validationf("donation_details is required")
	}
	info.OrphanageID = orphanageID
	return s.donationRepo.Upsert(ctx, info)
}

func (s *DonationService) GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.DonationInfo, error) {
	return s.donationRepo.GetByOrphanageID(ctx, orphanageID)
}
