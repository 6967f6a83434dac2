package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// VerificationService runs the orphanage approval workflow:
// unsubmitted -> pending -> approved | rejected. Re-submission after a
// decision is not supported.
type VerificationService struct {
	verificationRepo ports.VerificationRepository
	cache            ports.ListingCache
}

func NewVerificationService(verificationRepo ports.VerificationRepository, cache ports.ListingCache) *VerificationService {
	return &VerificationService{
		verificationRepo: verificationRepo,
		cache:            cache,
	}
}

func (s *VerificationService) Submit(ctx context.Context, orphanageID string, record domain.VerificationRecord) error {
	record.OrphanageID = orphanageID
	record.Status = domain.StatusPending
	record.RejectionReason = nil
	if err := record.ValidateSubmission(); err != nil {
		return err
	}

	// submit is only valid while no record exists
	_, err := s.verificationRepo.GetByOrphanageID(ctx, orphanageID)
	switch {
	case err == nil:
		return domain.Validationf("verification data already submitted")
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	return s.verificationRepo.Create(ctx, record)
}

func (s *VerificationService) ReadRecord(ctx context.Context, orphanageID string) (*domain.VerificationRecord, error) {
	return s.verificationRepo.GetByOrphanageID(ctx, orphanageID)
}

func (s *VerificationService) ReadStatus(ctx context.Context, orphanageID string) (domain.VerificationStatus, *string, error) {
	record, err := s.verificationRepo.GetByOrphanageID(ctx, orphanageID)
	if err != nil {
		return "", nil, err
	}
	return record.Status, record.RejectionReason, nil
}

// Decide approves or rejects a pending dossier. Approving clears any
// rejection reason; rejecting requires one. The decision event is
// written to the outbox inside the repository transaction.
func (s *VerificationService) Decide(ctx context.Context, orphanageID string, status domain.VerificationStatus, rejectionReason string) error {
	if orphanageID == "" {
		return domain.Validationf("orphanage_id is required")
	}
	if err := domain.ValidateDecision(status, rejectionReason); err != nil {
		return err
	}

	var reason *string
	if status == domain.StatusRejected {
		reason = &rejectionReason
	}

	payload, err := json.Marshal(ports.VerificationDecidedEvent{
		OrphanageID:     orphanageID,
		Status:          status,
		RejectionReason: rejectionReason,
	})
	if err != nil {
		return err
	}

	if err := s.verificationRepo.Decide(ctx, orphanageID, status, reason, payload); err != nil {
		return err
	}

	// an approval (or a flip away from approved) changes the public listing
	s.cache.InvalidateApprovedChildren(ctx)
	return nil
}

func (s *VerificationService) ListRequests(ctx context.Context) ([]domain.VerificationRequest, error) {
	return s.verificationRepo.ListRequests(ctx)
}

func (s *VerificationService) GetRequest(ctx context.Context, orphanageID string) (*domain.VerificationRequest, error) {
	return s.verificationRepo.GetRequestByID(ctx, orphanageID)
}
