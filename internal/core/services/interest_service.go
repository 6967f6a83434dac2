package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// InterestService accepts guest adoption/sponsorship leads and serves
// them back to the addressed orphanage.
type InterestService struct {
	interestRepo ports.InterestRepository
}

func NewInterestService(interestRepo ports.InterestRepository) *InterestService {
	return &InterestService{interestRepo: interestRepo}
}

func (s *InterestService) Express(ctx context.Context, submission domain.InterestSubmission) error {
	switch {
	case submission.OrphanageID == "":
		return domain.Validationf("orphanage_id is required")
	case submission.GuestName == "":
		return domain.Validationf("guest_name is required")
	case submission.GuestEmail == "":
		return domain.Validationf("guest_email is required")
	}
	if submission.Type != domain.InterestAdoption && submission.Type != domain.InterestSponsorship {
		return domain.Validationf("interest_type must be 'adoption' or 'sponsorship'")
	}

	submission.ID = uuid.NewString()

	payload, err := json.Marshal(ports.InterestCreatedEvent{
		SubmissionID: submission.ID,
		OrphanageID:  submission.OrphanageID,
		ChildID:      submission.ChildID,
		InterestType: string(submission.Type),
	})
	if err != nil {
		return err
	}

	return s.interestRepo.Create(ctx, submission, payload)
}

func (s *InterestService) ListMine(ctx context.Context, orphanageID string) ([]domain.InterestSubmission, error) {
	return s.interestRepo.ListByOrphanage(ctx, orphanageID)
}
