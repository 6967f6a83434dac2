package ports

import (
	"context"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
)

// Repositories return domain.ErrNotFound when no row matches; any other
// failure is surfaced as-is and treated as a storage error upstream.

type AccountRepository interface {
	CreateAccount(ctx context.Context, account domain.Account) error
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindAdminByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type VerificationRepository interface {
	Create(ctx context.Context, record domain.VerificationRecord) error
	GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.VerificationRecord, error)
	// Decide overwrites status and rejection reason, recording the outbox
	// event in the same transaction.
	Decide(ctx context.Context, orphanageID string, status domain.VerificationStatus, rejectionReason *string, outboxPayload []byte) error
	ListRequests(ctx context.Context) ([]domain.VerificationRequest, error)
	GetRequestByID(ctx context.Context, orphanageID string) (*domain.VerificationRequest, error)
}

type ChildRepository interface {
	// CreateChild inserts the child and its hobby links in one transaction.
	CreateChild(ctx context.Context, child domain.Child, hobbyIDs []string) error
	ListByOrphanage(ctx context.Context, orphanageID string) ([]domain.Child, error)
	GetByID(ctx context.Context, childID string) (*domain.ChildDetail, error)
	// GetPublicByID additionally resolves the owning orphanage's name.
	GetPublicByID(ctx context.Context, childID string) (*domain.ChildDetail, error)
	ListApproved(ctx context.Context) ([]domain.PublicChild, error)
	ListHobbies(ctx context.Context) ([]domain.Hobby, error)
}

type DonationRepository interface {
	Upsert(ctx context.Context, info domain.DonationInfo) error
	GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.DonationInfo, error)
}

type InterestRepository interface {
	// Create inserts the submission and its outbox event in one transaction.
	Create(ctx context.Context, submission domain.InterestSubmission, outboxPayload []byte) error
	ListByOrphanage(ctx context.Context, orphanageID string) ([]domain.InterestSubmission, error)
}
