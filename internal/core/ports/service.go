package ports

import (
	"context"
	"time"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
)

// TokenService issues and verifies the signed bearer tokens the API
// hands out at login. Tokens are pure functions of the signing secret
// and the clock; nothing is stored.
type TokenService interface {
	Issue(subjectID string, role domain.Role, ttl time.Duration) (string, error)
	// Verify returns the subject id and role (empty for plain orphanage
	// tokens). Failures are domain.ErrTokenExpired or domain.ErrTokenInvalid.
	Verify(token string) (subjectID string, role domain.Role, err error)
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) error
	Login(ctx context.Context, email, password string) (string, error)
	AdminLogin(ctx context.Context, email, password string) (string, error)
}

type VerificationService interface {
	Submit(ctx context.Context, orphanageID string, record domain.VerificationRecord) error
	ReadRecord(ctx context.Context, orphanageID string) (*domain.VerificationRecord, error)
	ReadStatus(ctx context.Context, orphanageID string) (domain.VerificationStatus, *string, error)
	Decide(ctx context.Context, orphanageID string, status domain.VerificationStatus, rejectionReason string) error
	ListRequests(ctx context.Context) ([]domain.VerificationRequest, error)
	GetRequest(ctx context.Context, orphanageID string) (*domain.VerificationRequest, error)
}

type ChildService interface {
	AddChild(ctx context.Context, orphanageID string, child domain.Child, hobbyIDs []string) error
	ListMine(ctx context.Context, orphanageID string) ([]domain.Child, error)
	GetChild(ctx context.Context, childID string) (*domain.ChildDetail, error)
	GetPublicChild(ctx context.Context, childID string) (*domain.ChildDetail, error)
	ListApproved(ctx context.Context) ([]domain.PublicChild, error)
	ListHobbies(ctx context.Context) ([]domain.Hobby, error)
}

type DonationService interface {
	Add(ctx context.Context, orphanageID string, info domain.DonationInfo) error
	GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.DonationInfo, error)
}

type InterestService interface {
	Express(ctx context.Context, submission domain.InterestSubmission) error
	ListMine(ctx context.Context, orphanageID string) ([]domain.InterestSubmission, error)
}
