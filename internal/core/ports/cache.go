package ports

import (
	"context"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
)

// ListingCache holds the hot public read paths: the hobby catalog and
// the approved-children listing. A cache miss (or any cache failure) is
// never an error; callers fall through to the database.
type ListingCache interface {
	GetHobbies(ctx context.Context) ([]domain.Hobby, bool)
	SetHobbies(ctx context.Context, hobbies []domain.Hobby)
	GetApprovedChildren(ctx context.Context) ([]domain.PublicChild, bool)
	SetApprovedChildren(ctx context.Context, children []domain.PublicChild)
	// InvalidateApprovedChildren is called when a child is added or a
	// verification decision changes which orphanages are approved.
	InvalidateApprovedChildren(ctx context.Context)
}
