package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// ChildService covers child records for the owning orphanage and the
// public browsing surface. The hobby catalog and the approved-children
// listing are served through the cache when warm.
type ChildService struct {
	childRepo ports.ChildRepository
	cache     ports.ListingCache
}

func NewChildService(childRepo ports.ChildRepository, cache ports.ListingCache) *ChildService {
	return &ChildService{
		childRepo: childRepo,
		cache:     cache,
	}
}

func (s *ChildService) AddChild(ctx context.Context, orphanageID string, child domain.Child, hobbyIDs []string) error {
	if child.Name == "" {
		return domain.Validationf("name is required")
	}
	if child.Age <= 0 {
		return domain.Validationf("age is required")
	}

	child.ID = uuid.NewString()
	child.OrphanageID = orphanageID
	child.CreatedAt = time.Now()

	if err := s.childRepo.CreateChild(ctx, child, hobbyIDs); err != nil {
		return err
	}

	// the new child shows up in the public listing once (or if) the
	// orphanage is approved
	s.cache.InvalidateApprovedChildren(ctx)
	return nil
}

func (s *ChildService) ListMine(ctx context.Context, orphanageID string) ([]domain.Child, error) {
	return s.childRepo.ListByOrphanage(ctx, orphanageID)
}

func (s *ChildService) GetChild(ctx context.Context, childID string) (*domain.ChildDetail, error) {
	return s.childRepo.GetByID(ctx, childID)
}

func (s *ChildService) GetPublicChild(ctx context.Context, childID string) (*domain.ChildDetail, error) {
	return s.childRepo.GetPublicByID(ctx, childID)
}

func (s *ChildService) ListApproved(ctx context.Context) ([]domain.PublicChild, error) {
	if children, ok := s.cache.GetApprovedChildren(ctx); ok {
		return children, nil
	}
	children, err := s.childRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetApprovedChildren(ctx, children)
	return children, nil
}

func (s *ChildService) ListHobbies(ctx context.Context) ([]domain.Hobby, error) {
	if hobbies, ok := s.cache.GetHobbies(ctx); ok {
		return hobbies, nil
	}
	hobbies, err := s.childRepo.ListHobbies(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetHobbies(ctx, hobbies)
	return hobbies, nil
}
