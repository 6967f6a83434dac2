package mocks

import (
	"context"
	"sync"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// MockListingCache implements ports.ListingCache in memory.
type MockListingCache struct {
	mu sync.RWMutex

	hobbies     []domain.Hobby
	hobbiesSet  bool
	children    []domain.PublicChild
	childrenSet bool

	InvalidateCalls int
}

var _ ports.ListingCache = (*MockListingCache)(nil)

func NewMockListingCache() *MockListingCache {
	return &MockListingCache{}
}

func (m *MockListingCache) GetHobbies(ctx context.Context) ([]domain.Hobby, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hobbies, m.hobbiesSet
}

func (m *MockListingCache) SetHobbies(ctx context.Context, hobbies []domain.Hobby) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hobbies = hobbies
	m.hobbiesSet = true
}

func (m *MockListingCache) GetApprovedChildren(ctx context.Context) ([]domain.PublicChild, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.children, m.childrenSet
}

func (m *MockListingCache) SetApprovedChildren(ctx context.Context, children []domain.PublicChild) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.children = children
	m.childrenSet = true
}

func (m *MockListingCache) InvalidateApprovedChildren(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateCalls++
	m.children = nil
	m.childrenSet = false
}
