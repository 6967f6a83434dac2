// Package mocks provides in-memory implementations of the port
// interfaces for testing. Services are tested against these instead of
// a real database; each mock tracks calls and supports error injection.
package mocks

import (
	"context"
	"sync"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// MockAccountRepository implements ports.AccountRepository for testing.
type MockAccountRepository struct {
	mu sync.RWMutex

	accounts map[string]*domain.Account // keyed by email

	CreateAccountCalls []domain.Account

	CreateAccountError error
	FindByEmailError   error
}

var _ ports.AccountRepository = (*MockAccountRepository)(nil)

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

// SeedAccount adds an account for test setup.
func (m *MockAccountRepository) SeedAccount(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.Email] = account
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateAccountCalls = append(m.CreateAccountCalls, account)
	if m.CreateAccountError != nil {
		return m.CreateAccountError
	}
	m.accounts[account.Email] = &account
	return nil
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindByEmailError != nil {
		return nil, m.FindByEmailError
	}
	account, ok := m.accounts[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (m *MockAccountRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := m.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account.Role != domain.RoleAdmin {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// MockVerificationRepository implements ports.VerificationRepository.
type MockVerificationRepository struct {
	mu sync.RWMutex

	records map[string]*domain.VerificationRecord
	// Names and emails for the admin request views, keyed by orphanage id.
	names  map[string]string
	emails map[string]string

	CreateCalls []domain.VerificationRecord
	DecideCalls []string
	// OutboxPayloads captures the payload passed alongside each decision.
	OutboxPayloads [][]byte

	CreateError error
	GetError    error
	DecideError error
	ListError   error
}

var _ ports.VerificationRepository = (*MockVerificationRepository)(nil)

func NewMockVerificationRepository() *MockVerificationRepository {
	return &MockVerificationRepository{
		records: make(map[string]*domain.VerificationRecord),
		names:   make(map[string]string),
		emails:  make(map[string]string),
	}
}

func (m *MockVerificationRepository) SeedRecord(record *domain.VerificationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.OrphanageID] = record
}

func (m *MockVerificationRepository) SeedAccountInfo(orphanageID, name, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names[orphanageID] = name
	m.emails[orphanageID] = email
}

func (m *MockVerificationRepository) Create(ctx context.Context, record domain.VerificationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, record)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.records[record.OrphanageID] = &record
	return nil
}

func (m *MockVerificationRepository) GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.VerificationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	record, ok := m.records[orphanageID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockVerificationRepository) Decide(ctx context.Context, orphanageID string, status domain.VerificationStatus, rejectionReason *string, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DecideCalls = append(m.DecideCalls, orphanageID)
	m.OutboxPayloads = append(m.OutboxPayloads, outboxPayload)
	if m.DecideError != nil {
		return m.DecideError
	}
	record, ok := m.records[orphanageID]
	if !ok {
		return domain.ErrNotFound
	}
	record.Status = status
	record.RejectionReason = rejectionReason
	return nil
}

func (m *MockVerificationRepository) ListRequests(ctx context.Context) ([]domain.VerificationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	var requests []domain.VerificationRequest
	for id, record := range m.records {
		requests = append(requests, domain.VerificationRequest{
			VerificationRecord: *record,
			Name:               m.names[id],
			Email:              m.emails[id],
		})
	}
	return requests, nil
}

func (m *MockVerificationRepository) GetRequestByID(ctx context.Context, orphanageID string) (*domain.VerificationRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[orphanageID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.VerificationRequest{
		VerificationRecord: *record,
		Name:               m.names[orphanageID],
		Email:              m.emails[orphanageID],
	}, nil
}

// MockChildRepository implements ports.ChildRepository.
type MockChildRepository struct {
	mu sync.RWMutex

	children map[string]*domain.Child
	hobbies  []domain.Hobby
	// hobby links per child id
	links map[string][]string
	// orphanage ids whose listing rows should appear as approved
	approved map[string]bool
	names    map[string]string

	CreateChildCalls  []domain.Child
	ListApprovedCalls int
	ListHobbiesCalls  int

	CreateChildError error
	ListError        error
}

var _ ports.ChildRepository = (*MockChildRepository)(nil)

func NewMockChildRepository() *MockChildRepository {
	return &MockChildRepository{
		children: make(map[string]*domain.Child),
		links:    make(map[string][]string),
		approved: make(map[string]bool),
		names:    make(map[string]string),
	}
}

func (m *MockChildRepository) SeedHobbies(hobbies []domain.Hobby) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hobbies = hobbies
}

func (m *MockChildRepository) SeedOrphanage(orphanageID, name string, isApproved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names[orphanageID] = name
	m.approved[orphanageID] = isApproved
}

func (m *MockChildRepository) SetApproved(orphanageID string, isApproved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approved[orphanageID] = isApproved
}

func (m *MockChildRepository) CreateChild(ctx context.Context, child domain.Child, hobbyIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateChildCalls = append(m.CreateChildCalls, child)
	if m.CreateChildError != nil {
		return m.CreateChildError
	}
	m.children[child.ID] = &child
	m.links[child.ID] = hobbyIDs
	return nil
}

func (m *MockChildRepository) ListByOrphanage(ctx context.Context, orphanageID string) ([]domain.Child, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	var children []domain.Child
	for _, child := range m.children {
		if child.OrphanageID == orphanageID {
			children = append(children, *child)
		}
	}
	return children, nil
}

func (m *MockChildRepository) GetByID(ctx context.Context, childID string) (*domain.ChildDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	child, ok := m.children[childID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.ChildDetail{Child: *child, Hobbies: m.hobbyNames(childID)}, nil
}

func (m *MockChildRepository) GetPublicByID(ctx context.Context, childID string) (*domain.ChildDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	child, ok := m.children[childID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.ChildDetail{
		Child:         *child,
		OrphanageName: m.names[child.OrphanageID],
		Hobbies:       m.hobbyNames(childID),
	}, nil
}

func (m *MockChildRepository) ListApproved(ctx context.Context) ([]domain.PublicChild, error) {
	m.mu.Lock()
	m.ListApprovedCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	var children []domain.PublicChild
	for _, child := range m.children {
		if m.approved[child.OrphanageID] {
			children = append(children, domain.PublicChild{
				Child:         *child,
				OrphanageName: m.names[child.OrphanageID],
			})
		}
	}
	return children, nil
}

func (m *MockChildRepository) ListHobbies(ctx context.Context) ([]domain.Hobby, error) {
	m.mu.Lock()
	m.ListHobbiesCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.hobbies, nil
}

func (m *MockChildRepository) hobbyNames(childID string) []string {
	names := []string{}
	for _, hobbyID := range m.links[childID] {
		for _, hobby := range m.hobbies {
			if hobby.ID == hobbyID {
				names = append(names, hobby.Name)
			}
		}
	}
	return names
}

// MockDonationRepository implements ports.DonationRepository.
type MockDonationRepository struct {
	mu sync.RWMutex

	donations map[string]*domain.DonationInfo

	UpsertCalls []domain.DonationInfo
	UpsertError error
}

var _ ports.DonationRepository = (*MockDonationRepository)(nil)

func NewMockDonationRepository() *MockDonationRepository {
	return &MockDonationRepository{donations: make(map[string]*domain.DonationInfo)}
}

func (m *MockDonationRepository) Upsert(ctx context.Context, info domain.DonationInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = append(m.UpsertCalls, info)
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.donations[info.OrphanageID] = &info
	return nil
}

func (m *MockDonationRepository) GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.DonationInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, ok := m.donations[orphanageID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return info, nil
}

// MockInterestRepository implements ports.InterestRepository.
type MockInterestRepository struct {
	mu sync.RWMutex

	submissions map[string]*domain.InterestSubmission

	CreateCalls    []domain.InterestSubmission
	OutboxPayloads [][]byte
	CreateError    error
}

var _ ports.InterestRepository = (*MockInterestRepository)(nil)

func NewMockInterestRepository() *MockInterestRepository {
	return &MockInterestRepository{submissions: make(map[string]*domain.InterestSubmission)}
}

func (m *MockInterestRepository) Create(ctx context.Context, submission domain.InterestSubmission, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, submission)
	m.OutboxPayloads = append(m.OutboxPayloads, outboxPayload)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.submissions[submission.ID] = &submission
	return nil
}

func (m *MockInterestRepository) ListByOrphanage(ctx context.Context, orphanageID string) ([]domain.InterestSubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var submissions []domain.InterestSubmission
	for _, sub := range m.submissions {
		if sub.OrphanageID == orphanageID {
			submissions = append(submissions, *sub)
		}
	}
	return submissions, nil
}
