package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// AuthService handles registration and both login flows. Passwords are
// bcrypt-hashed before they reach the repository and never leave it.
type AuthService struct {
	accountRepo ports.AccountRepository
	tokens      ports.TokenService
}

func NewAuthService(accountRepo ports.AccountRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) error {
	switch {
	case name == "":
		return domain.Validationf("name is required")
	case email == "":
		return domain.Validationf("email is required")
	case password == "":
		return domain.Validationf("password is required")
	}
	if role == "" {
		role = domain.RoleOrphanage
	}
	if role != domain.RoleOrphanage && role != domain.RoleAdmin {
		return domain.Validationf("unsupported role %q", role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := domain.Account{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	return s.accountRepo.CreateAccount(ctx, account)
}

// Login authenticates an account by email and password and returns a
// token bound to the account id. Unknown emails are reported as not
// found, wrong passwords as unauthorized, matching the API contract.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.Validationf("email and password are required")
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	return s.tokens.Issue(account.ID, "", TokenTTL)
}

// AdminLogin authenticates against admin accounts only and returns a
// role-bearing token. A missing admin row and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.Validationf("email and password are required")
	}

	account, err := s.accountRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	return s.tokens.Issue(account.ID, account.Role, TokenTTL)
}
