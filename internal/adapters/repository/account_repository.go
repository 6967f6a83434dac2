package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type AccountRepository struct {
	db *sql.DB
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) CreateAccount(ctx context.Context, account domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO accounts (id, name, email, password, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		account.ID,
		account.Name,
		account.Email,
		account.Password,
		account.Role,
		account.CreatedAt,
	)
	return err
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password, role, created_at FROM accounts WHERE email = $1",
		email,
	).Scan(&account.ID, &account.Name, &account.Email, &account.Password, &account.Role, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password, role, created_at FROM accounts WHERE email = $1 AND role = 'admin'",
		email,
	).Scan(&account.ID, &account.Name, &account.Email, &account.Password, &account.Role, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
