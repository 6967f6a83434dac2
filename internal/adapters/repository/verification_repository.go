package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type VerificationRepository struct {
	db *sql.DB
}

var _ ports.VerificationRepository = (*VerificationRepository)(nil)

func NewVerificationRepository(db *sql.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, record domain.VerificationRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orphanage_verification (orphanage_id, governorate, address, registration_certificate_number,
                                             operating_license_number, license_expiration_date, manager_national_id,
                                             tax_id, bank_account_details, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		record.OrphanageID,
		record.Governorate,
		record.Address,
		record.RegistrationCertificateNumber,
		record.OperatingLicenseNumber,
		record.LicenseExpirationDate,
		record.ManagerNationalID,
		record.TaxID,
		record.BankAccountDetails,
		record.Status,
	)
	return err
}

func (r *VerificationRepository) GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.VerificationRecord, error) {
	var record domain.VerificationRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT orphanage_id, governorate, address, registration_certificate_number,
                operating_license_number, to_char(license_expiration_date, 'YYYY-MM-DD'),
                manager_national_id, tax_id, bank_account_details, status, rejection_reason
         FROM orphanage_verification
         WHERE orphanage_id = $1`,
		orphanageID,
	).Scan(
		&record.OrphanageID,
		&record.Governorate,
		&record.Address,
		&record.RegistrationCertificateNumber,
		&record.OperatingLicenseNumber,
		&record.LicenseExpirationDate,
		&record.ManagerNationalID,
		&record.TaxID,
		&record.BankAccountDetails,
		&record.Status,
		&record.RejectionReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Decide updates the status and rejection reason and writes the
// decision event to the outbox, all in one transaction.
func (r *VerificationRepository) Decide(ctx context.Context, orphanageID string, status domain.VerificationStatus, rejectionReason *string, outboxPayload []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE orphanage_verification SET status = $1, rejection_reason = $2 WHERE orphanage_id = $3",
		status,
		rejectionReason,
		orphanageID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO outbox_events (id, event_type, payload, created_at) VALUES ($1, $2, $3, NOW())",
		uuid.NewString(),
		ports.EventVerificationDecided,
		outboxPayload,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

const requestColumns = `v.orphanage_id, a.name, a.email, v.governorate, v.address,
       v.registration_certificate_number, v.operating_license_number,
       to_char(v.license_expiration_date, 'YYYY-MM-DD'), v.manager_national_id,
       v.tax_id, v.bank_account_details, v.status, v.rejection_reason`

func (r *VerificationRepository) ListRequests(ctx context.Context) ([]domain.VerificationRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+requestColumns+`
         FROM orphanage_verification v
         JOIN accounts a ON v.orphanage_id = a.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.VerificationRequest
	for rows.Next() {
		var req domain.VerificationRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *VerificationRepository) GetRequestByID(ctx context.Context, orphanageID string) (*domain.VerificationRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+requestColumns+`
         FROM orphanage_verification v
         JOIN accounts a ON v.orphanage_id = a.id
         WHERE v.orphanage_id = $1`,
		orphanageID,
	)

	var req domain.VerificationRequest
	err := scanRequest(row, &req)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner, req *domain.VerificationRequest) error {
	return row.Scan(
		&req.OrphanageID,
		&req.Name,
		&req.Email,
		&req.Governorate,
		&req.Address,
		&req.RegistrationCertificateNumber,
		&req.OperatingLicenseNumber,
		&req.LicenseExpirationDate,
		&req.ManagerNationalID,
		&req.TaxID,
		&req.BankAccountDetails,
		&req.Status,
		&req.RejectionReason,
	)
}
