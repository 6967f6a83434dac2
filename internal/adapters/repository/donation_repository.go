package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type DonationRepository struct {
	db *sql.DB
}

var _ ports.DonationRepository = (*DonationRepository)(nil)

func NewDonationRepository(db *sql.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Upsert keeps at most one donation channel per orphanage.
func (r *DonationRepository) Upsert(ctx context.Context, info domain.DonationInfo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO donations (orphanage_id, donation_method, donation_details)
         VALUES ($1, $2, $3)
         ON CONFLICT (orphanage_id)
         DO UPDATE SET donation_method = EXCLUDED.donation_method, donation_details = EXCLUDED.donation_details`,
		info.OrphanageID,
		info.DonationMethod,
		info.DonationDetails,
	)
	return err
}

func (r *DonationRepository) GetByOrphanageID(ctx context.Context, orphanageID string) (*domain.DonationInfo, error) {
	var info domain.DonationInfo
	err := r.db.QueryRowContext(ctx,
		"SELECT donation_method, donation_details FROM donations WHERE orphanage_id = $1",
		orphanageID,
	).Scan(&info.DonationMethod, &info.DonationDetails)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}
