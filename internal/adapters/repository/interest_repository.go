package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type InterestRepository struct {
	db *sql.DB
}

var _ ports.InterestRepository = (*InterestRepository)(nil)

func NewInterestRepository(db *sql.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

// Create inserts the submission (creation timestamp is assigned by the
// database) and the interest event in one transaction.
func (r *InterestRepository) Create(ctx context.Context, submission domain.InterestSubmission, outboxPayload []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO interest_submissions (id, orphanage_id, child_id, guest_name, guest_email, interest_type, message, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`,
		submission.ID,
		submission.OrphanageID,
		submission.ChildID,
		submission.GuestName,
		submission.GuestEmail,
		submission.Type,
		submission.Message,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO outbox_events (id, event_type, payload, created_at) VALUES ($1, $2, $3, NOW())",
		uuid.NewString(),
		ports.EventInterestCreated,
		outboxPayload,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *InterestRepository) ListByOrphanage(ctx context.Context, orphanageID string) ([]domain.InterestSubmission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.orphanage_id, s.child_id, c.name, s.guest_name, s.guest_email, s.interest_type, s.message, s.created_at
         FROM interest_submissions s
         LEFT JOIN children c ON s.child_id = c.id
         WHERE s.orphanage_id = $1`,
		orphanageID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.InterestSubmission
	for rows.Next() {
		var sub domain.InterestSubmission
		var childID, childName sql.NullString
		if err := rows.Scan(&sub.ID, &sub.OrphanageID, &childID, &childName, &sub.GuestName, &sub.GuestEmail, &sub.Type, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, err
		}
		if childID.Valid {
			sub.ChildID = &childID.String
		}
		if childName.Valid {
			sub.ChildName = &childName.String
		}
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}
