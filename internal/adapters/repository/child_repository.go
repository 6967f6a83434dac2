package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

type ChildRepository struct {
	db *sql.DB
}

var _ ports.ChildRepository = (*ChildRepository)(nil)

func NewChildRepository(db *sql.DB) *ChildRepository {
	return &ChildRepository{db: db}
}

// CreateChild inserts the child row and its hobby links in one
// transaction so a failed link insert never leaves a half-created child.
func (r *ChildRepository) CreateChild(ctx context.Context, child domain.Child, hobbyIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO children (id, orphanage_id, name, age, image_url, about, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		child.ID,
		child.OrphanageID,
		child.Name,
		child.Age,
		child.ImageURL,
		child.About,
		child.CreatedAt,
	)
	if err != nil {
		return err
	}

	for _, hobbyID := range hobbyIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO child_hobbies (child_id, hobby_id) VALUES ($1, $2)",
			child.ID,
			hobbyID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ChildRepository) ListByOrphanage(ctx context.Context, orphanageID string) ([]domain.Child, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, orphanage_id, name, age, image_url, about, created_at FROM children WHERE orphanage_id = $1",
		orphanageID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []domain.Child
	for rows.Next() {
		var child domain.Child
		if err := rows.Scan(&child.ID, &child.OrphanageID, &child.Name, &child.Age, &child.ImageURL, &child.About, &child.CreatedAt); err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, rows.Err()
}

func (r *ChildRepository) GetByID(ctx context.Context, childID string) (*domain.ChildDetail, error) {
	var detail domain.ChildDetail
	err := r.db.QueryRowContext(ctx,
		"SELECT id, orphanage_id, name, age, image_url, about, created_at FROM children WHERE id = $1",
		childID,
	).Scan(&detail.ID, &detail.OrphanageID, &detail.Name, &detail.Age, &detail.ImageURL, &detail.About, &detail.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	hobbies, err := r.hobbyNames(ctx, childID)
	if err != nil {
		return nil, err
	}
	detail.Hobbies = hobbies
	return &detail, nil
}

func (r *ChildRepository) GetPublicByID(ctx context.Context, childID string) (*domain.ChildDetail, error) {
	var detail domain.ChildDetail
	err := r.db.QueryRowContext(ctx,
		`SELECT c.id, c.orphanage_id, c.name, c.age, c.image_url, c.about, c.created_at, a.name
         FROM children c
         JOIN accounts a ON c.orphanage_id = a.id
         WHERE c.id = $1`,
		childID,
	).Scan(&detail.ID, &detail.OrphanageID, &detail.Name, &detail.Age, &detail.ImageURL, &detail.About, &detail.CreatedAt, &detail.OrphanageName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	hobbies, err := r.hobbyNames(ctx, childID)
	if err != nil {
		return nil, err
	}
	detail.Hobbies = hobbies
	return &detail, nil
}

// ListApproved returns children of approved orphanages only; this is
// the single place the public listing's approval filter lives.
func (r *ChildRepository) ListApproved(ctx context.Context) ([]domain.PublicChild, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.orphanage_id, c.name, c.age, c.image_url, c.about, c.created_at, a.name
         FROM children c
         JOIN accounts a ON c.orphanage_id = a.id
         JOIN orphanage_verification v ON c.orphanage_id = v.orphanage_id
         WHERE v.status = 'approved'`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []domain.PublicChild
	for rows.Next() {
		var child domain.PublicChild
		if err := rows.Scan(&child.ID, &child.OrphanageID, &child.Name, &child.Age, &child.ImageURL, &child.About, &child.CreatedAt, &child.OrphanageName); err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, rows.Err()
}

func (r *ChildRepository) ListHobbies(ctx context.Context) ([]domain.Hobby, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM hobbies")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hobbies []domain.Hobby
	for rows.Next() {
		var hobby domain.Hobby
		if err := rows.Scan(&hobby.ID, &hobby.Name); err != nil {
			return nil, err
		}
		hobbies = append(hobbies, hobby)
	}
	return hobbies, rows.Err()
}

func (r *ChildRepository) hobbyNames(ctx context.Context, childID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT h.name FROM hobbies h
         JOIN child_hobbies ch ON h.id = ch.hobby_id
         WHERE ch.child_id = $1`,
		childID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
