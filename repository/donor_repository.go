package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// donorRepository implements the DonorRepository interface
type donorRepository struct {
	q Queryable
}

const donorColumns = `id, name, email, total_donated, donation_count, status, created_at, updated_at`

func scanDonor(row pgx.Row) (*entities.Donor, error) {
	var donor entities.Donor
	err := row.Scan(
		&donor.ID,
		&donor.Name,
		&donor.Email,
		&donor.TotalDonated,
		&donor.DonationCount,
		&donor.Status,
		&donor.CreatedAt,
		&donor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByID retrieves a donor by id
func (r *donorRepository) GetByID(ctx context.Context, id string) (*entities.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE id = $1`

	donor, err := scanDonor(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get donor %s: %w", id, err)
	}
	return donor, nil
}

// Create creates a new donor
func (r *donorRepository) Create(ctx context.Context, donor *entities.Donor) error {
	query := `
		INSERT INTO donors (id, name, email, total_donated, donation_count, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	donor.ID = uuid.NewString()
	err := r.q.QueryRow(ctx, query,
		donor.ID,
		donor.Name,
		donor.Email,
		donor.TotalDonated,
		donor.DonationCount,
		donor.Status,
	).Scan(&donor.CreatedAt, &donor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create donor: %w", err)
	}
	return nil
}

// Update merges a partial update over an existing donor
func (r *donorRepository) Update(ctx context.Context, id string, update entities.DonorUpdate) (*entities.Donor, error) {
	query := `
		UPDATE donors SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			total_donated = COALESCE($4, total_donated),
			donation_count = COALESCE($5, donation_count),
			status = COALESCE($6, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + donorColumns + `
	`

	donor, err := scanDonor(r.q.QueryRow(ctx, query,
		id,
		update.Name,
		update.Email,
		update.TotalDonated,
		update.DonationCount,
		update.Status,
	))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("donor %s: %w", id, entities.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update donor %s: %w", id, err)
	}
	return donor, nil
}

// List returns all donors, newest first
func (r *donorRepository) List(ctx context.Context) ([]*entities.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	defer rows.Close()

	var donors []*entities.Donor
	for rows.Next() {
		donor, err := scanDonor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donor: %w", err)
		}
		donors = append(donors, donor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate donors: %w", err)
	}
	return donors, nil
}
