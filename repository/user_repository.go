package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	q Queryable
}

const userColumns = `id, email, display_name, wallet_address, profile_image_url, reputation_score, created_at, updated_at`

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.WalletAddress,
		&user.ProfileImageURL,
		&user.ReputationScore,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by id
func (r *userRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (id, email, display_name, wallet_address, profile_image_url, reputation_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	user.ID = uuid.NewString()
	err := r.q.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.WalletAddress,
		user.ProfileImageURL,
		user.ReputationScore,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Upsert reconciles an identity from an auth callback. New users get the
// signup default reputation; returning users keep their score and only
// refresh profile fields.
func (r *userRepository) Upsert(ctx context.Context, identity entities.UserIdentity, defaultReputation float64) (*entities.User, error) {
	query := `
		INSERT INTO users (id, email, display_name, profile_image_url, reputation_score)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = NOW()
		RETURNING ` + userColumns + `
	`

	user, err := scanUser(r.q.QueryRow(ctx, query,
		identity.ID,
		identity.Email,
		identity.DisplayName,
		identity.ProfileImageURL,
		defaultReputation,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", identity.ID, err)
	}
	return user, nil
}

// Update merges a partial update over an existing user. Nil fields keep
// their stored values.
func (r *userRepository) Update(ctx context.Context, id string, update entities.UserUpdate) (*entities.User, error) {
	query := `
		UPDATE users SET
			display_name = COALESCE($2, display_name),
			wallet_address = COALESCE($3, wallet_address),
			profile_image_url = COALESCE($4, profile_image_url),
			reputation_score = COALESCE($5, reputation_score),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	user, err := scanUser(r.q.QueryRow(ctx, query,
		id,
		update.DisplayName,
		update.WalletAddress,
		update.ProfileImageURL,
		update.ReputationScore,
	))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", id, entities.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return user, nil
}

// List returns all users, newest first
func (r *userRepository) List(ctx context.Context) ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
