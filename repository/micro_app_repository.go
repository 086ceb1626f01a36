package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// microAppRepository implements the MicroAppRepository interface
type microAppRepository struct {
	q Queryable
}

const microAppColumns = `id, name, description, version, api_schema, icon, color, is_active, transaction_count, rating, review_count, price_per_call, created_at`

func scanMicroApp(row pgx.Row) (*entities.MicroApp, error) {
	var app entities.MicroApp
	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Description,
		&app.Version,
		&app.APISchema,
		&app.Icon,
		&app.Color,
		&app.IsActive,
		&app.TransactionCount,
		&app.Rating,
		&app.ReviewCount,
		&app.PricePerCall,
		&app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByID retrieves a micro-app by id
func (r *microAppRepository) GetByID(ctx context.Context, id string) (*entities.MicroApp, error) {
	query := `SELECT ` + microAppColumns + ` FROM micro_apps WHERE id = $1`

	app, err := scanMicroApp(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get micro-app %s: %w", id, err)
	}
	return app, nil
}

// Create creates a new micro-app
func (r *microAppRepository) Create(ctx context.Context, app *entities.MicroApp) error {
	query := `
		INSERT INTO micro_apps (id, name, description, version, api_schema, icon, color, is_active, transaction_count, rating, review_count, price_per_call)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	app.ID = uuid.NewString()
	err := r.q.QueryRow(ctx, query,
		app.ID,
		app.Name,
		app.Description,
		app.Version,
		app.APISchema,
		app.Icon,
		app.Color,
		app.IsActive,
		app.TransactionCount,
		app.Rating,
		app.ReviewCount,
		app.PricePerCall,
	).Scan(&app.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create micro-app: %w", err)
	}
	return nil
}

// List returns all micro-apps in creation order
func (r *microAppRepository) List(ctx context.Context) ([]*entities.MicroApp, error) {
	query := `SELECT ` + microAppColumns + ` FROM micro_apps ORDER BY created_at, name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list micro-apps: %w", err)
	}
	defer rows.Close()

	var apps []*entities.MicroApp
	for rows.Next() {
		app, err := scanMicroApp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan micro-app: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate micro-apps: %w", err)
	}
	return apps, nil
}

// IncrementTransactionCount bumps the counter in place. The increment is a
// single statement so concurrent transaction creates cannot lose updates.
func (r *microAppRepository) IncrementTransactionCount(ctx context.Context, id string) error {
	query := `
		UPDATE micro_apps
		SET transaction_count = transaction_count + 1
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment transaction count for micro-app %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("micro-app %s: %w", id, entities.ErrNotFound)
	}
	return nil
}
