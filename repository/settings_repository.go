package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// settingsRepository implements the DeveloperSettingsRepository interface
type settingsRepository struct {
	q Queryable
}

const settingsColumns = `id, user_id, preferred_llm, created_at, updated_at`

func scanSettings(row pgx.Row) (*entities.DeveloperSettings, error) {
	var settings entities.DeveloperSettings
	err := row.Scan(
		&settings.ID,
		&settings.UserID,
		&settings.PreferredLLM,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetByUserID retrieves a user's settings, nil if never written
func (r *settingsRepository) GetByUserID(ctx context.Context, userID string) (*entities.DeveloperSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM developer_settings WHERE user_id = $1`

	settings, err := scanSettings(r.q.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for user %s: %w", userID, err)
	}
	return settings, nil
}

// Upsert writes a user's settings. The unique index on user_id keeps at most
// one row per user no matter how many times the preference is saved.
func (r *settingsRepository) Upsert(ctx context.Context, userID, preferredLLM string) (*entities.DeveloperSettings, error) {
	query := `
		INSERT INTO developer_settings (id, user_id, preferred_llm)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_llm = EXCLUDED.preferred_llm,
			updated_at = NOW()
		RETURNING ` + settingsColumns + `
	`

	settings, err := scanSettings(r.q.QueryRow(ctx, query, uuid.NewString(), userID, preferredLLM))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert settings for user %s: %w", userID, err)
	}
	return settings, nil
}
