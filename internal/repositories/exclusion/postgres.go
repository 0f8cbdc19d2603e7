package exclusion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/secretsanta/internal/models"
)

// PostgresConfig holds configuration for the Postgres exclusion repository
type PostgresConfig struct {
	DB *sql.DB
}

type postgresRepository struct {
	db *sql.DB
}

// NewPostgres creates a new Postgres-backed exclusion repository
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &postgresRepository{
		db: cfg.DB,
	}, nil
}

// SaveExclusions inserts exclusions in one transaction; seq keeps their order
func (r *postgresRepository) SaveExclusions(ctx context.Context, input *SaveExclusionsInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	if len(input.Exclusions) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ex := range input.Exclusions {
		if ex == nil {
			return errors.New("exclusion cannot be nil")
		}

		ex.EventID = input.EventID

		_, err := tx.ExecContext(ctx, `
			INSERT INTO exclusion (id, event_id, participant_a_name, participant_b_name, direction)
			VALUES ($1, $2, $3, $4, $5)
		`, ex.ID, ex.EventID, ex.ParticipantAName, ex.ParticipantBName, string(ex.Direction))
		if err != nil {
			return fmt.Errorf("failed to save exclusion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit exclusions: %w", err)
	}

	return nil
}

// GetExclusionsForEvent returns exclusions in insertion order
func (r *postgresRepository) GetExclusionsForEvent(ctx context.Context, input *GetExclusionsForEventInput) ([]*models.Exclusion, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_id, participant_a_name, participant_b_name, direction
		FROM exclusion
		WHERE event_id = $1
		ORDER BY seq
	`, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exclusions: %w", err)
	}
	defer rows.Close()

	exclusions := []*models.Exclusion{}
	for rows.Next() {
		var ex models.Exclusion
		var direction string
		if err := rows.Scan(&ex.ID, &ex.EventID, &ex.ParticipantAName, &ex.ParticipantBName, &direction); err != nil {
			return nil, fmt.Errorf("failed to scan exclusion: %w", err)
		}
		ex.Direction = models.ExclusionDirection(direction)
		exclusions = append(exclusions, &ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exclusions: %w", err)
	}

	return exclusions, nil
}

// DeleteExclusionsForEvent removes every exclusion of an event
func (r *postgresRepository) DeleteExclusionsForEvent(ctx context.Context, input *DeleteExclusionsForEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM exclusion WHERE event_id = $1`, input.EventID); err != nil {
		return fmt.Errorf("failed to delete exclusions: %w", err)
	}

	return nil
}
