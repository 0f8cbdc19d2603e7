package participant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/secretsanta/internal/models"
)

// PostgresConfig holds configuration for the Postgres participant repository
type PostgresConfig struct {
	DB *sql.DB
}

type postgresRepository struct {
	db *sql.DB
}

// NewPostgres creates a new Postgres-backed participant repository
func NewPostgres(cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &postgresRepository{
		db: cfg.DB,
	}, nil
}

const participantColumns = `id, event_id, name, position, claimed, claimed_at, draws_participant_id, active, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row scanner) (*models.Participant, error) {
	var p models.Participant
	err := row.Scan(&p.ID, &p.EventID, &p.Name, &p.Position, &p.Claimed, &p.ClaimedAt,
		&p.DrawsParticipantID, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = p.CreatedAt.UTC()
	if p.ClaimedAt != nil {
		claimedAt := p.ClaimedAt.UTC()
		p.ClaimedAt = &claimedAt
	}

	return &p, nil
}

// SaveParticipants upserts every participant in one transaction
func (r *postgresRepository) SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error {
	if input == nil || input.EventID == "" {
		return errEmptyEventID
	}

	if len(input.Participants) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range input.Participants {
		if p == nil || p.ID == "" {
			return errors.New("participant and participant ID cannot be empty")
		}

		p.EventID = input.EventID

		_, err := tx.ExecContext(ctx, `
			INSERT INTO participant (`+participantColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (event_id, id) DO UPDATE SET
				name = EXCLUDED.name,
				position = EXCLUDED.position,
				claimed = EXCLUDED.claimed,
				claimed_at = EXCLUDED.claimed_at,
				draws_participant_id = EXCLUDED.draws_participant_id,
				active = EXCLUDED.active
		`, p.ID, p.EventID, p.Name, p.Position, p.Claimed, p.ClaimedAt,
			p.DrawsParticipantID, p.Active, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to save participant %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit participants: %w", err)
	}

	return nil
}

// GetParticipant retrieves one participant of an event
func (r *postgresRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.EventID == "" || input.ParticipantID == "" {
		return nil, errEmptyIDs
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+participantColumns+`
		FROM participant
		WHERE event_id = $1 AND id = $2
	`, input.EventID, input.ParticipantID)

	p, err := scanParticipant(row)
	if err == sql.ErrNoRows {
		return nil, ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// GetParticipantsInEvent retrieves all participants of an event ordered by position
func (r *postgresRepository) GetParticipantsInEvent(ctx context.Context, input *GetParticipantsInEventInput) (*GetParticipantsInEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errEmptyEventID
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+participantColumns+`
		FROM participant
		WHERE event_id = $1
		ORDER BY position
	`, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []*models.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}

	return &GetParticipantsInEventOutput{
		Participants: participants,
	}, nil
}

// ClaimParticipant flips claimed in a single conditional UPDATE so only one caller wins
func (r *postgresRepository) ClaimParticipant(ctx context.Context, input *ClaimParticipantInput) (*models.Participant, error) {
	if input == nil || input.EventID == "" || input.ParticipantID == "" {
		return nil, errEmptyIDs
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE participant
		SET claimed = TRUE, claimed_at = $3
		WHERE event_id = $1 AND id = $2 AND claimed = FALSE
		RETURNING `+participantColumns,
		input.EventID, input.ParticipantID, input.ClaimedAt)

	p, err := scanParticipant(row)
	if err == sql.ErrNoRows {
		// Either missing or claimed by someone else
		if _, getErr := r.GetParticipant(ctx, &GetParticipantInput{
			EventID:       input.EventID,
			ParticipantID: input.ParticipantID,
		}); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyClaimed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim participant: %w", err)
	}

	return p, nil
}

// SetParticipantActive updates the active flag
func (r *postgresRepository) SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) (*models.Participant, error) {
	if input == nil || input.EventID == "" || input.ParticipantID == "" {
		return nil, errEmptyIDs
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE participant
		SET active = $3
		WHERE event_id = $1 AND id = $2
		RETURNING `+participantColumns,
		input.EventID, input.ParticipantID, input.Active)

	p, err := scanParticipant(row)
	if err == sql.ErrNoRows {
		return nil, ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return p, nil
}

// AssignDraws records every draw in one transaction
func (r *postgresRepository) AssignDraws(ctx context.Context, input *AssignDrawsInput) error {
	if input == nil || input.EventID == "" {
		return errEmptyEventID
	}

	if len(input.Draws) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for giverID, receiverID := range input.Draws {
		result, err := tx.ExecContext(ctx, `
			UPDATE participant
			SET draws_participant_id = $3
			WHERE event_id = $1 AND id = $2
		`, input.EventID, giverID, receiverID)
		if err != nil {
			return fmt.Errorf("failed to assign draw for %s: %w", giverID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to assign draw for %s: %w", giverID, err)
		}
		if affected == 0 {
			return ErrParticipantNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draws: %w", err)
	}

	return nil
}

// DeleteParticipantsInEvent removes every participant of an event
func (r *postgresRepository) DeleteParticipantsInEvent(ctx context.Context, input *DeleteParticipantsInEventInput) error {
	if input == nil || input.EventID == "" {
		return errEmptyEventID
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM participant WHERE event_id = $1`, input.EventID); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	return nil
}
