package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/secretsanta/internal/models"
)

// PostgresConfig holds configuration for the Postgres event repository
type PostgresConfig struct {
	DB *sql.DB
}

type postgresRepository struct {
	db *sql.DB
}

// NewPostgres creates a new Postgres-backed event repository.
// The schema must already exist, see db.CreateSchema.
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

const selectEvent = `
	SELECT id, public_id, admin_id, name, description, date, place, budget,
	       organizer_participating, organizer_participant_id, status, created_at
	FROM event
`

// SaveEvent inserts the event, or updates it when the ID already exists
func (r *postgresRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errNilInput
	}

	e := input.Event
	if e.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO event (id, public_id, admin_id, name, description, date, place, budget,
		                   organizer_participating, organizer_participant_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			date = EXCLUDED.date,
			place = EXCLUDED.place,
			budget = EXCLUDED.budget,
			organizer_participating = EXCLUDED.organizer_participating,
			organizer_participant_id = EXCLUDED.organizer_participant_id,
			status = EXCLUDED.status
	`, e.ID, e.PublicID, e.AdminID, e.Name, e.Description, e.Date, e.Place, e.Budget,
		e.OrganizerParticipating, e.OrganizerParticipantID, string(e.Status), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID
func (r *postgresRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	return r.queryOne(ctx, selectEvent+" WHERE id = $1", input.EventID)
}

// GetEventByPublicID retrieves an event by its public identifier
func (r *postgresRepository) GetEventByPublicID(ctx context.Context, input *GetEventByPublicIDInput) (*models.Event, error) {
	if input == nil || input.PublicID == "" {
		return nil, errors.New("input and public ID cannot be empty")
	}

	return r.queryOne(ctx, selectEvent+" WHERE public_id = $1", input.PublicID)
}

// GetEventByAdminID retrieves an event by its admin identifier
func (r *postgresRepository) GetEventByAdminID(ctx context.Context, input *GetEventByAdminIDInput) (*models.Event, error) {
	if input == nil || input.AdminID == "" {
		return nil, errors.New("input and admin ID cannot be empty")
	}

	return r.queryOne(ctx, selectEvent+" WHERE admin_id = $1", input.AdminID)
}

func (r *postgresRepository) queryOne(ctx context.Context, query string, arg string) (*models.Event, error) {
	var e models.Event
	var status string

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&e.ID, &e.PublicID, &e.AdminID, &e.Name, &e.Description, &e.Date, &e.Place, &e.Budget,
		&e.OrganizerParticipating, &e.OrganizerParticipantID, &status, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	e.Status = models.EventStatus(status)
	e.CreatedAt = e.CreatedAt.UTC()

	return &e, nil
}

// DeleteEvent removes the event. Participants and exclusions go with it through ON DELETE CASCADE.
func (r *postgresRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM event WHERE id = $1`, input.EventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
