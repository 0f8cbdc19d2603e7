package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/secretsanta/internal/repositories/event Repository

import (
	"context"

	"github.com/KirkDiggler/secretsanta/internal/models"
)

// Repository defines the interface for event data persistence
type Repository interface {
	// SaveEvent persists an event and its public and admin lookups
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error)

	// GetEventByPublicID retrieves an event by the identifier shared with participants
	GetEventByPublicID(ctx context.Context, input *GetEventByPublicIDInput) (*models.Event, error)

	// GetEventByAdminID retrieves an event by the organizer's identifier
	GetEventByAdminID(ctx context.Context, input *GetEventByAdminIDInput) (*models.Event, error)

	// DeleteEvent removes an event and its lookups. Deleting a missing event is not an error.
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error
}
