package exclusion

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/secretsanta/internal/repositories/exclusion Repository

import (
	"context"

	"github.com/KirkDiggler/secretsanta/internal/models"
)

// Repository defines the interface for exclusion persistence
type Repository interface {
	// SaveExclusions appends exclusions to an event
	SaveExclusions(ctx context.Context, input *SaveExclusionsInput) error

	// GetExclusionsForEvent returns an event's exclusions in the order they were saved
	GetExclusionsForEvent(ctx context.Context, input *GetExclusionsForEventInput) ([]*models.Exclusion, error)

	// DeleteExclusionsForEvent removes every exclusion of an event
	DeleteExclusionsForEvent(ctx context.Context, input *DeleteExclusionsForEventInput) error
}
