package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/secretsanta/internal/repositories/participant Repository

import (
	"context"

	"github.com/KirkDiggler/secretsanta/internal/models"
)

// Repository defines the interface for participant data persistence
type Repository interface {
	// SaveParticipants persists participants of a single event
	SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error

	// GetParticipant retrieves one participant of an event
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantsInEvent retrieves all participants of an event in registration order
	GetParticipantsInEvent(ctx context.Context, input *GetParticipantsInEventInput) (*GetParticipantsInEventOutput, error)

	// ClaimParticipant marks a participant as claimed. Exactly one concurrent caller succeeds.
	ClaimParticipant(ctx context.Context, input *ClaimParticipantInput) (*models.Participant, error)

	// SetParticipantActive toggles whether a participant is listed publicly
	SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) (*models.Participant, error)

	// AssignDraws records the receiver of every giver in the event
	AssignDraws(ctx context.Context, input *AssignDrawsInput) error

	// DeleteParticipantsInEvent removes every participant of an event
	DeleteParticipantsInEvent(ctx context.Context, input *DeleteParticipantsInEventInput) error
}
