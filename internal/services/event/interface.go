package event

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/secretsanta/internal/services/event Service

import "context"

// Service defines the interface for gift exchange operations
type Service interface {
	// CheckFeasibility reports whether the names and exclusions admit any pairing.
	// Nothing is stored.
	CheckFeasibility(ctx context.Context, input *CheckFeasibilityInput) (*CheckFeasibilityOutput, error)

	// CreateEvent stores a new event with its participants and exclusions and assigns every draw
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)

	// GetEvent returns the public view of an event
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)

	// ClaimParticipant marks a participant as claimed and reveals who they give to
	ClaimParticipant(ctx context.Context, input *ClaimParticipantInput) (*ClaimParticipantOutput, error)

	// GetDraw returns a claimed participant's receiver
	GetDraw(ctx context.Context, input *GetDrawInput) (*GetDrawOutput, error)

	// GetAdminEvent returns the organizer's view of an event
	GetAdminEvent(ctx context.Context, input *GetAdminEventInput) (*GetAdminEventOutput, error)

	// SetParticipantActive shows or hides a participant on the public view
	SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) (*SetParticipantActiveOutput, error)

	// GetPairings lists every giver and receiver for an organizer who is not participating
	GetPairings(ctx context.Context, input *GetPairingsInput) (*GetPairingsOutput, error)

	// ImportExclusions turns an earlier event's pairings into one-way exclusions
	ImportExclusions(ctx context.Context, input *ImportExclusionsInput) (*ImportExclusionsOutput, error)
}
