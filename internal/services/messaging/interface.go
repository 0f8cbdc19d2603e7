package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/secretsanta/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRevealMessage returns the message shown when a participant learns their receiver
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)

	// GetEventCreatedMessage returns the announcement posted after an event is created
	GetEventCreatedMessage(ctx context.Context, input *GetEventCreatedMessageInput) (*GetEventCreatedMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
