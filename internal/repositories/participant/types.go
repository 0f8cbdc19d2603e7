package participant

import (
	"time"

	"github.com/KirkDiggler/secretsanta/internal/models"
)

type SaveParticipantsInput struct {
	EventID      string
	Participants []*models.Participant
}

type GetParticipantInput struct {
	EventID       string
	ParticipantID string
}

type GetParticipantsInEventInput struct {
	EventID string
}

type GetParticipantsInEventOutput struct {
	Participants []*models.Participant
}

type ClaimParticipantInput struct {
	EventID       string
	ParticipantID string
	ClaimedAt     time.Time
}

type SetParticipantActiveInput struct {
	EventID       string
	ParticipantID string
	Active        bool
}

// AssignDrawsInput maps giver participant ID to receiver participant ID
type AssignDrawsInput struct {
	EventID string
	Draws   map[string]string
}

type DeleteParticipantsInEventInput struct {
	EventID string
}
