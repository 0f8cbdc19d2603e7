package event

import (
	"time"

	"github.com/KirkDiggler/secretsanta/internal/common/clock"
	"github.com/KirkDiggler/secretsanta/internal/common/uuid"
	"github.com/KirkDiggler/secretsanta/internal/draw"
	"github.com/KirkDiggler/secretsanta/internal/models"
	eventRepo "github.com/KirkDiggler/secretsanta/internal/repositories/event"
	exclusionRepo "github.com/KirkDiggler/secretsanta/internal/repositories/exclusion"
	participantRepo "github.com/KirkDiggler/secretsanta/internal/repositories/participant"
)

// UnassignedName is shown in place of a receiver that could not be resolved
const UnassignedName = "Unassigned"

// Config holds the service's dependencies
type Config struct {
	// Repository dependencies
	EventRepo       eventRepo.Repository
	ParticipantRepo participantRepo.Repository
	ExclusionRepo   exclusionRepo.Repository

	// Service dependencies
	Generator     draw.Generator
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ExclusionInput names two participants who should not draw each other
type ExclusionInput struct {
	ParticipantAName string
	ParticipantBName string
	Direction        models.ExclusionDirection
}

type CheckFeasibilityInput struct {
	ParticipantNames []string
	Exclusions       []*ExclusionInput
}

type CheckFeasibilityOutput struct {
	Feasible bool
}

type CreateEventInput struct {
	Name        string
	Description string
	Date        string
	Place       string
	Budget      string

	// ParticipantNames are registered in the given order
	ParticipantNames []string
	Exclusions       []*ExclusionInput

	// OrganizerParticipating hides the pairing list from the organizer.
	// OrganizerName must then match one of ParticipantNames.
	OrganizerParticipating bool
	OrganizerName          string
}

type CreateEventOutput struct {
	EventID  string
	PublicID string
	AdminID  string
}

type GetEventInput struct {
	PublicID string
}

// PublicParticipant is what other participants may see about someone
type PublicParticipant struct {
	ID      string
	Name    string
	Claimed bool
}

type GetEventOutput struct {
	Event *models.Event

	// Participants holds active participants in registration order
	Participants []*PublicParticipant
}

type ClaimParticipantInput struct {
	PublicID      string
	ParticipantID string
}

// Receiver is the participant someone gives a gift to
type Receiver struct {
	ID   string
	Name string
}

type ClaimParticipantOutput struct {
	Event       *models.Event
	Participant *PublicParticipant
	Receiver    *Receiver
}

type GetDrawInput struct {
	PublicID      string
	ParticipantID string
}

type GetDrawOutput struct {
	Event           *models.Event
	ParticipantName string
	Claimed         bool

	// Receiver is nil until the participant has claimed
	Receiver *Receiver
}

type GetAdminEventInput struct {
	AdminID string
}

// AdminParticipant is a participant as the organizer sees them
type AdminParticipant struct {
	ID        string
	Name      string
	Claimed   bool
	ClaimedAt *time.Time
	Active    bool
}

type GetAdminEventOutput struct {
	Event *models.Event

	// Participants holds everyone, sorted by name
	Participants []*AdminParticipant

	CanViewPairings bool
}

type SetParticipantActiveInput struct {
	AdminID       string
	ParticipantID string
	Active        bool
}

type SetParticipantActiveOutput struct {
	Participant *AdminParticipant
}

type GetPairingsInput struct {
	AdminID string
}

type GetPairingsOutput struct {
	Event *models.Event

	// Pairings are listed in giver registration order
	Pairings []*models.Pairing
}

type ImportExclusionsInput struct {
	AdminID string
}

type ImportExclusionsOutput struct {
	// Exclusions forbid every giver from drawing the same receiver again
	Exclusions []*ExclusionInput
}
