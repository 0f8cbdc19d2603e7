package models

import (
	"time"
)

// Participant represents one person in one event
type Participant struct {
	// ID is unique within the event
	ID string

	// EventID is the event this participant belongs to
	EventID string

	// Name is the display name, also used to match exclusions
	Name string

	// Position is the registration order within the event
	Position int

	// Claimed is set once the participant has revealed their draw
	Claimed bool

	// ClaimedAt is when the participant claimed their identity
	ClaimedAt *time.Time

	// DrawsParticipantID is the participant this one gives a gift to
	DrawsParticipantID string

	// Active participants are listed on the public event page
	Active bool

	// CreatedAt is when the participant was registered
	CreatedAt time.Time
}
