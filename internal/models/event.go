package models

import (
	"time"
)

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	// EventStatusPending indicates the event is stored but its pairings are not yet
	EventStatusPending EventStatus = "pending"

	// EventStatusActive indicates pairings are assigned and participants may claim
	EventStatusActive EventStatus = "active"

	// EventStatusCompleted indicates the exchange is over
	EventStatusCompleted EventStatus = "completed"
)

// IsReady reports whether participants can claim and reveal their draws
func (s EventStatus) IsReady() bool {
	return s == EventStatusActive || s == EventStatusCompleted
}

// Event represents a single gift exchange
type Event struct {
	// ID is the internal identifier for the event
	ID string

	// PublicID is shared with participants
	PublicID string

	// AdminID is known only to the organizer
	AdminID string

	// Name is the display name of the event
	Name string

	Description string
	Date        string
	Place       string
	Budget      string

	// OrganizerParticipating hides the pairing list from the organizer
	OrganizerParticipating bool

	// OrganizerParticipantID is the organizer's participant record, if any
	OrganizerParticipantID string

	// Status is the current state of the event
	Status EventStatus

	// CreatedAt is when the event was created
	CreatedAt time.Time
}
