package models

// ExclusionDirection controls which way an exclusion applies
type ExclusionDirection string

const (
	// ExclusionDirectionOneWay forbids A from drawing B
	ExclusionDirectionOneWay ExclusionDirection = "a_to_b"

	// ExclusionDirectionBoth forbids A and B from drawing each other
	ExclusionDirectionBoth ExclusionDirection = "both"
)

// Exclusion forbids a pairing between two participants, by name
type Exclusion struct {
	ID               string
	EventID          string
	ParticipantAName string
	ParticipantBName string
	Direction        ExclusionDirection
}
