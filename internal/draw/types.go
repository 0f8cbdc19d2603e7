package draw

// MinParticipants is the smallest group the generator will pair
const MinParticipants = 3

// Direction controls which way an exclusion applies
type Direction string

const (
	// DirectionOneWay forbids A from drawing B only
	DirectionOneWay Direction = "a_to_b"

	// DirectionBoth forbids A from drawing B and B from drawing A
	DirectionBoth Direction = "both"
)

// IsValid reports whether d is a known direction
func (d Direction) IsValid() bool {
	return d == DirectionOneWay || d == DirectionBoth
}

// Participant is a giver and receiver candidate
type Participant struct {
	// ID must be unique within a single Generate call
	ID string

	// Name is matched against exclusion names
	Name string
}

// Exclusion forbids a giver from drawing a receiver, matched by name
type Exclusion struct {
	ParticipantAName string
	ParticipantBName string
	Direction        Direction
}

// Forbids reports whether the exclusion rules out giver drawing receiver
func (e Exclusion) Forbids(giverName, receiverName string) bool {
	if e.ParticipantAName == giverName && e.ParticipantBName == receiverName {
		return true
	}

	return e.Direction == DirectionBoth &&
		e.ParticipantAName == receiverName &&
		e.ParticipantBName == giverName
}

// Config holds the generator's dependencies
type Config struct {
	// Shuffler orders each giver's remaining candidates
	Shuffler Shuffler
}

// GenerateInput contains the participants and exclusions to pair
type GenerateInput struct {
	Participants []Participant
	Exclusions   []Exclusion
}

// GenerateOutput contains the result of a pairing attempt
type GenerateOutput struct {
	// Feasible is false when no assignment satisfies the exclusions
	Feasible bool

	// Pairings maps giver ID to receiver ID; nil when not feasible
	Pairings map[string]string
}
