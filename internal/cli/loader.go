package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/KirkDiggler/secretsanta/internal/common/names"
	"github.com/KirkDiggler/secretsanta/internal/draw"
	"gopkg.in/yaml.v3"
)

// EventFile is the YAML layout santactl reads.
//
//	name: Office Party
//	participants: [Alice, Bob, Carol]
//	exclusions:
//	  - from: Alice
//	    to: Bob
//	    direction: both
type EventFile struct {
	Name         string           `yaml:"name"`
	Participants []string         `yaml:"participants"`
	Exclusions   []ExclusionEntry `yaml:"exclusions"`
}

// ExclusionEntry forbids From drawing To. Direction defaults to one way.
type ExclusionEntry struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Direction string `yaml:"direction"`
}

var (
	errEmptyName     = errors.New("participant names cannot be empty")
	errDuplicateName = errors.New("participant names must be unique")
)

// LoadEventFile reads and parses an event file.
func LoadEventFile(path string) (*EventFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParseEventFile(data)
}

// ParseEventFile parses YAML event data. Unknown keys are rejected.
func ParseEventFile(data []byte) (*EventFile, error) {
	var file EventFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse event file: %w", err)
	}

	return &file, nil
}

// GenerateInput converts the file into generator input. Names are normalized
// and participants get positional IDs so output follows file order.
func (f *EventFile) GenerateInput() (*draw.GenerateInput, error) {
	input := &draw.GenerateInput{
		Participants: make([]draw.Participant, 0, len(f.Participants)),
	}

	seen := make(map[string]struct{}, len(f.Participants))
	for i, raw := range f.Participants {
		name := names.Normalize(raw)
		if name == "" {
			return nil, errEmptyName
		}
		key := names.Key(name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q", errDuplicateName, name)
		}
		seen[key] = struct{}{}

		input.Participants = append(input.Participants, draw.Participant{
			ID:   strconv.Itoa(i),
			Name: name,
		})
	}

	for _, entry := range f.Exclusions {
		direction := draw.Direction(entry.Direction)
		if direction == "" {
			direction = draw.DirectionOneWay
		}
		if !direction.IsValid() {
			return nil, fmt.Errorf("exclusion %s>%s: unknown direction %q", entry.From, entry.To, entry.Direction)
		}

		input.Exclusions = append(input.Exclusions, draw.Exclusion{
			ParticipantAName: names.Normalize(entry.From),
			ParticipantBName: names.Normalize(entry.To),
			Direction:        direction,
		})
	}

	return input, nil
}
