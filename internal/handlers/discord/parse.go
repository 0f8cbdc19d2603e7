package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/secretsanta/internal/common/names"
	"github.com/KirkDiggler/secretsanta/internal/models"
	"github.com/KirkDiggler/secretsanta/internal/services/event"
)

// parseNames splits a comma or newline separated list, dropping blanks
func parseNames(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	result := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := names.Normalize(f); name != "" {
			result = append(result, name)
		}
	}
	return result
}

// parseExclusions reads "A>B" (A must not draw B) and "A<>B" (neither draws the other)
func parseExclusions(raw string) ([]*event.ExclusionInput, error) {
	var result []*event.ExclusionInput

	for _, token := range parseNames(raw) {
		direction := models.ExclusionDirectionOneWay
		separator := ">"
		if strings.Contains(token, "<>") {
			direction = models.ExclusionDirectionBoth
			separator = "<>"
		}

		parts := strings.SplitN(token, separator, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("exclusion %q must look like A>B or A<>B", token)
		}

		a := names.Normalize(parts[0])
		b := names.Normalize(parts[1])
		if a == "" || b == "" || strings.ContainsAny(a+b, "<>") {
			return nil, fmt.Errorf("exclusion %q must look like A>B or A<>B", token)
		}

		result = append(result, &event.ExclusionInput{
			ParticipantAName: a,
			ParticipantBName: b,
			Direction:        direction,
		})
	}

	return result, nil
}

// formatExclusions is the inverse of parseExclusions
func formatExclusions(exclusions []*event.ExclusionInput) string {
	parts := make([]string, 0, len(exclusions))
	for _, ex := range exclusions {
		separator := ">"
		if ex.Direction == models.ExclusionDirectionBoth {
			separator = "<>"
		}
		parts = append(parts, ex.ParticipantAName+separator+ex.ParticipantBName)
	}
	return strings.Join(parts, ", ")
}

// candidate is a participant as seen by name lookups
type candidate struct {
	ID   string
	Name string
}

// findParticipant resolves an ID or a typed name. An ID or an exact name wins;
// otherwise a case-insensitive match is used only when exactly one participant has it.
func findParticipant(candidates []candidate, wanted string) (string, bool) {
	exact := names.Normalize(wanted)
	for _, c := range candidates {
		if c.ID == wanted || c.Name == exact {
			return c.ID, true
		}
	}

	key := names.Key(wanted)
	found := ""
	for _, c := range candidates {
		if names.Key(c.Name) != key {
			continue
		}
		if found != "" {
			return "", false
		}
		found = c.ID
	}

	return found, found != ""
}
