package cli

import (
	"testing"

	"github.com/KirkDiggler/secretsanta/internal/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventFile(t *testing.T) {
	file, err := ParseEventFile([]byte(`
name: Office Party
participants: [Alice, "  Bob ", Carol]
exclusions:
  - from: Alice
    to: Bob
  - from: Carol
    to: " Alice"
    direction: both
`))
	require.NoError(t, err)
	assert.Equal(t, "Office Party", file.Name)

	input, err := file.GenerateInput()
	require.NoError(t, err)

	assert.Equal(t, []draw.Participant{
		{ID: "0", Name: "Alice"},
		{ID: "1", Name: "Bob"},
		{ID: "2", Name: "Carol"},
	}, input.Participants)

	assert.Equal(t, []draw.Exclusion{
		{ParticipantAName: "Alice", ParticipantBName: "Bob", Direction: draw.DirectionOneWay},
		{ParticipantAName: "Carol", ParticipantBName: "Alice", Direction: draw.DirectionBoth},
	}, input.Exclusions)
}

func TestParseEventFileRejectsUnknownKeys(t *testing.T) {
	_, err := ParseEventFile([]byte("participants: [Alice]\nbudget: 20\n"))
	assert.Error(t, err)
}

func TestGenerateInputErrors(t *testing.T) {
	tests := []struct {
		name string
		file EventFile
		want error
	}{
		{
			name: "empty name",
			file: EventFile{Participants: []string{"Alice", "  ", "Carol"}},
			want: errEmptyName,
		},
		{
			name: "duplicate after normalizing",
			file: EventFile{Participants: []string{"Alice", "Bob", "Alice "}},
			want: errDuplicateName,
		},
		{
			name: "duplicate ignoring case",
			file: EventFile{Participants: []string{"sam", "Sam", "Alex"}},
			want: errDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.GenerateInput()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateInputUnknownDirection(t *testing.T) {
	file := EventFile{
		Participants: []string{"Alice", "Bob", "Carol"},
		Exclusions:   []ExclusionEntry{{From: "Alice", To: "Bob", Direction: "sideways"}},
	}

	_, err := file.GenerateInput()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestLoadEventFileMissing(t *testing.T) {
	_, err := LoadEventFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
