package discord

import (
	"testing"

	eventMocks "github.com/KirkDiggler/secretsanta/internal/services/event/mocks"
	messagingMocks "github.com/KirkDiggler/secretsanta/internal/services/messaging/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewValidatesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := eventMocks.NewMockService(ctrl)
	msgs := messagingMocks.NewMockService(ctrl)

	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"missing token", &Config{EventService: events, MessagingService: msgs}},
		{"missing event service", &Config{Token: "t", MessagingService: msgs}},
		{"missing messaging service", &Config{Token: "t", EventService: events}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, err := New(tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, bot)
		})
	}
}

func TestNewRegistersSantaCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	bot, err := New(&Config{
		Token:            "t",
		EventService:     eventMocks.NewMockService(ctrl),
		MessagingService: messagingMocks.NewMockService(ctrl),
	})
	require.NoError(t, err)

	cmd := bot.santa.GetCommand()
	assert.Equal(t, "santa", cmd.Name)

	var subcommands []string
	for _, opt := range cmd.Options {
		subcommands = append(subcommands, opt.Name)
	}
	assert.Equal(t, []string{"create", "check", "event", "claim", "reveal", "status", "pairings", "toggle", "import"}, subcommands)
}
