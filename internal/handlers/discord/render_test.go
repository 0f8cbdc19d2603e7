package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/secretsanta/internal/models"
	"github.com/KirkDiggler/secretsanta/internal/services/event"
	"github.com/KirkDiggler/secretsanta/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimMenu(t *testing.T, components []discordgo.MessageComponent) discordgo.SelectMenu {
	t.Helper()
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)

	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	return menu
}

func TestBuildClaimComponentsOffersUnclaimedOnly(t *testing.T) {
	menu := claimMenu(t, buildClaimComponents("pub-1", []*event.PublicParticipant{
		{ID: "p1", Name: "Alice", Claimed: true},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Carol"},
	}))

	assert.Equal(t, SelectClaimPrefix+"pub-1", menu.CustomID)
	require.Len(t, menu.Options, 2)
	assert.Equal(t, "Bob", menu.Options[0].Label)
	assert.Equal(t, "p2", menu.Options[0].Value)
	assert.Equal(t, "p3", menu.Options[1].Value)
}

func TestBuildClaimComponentsNilWhenEveryoneClaimed(t *testing.T) {
	assert.Nil(t, buildClaimComponents("pub-1", []*event.PublicParticipant{
		{ID: "p1", Name: "Alice", Claimed: true},
	}))
}

func TestBuildClaimComponentsCapsOptions(t *testing.T) {
	var participants []*event.PublicParticipant
	for i := 0; i < 40; i++ {
		participants = append(participants, &event.PublicParticipant{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("P%d", i)})
	}

	menu := claimMenu(t, buildClaimComponents("pub-1", participants))
	assert.Len(t, menu.Options, maxSelectOptions)
}

func TestBuildEventEmbed(t *testing.T) {
	embed := buildEventEmbed(&event.GetEventOutput{
		Event: &models.Event{Name: "Office Party", PublicID: "pub-1", Budget: "$20"},
		Participants: []*event.PublicParticipant{
			{ID: "p1", Name: "Alice", Claimed: true},
			{ID: "p2", Name: "Bob"},
		},
	})

	assert.Contains(t, embed.Title, "Office Party")
	assert.Contains(t, embed.Footer.Text, "pub-1")
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Budget", embed.Fields[0].Name)
	assert.Equal(t, "Participants (2)", embed.Fields[1].Name)
	assert.Contains(t, embed.Fields[1].Value, "✅ Alice")
	assert.Contains(t, embed.Fields[1].Value, "⬜ Bob")
}

func TestBuildAdminEmbed(t *testing.T) {
	now := time.Date(2026, 12, 1, 12, 0, 0, 0, time.UTC)
	claimedAt := now.Add(-2 * time.Hour)

	embed := buildAdminEmbed(&event.GetAdminEventOutput{
		Event: &models.Event{Name: "Office Party", CreatedAt: now.Add(-72 * time.Hour)},
		Participants: []*event.AdminParticipant{
			{ID: "p1", Name: "Alice", Claimed: true, ClaimedAt: &claimedAt, Active: true},
			{ID: "p2", Name: "Bob", Active: false},
		},
		CanViewPairings: false,
	}, now)

	assert.Equal(t, "1 of 2 participants have claimed.", embed.Description)
	assert.Contains(t, embed.Fields[0].Value, "**Alice** claimed 2 hours ago")
	assert.Contains(t, embed.Fields[0].Value, "**Bob** waiting (hidden)")
	assert.Contains(t, embed.Fields[1].Value, "secret")
	assert.Equal(t, "Created 3 days ago", embed.Footer.Text)
}

func TestBuildPairingsEmbed(t *testing.T) {
	embed := buildPairingsEmbed(&event.GetPairingsOutput{
		Event: &models.Event{Name: "Office Party"},
		Pairings: []*models.Pairing{
			{From: "Alice", To: "Bob"},
			{From: "Bob", To: event.UnassignedName},
		},
	})

	assert.Equal(t, "2 pairings", embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Alice → Bob\nBob → Unassigned\n", embed.Fields[0].Value)
}

// assertWithinDiscordLimits checks the limits Discord enforces on an embed
func assertWithinDiscordLimits(t *testing.T, embed *discordgo.MessageEmbed) {
	t.Helper()

	total := utf8.RuneCountInString(embed.Title) + utf8.RuneCountInString(embed.Description)
	if embed.Footer != nil {
		total += utf8.RuneCountInString(embed.Footer.Text)
	}

	assert.LessOrEqual(t, utf8.RuneCountInString(embed.Title), 256)
	assert.LessOrEqual(t, utf8.RuneCountInString(embed.Description), 4096)
	assert.LessOrEqual(t, len(embed.Fields), 25)
	for _, f := range embed.Fields {
		assert.LessOrEqual(t, utf8.RuneCountInString(f.Name), 256)
		assert.LessOrEqual(t, utf8.RuneCountInString(f.Value), 1024, "field %q", f.Name)
		total += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	assert.LessOrEqual(t, total, 6000)
}

func joinedValues(embed *discordgo.MessageEmbed) string {
	var b strings.Builder
	for _, f := range embed.Fields {
		b.WriteString(f.Value)
	}
	return b.String()
}

func largeGroupName(i int) string {
	return fmt.Sprintf("Participant Number %03d", i)
}

func TestBuildEventEmbedLargeGroup(t *testing.T) {
	var participants []*event.PublicParticipant
	for i := 1; i <= 120; i++ {
		participants = append(participants, &event.PublicParticipant{ID: fmt.Sprintf("p%d", i), Name: largeGroupName(i), Claimed: i%2 == 0})
	}

	embed := buildEventEmbed(&event.GetEventOutput{
		Event:        &models.Event{Name: "Company Party", PublicID: "pub-1", Budget: "$20", Description: strings.Repeat("x", 5000)},
		Participants: participants,
	})

	assertWithinDiscordLimits(t, embed)
	assert.Equal(t, "Participants (120)", embed.Fields[1].Name)
	assert.Greater(t, len(embed.Fields), 2)

	values := joinedValues(embed)
	for i := 1; i <= 120; i++ {
		assert.Contains(t, values, largeGroupName(i))
	}
	assert.NotContains(t, values, "more")
}

func TestBuildAdminEmbedLargeGroup(t *testing.T) {
	now := time.Date(2026, 12, 1, 12, 0, 0, 0, time.UTC)

	var participants []*event.AdminParticipant
	for i := 1; i <= 120; i++ {
		participants = append(participants, &event.AdminParticipant{ID: fmt.Sprintf("p%d", i), Name: largeGroupName(i), Active: true})
	}

	embed := buildAdminEmbed(&event.GetAdminEventOutput{
		Event:        &models.Event{Name: "Company Party", CreatedAt: now},
		Participants: participants,
	}, now)

	assertWithinDiscordLimits(t, embed)

	// Each line is 35 characters, so 114 fit in the list budget
	values := joinedValues(embed)
	assert.Contains(t, values, largeGroupName(114))
	assert.NotContains(t, values, largeGroupName(115))
	assert.Contains(t, values, "…and 6 more")
	assert.Equal(t, "Pairings", embed.Fields[len(embed.Fields)-1].Name)
}

func TestBuildPairingsEmbedLargeGroup(t *testing.T) {
	var pairings []*models.Pairing
	for i := 1; i <= 120; i++ {
		pairings = append(pairings, &models.Pairing{From: largeGroupName(i), To: largeGroupName(i%120 + 1)})
	}

	embed := buildPairingsEmbed(&event.GetPairingsOutput{
		Event:    &models.Event{Name: "Company Party"},
		Pairings: pairings,
	})

	assertWithinDiscordLimits(t, embed)
	assert.Equal(t, "120 pairings", embed.Description)
	assert.Contains(t, joinedValues(embed), "more")
}

func TestListFieldsClipsLongLines(t *testing.T) {
	fields := listFields("Participants", []string{strings.Repeat("é", 5000), "Bob"})

	require.Len(t, fields, 1)
	assert.LessOrEqual(t, utf8.RuneCountInString(fields[0].Value), 1024)
	assert.Contains(t, fields[0].Value, "…\nBob\n")
}

func TestListFieldsEmpty(t *testing.T) {
	assert.Empty(t, listFields("Participants", nil))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcd…", clip("abcdefgh", 5))
	assert.Equal(t, 5, utf8.RuneCountInString(clip("ééééééé", 5)))
}

func TestErrorTypeFor(t *testing.T) {
	tests := []struct {
		err  error
		want messaging.ErrorType
	}{
		{event.ErrEventNotFound, messaging.ErrorTypeEventNotFound},
		{event.ErrEventNotReady, messaging.ErrorTypeEventNotReady},
		{event.ErrAlreadyClaimed, messaging.ErrorTypeAlreadyClaimed},
		{event.ErrPairingsHidden, messaging.ErrorTypePairingsHidden},
		{event.ErrNoValidPairing, messaging.ErrorTypeNoValidPairing},
		{event.ErrDuplicateParticipantName, messaging.ErrorTypeInvalidInput},
		{fmt.Errorf("wrapped: %w", event.ErrParticipantInactive), messaging.ErrorTypeInactive},
		{event.ErrPairingFailed, messaging.ErrorTypeInternal},
		{errors.New("boom"), messaging.ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, errorTypeFor(tt.err))
		})
	}
}
