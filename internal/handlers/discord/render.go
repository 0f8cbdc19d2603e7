package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/secretsanta/internal/services/event"
	"github.com/KirkDiggler/secretsanta/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
)

// SelectClaimPrefix prefixes the custom ID of the claim menu; the public ID follows
const SelectClaimPrefix = "santa_claim:"

// Discord message limits
const (
	maxSelectOptions = 25
	maxFieldValue    = 1024
	maxTitle         = 256
)

// Budgets that keep a whole embed under Discord's 6000 character total
const (
	maxListChars   = 4000
	maxLineChars   = 200
	maxDetailChars = 100
	maxDescription = 1024
)

// clip shortens s to at most n characters, marking the cut with an ellipsis
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

// listFields packs lines into fields of at most maxFieldValue characters. Once the
// lines reach maxListChars the rest are summarized as "…and N more".
func listFields(title string, lines []string) []*discordgo.MessageEmbedField {
	var fields []*discordgo.MessageEmbedField
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen == 0 {
			return
		}
		name := title
		if len(fields) > 0 {
			name = title + " (cont.)"
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: name, Value: current.String()})
		current.Reset()
		currentLen = 0
	}

	add := func(line string) {
		n := utf8.RuneCountInString(line)
		if currentLen+n > maxFieldValue {
			flush()
		}
		current.WriteString(line)
		currentLen += n
	}

	used := 0
	for idx, line := range lines {
		line = clip(line, maxLineChars) + "\n"
		n := utf8.RuneCountInString(line)
		if used+n > maxListChars {
			add(fmt.Sprintf("…and %d more\n", len(lines)-idx))
			break
		}
		add(line)
		used += n
	}
	flush()

	return fields
}

// buildEventEmbed renders the public view of an event
func buildEventEmbed(output *event.GetEventOutput) *discordgo.MessageEmbed {
	e := output.Event

	var fields []*discordgo.MessageEmbedField
	for _, f := range []struct{ name, value string }{
		{"Date", e.Date},
		{"Place", e.Place},
		{"Budget", e.Budget},
	} {
		if f.value != "" {
			fields = append(fields, &discordgo.MessageEmbedField{Name: f.name, Value: clip(f.value, maxDetailChars), Inline: true})
		}
	}

	lines := make([]string, 0, len(output.Participants))
	for _, p := range output.Participants {
		mark := "⬜"
		if p.Claimed {
			mark = "✅"
		}
		lines = append(lines, mark+" "+p.Name)
	}
	fields = append(fields, listFields(fmt.Sprintf("Participants (%d)", len(output.Participants)), lines)...)

	return &discordgo.MessageEmbed{
		Title:       clip("🎁 "+e.Name, maxTitle),
		Description: clip(e.Description, maxDescription),
		Color:       colorFestive,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Event ID: " + e.PublicID},
	}
}

// buildClaimComponents offers unclaimed participants in a select menu.
// Returns nil when everyone has claimed.
func buildClaimComponents(publicID string, participants []*event.PublicParticipant) []discordgo.MessageComponent {
	var options []discordgo.SelectMenuOption
	for _, p := range participants {
		if p.Claimed {
			continue
		}
		if len(options) == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: p.Name,
			Value: p.ID,
			Emoji: &discordgo.ComponentEmoji{Name: "🎅"},
		})
	}

	if len(options) == 0 {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    SelectClaimPrefix + publicID,
					Placeholder: "Who are you? Pick your name to see your draw",
					Options:     options,
				},
			},
		},
	}
}

// buildCreatedEmbed is shown only to the organizer and carries the admin ID
func buildCreatedEmbed(output *event.CreateEventOutput, announcement *messaging.GetEventCreatedMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       announcement.Title,
		Description: announcement.Message,
		Color:       colorFestive,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Event ID (share this)", Value: "`" + output.PublicID + "`"},
			{Name: "Admin ID (keep this secret)", Value: "`" + output.AdminID + "`"},
		},
	}
}

// buildRevealEmbed renders a participant's draw
func buildRevealEmbed(reveal *messaging.GetRevealMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       reveal.Title,
		Description: reveal.Message,
		Color:       colorFestive,
	}
}

// buildAdminEmbed lists claim status with relative times
func buildAdminEmbed(output *event.GetAdminEventOutput, now time.Time) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(output.Participants))
	claimed := 0
	for _, p := range output.Participants {
		status := "waiting"
		if p.Claimed {
			claimed++
			status = "claimed"
			if p.ClaimedAt != nil {
				status = "claimed " + humanize.RelTime(*p.ClaimedAt, now, "ago", "from now")
			}
		}
		if !p.Active {
			status += " (hidden)"
		}
		lines = append(lines, fmt.Sprintf("**%s** %s", p.Name, status))
	}

	pairings := "Use `/santa pairings` to see who drew whom."
	if !output.CanViewPairings {
		pairings = "You are participating, so the pairings stay secret."
	}

	fields := listFields("Participants", lines)
	if len(fields) == 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Participants", Value: "-"})
	}
	fields = append(fields, &discordgo.MessageEmbedField{Name: "Pairings", Value: pairings})

	return &discordgo.MessageEmbed{
		Title:       clip("🎄 "+output.Event.Name+" (admin)", maxTitle),
		Description: fmt.Sprintf("%d of %d participants have claimed.", claimed, len(output.Participants)),
		Color:       colorInfo,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Created " + humanize.RelTime(output.Event.CreatedAt, now, "ago", "from now"),
		},
	}
}

// buildPairingsEmbed lists every giver and receiver
func buildPairingsEmbed(output *event.GetPairingsOutput) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(output.Pairings))
	for _, p := range output.Pairings {
		lines = append(lines, p.From+" → "+p.To)
	}

	description := fmt.Sprintf("%d pairings", len(lines))
	if len(lines) == 0 {
		description = "-"
	}

	return &discordgo.MessageEmbed{
		Title:       clip("🎁 Pairings for "+output.Event.Name, maxTitle),
		Description: description,
		Color:       colorInfo,
		Fields:      listFields("Giver → receiver", lines),
	}
}

// errorTypeFor maps service errors to user-facing categories
func errorTypeFor(err error) messaging.ErrorType {
	var eventErr event.EventError
	if !errors.As(err, &eventErr) {
		return messaging.ErrorTypeInternal
	}

	switch eventErr {
	case event.ErrEventNotFound:
		return messaging.ErrorTypeEventNotFound
	case event.ErrEventNotReady:
		return messaging.ErrorTypeEventNotReady
	case event.ErrParticipantNotFound:
		return messaging.ErrorTypeParticipantNotFound
	case event.ErrAlreadyClaimed:
		return messaging.ErrorTypeAlreadyClaimed
	case event.ErrParticipantInactive:
		return messaging.ErrorTypeInactive
	case event.ErrPairingsHidden:
		return messaging.ErrorTypePairingsHidden
	case event.ErrNoValidPairing:
		return messaging.ErrorTypeNoValidPairing
	case event.ErrNameRequired,
		event.ErrTooFewParticipants,
		event.ErrEmptyParticipantName,
		event.ErrDuplicateParticipantName,
		event.ErrInvalidExclusionDirection,
		event.ErrOrganizerNotParticipant:
		return messaging.ErrorTypeInvalidInput
	default:
		return messaging.ErrorTypeInternal
	}
}
