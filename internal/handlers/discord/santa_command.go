package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/secretsanta/internal/common/clock"
	"github.com/KirkDiggler/secretsanta/internal/common/names"
	"github.com/KirkDiggler/secretsanta/internal/services/event"
	"github.com/KirkDiggler/secretsanta/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// SantaCommand handles the /santa command
type SantaCommand struct {
	BaseCommand
	eventService     event.Service
	messagingService messaging.Service
	clock            clock.Clock
}

func requiredString(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

func optionalString(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
	}
}

// NewSantaCommand creates a new santa command handler
func NewSantaCommand(eventService event.Service, messagingService messaging.Service) *SantaCommand {
	return &SantaCommand{
		BaseCommand: BaseCommand{
			Name:        "santa",
			Description: "Organize a secret santa gift exchange",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create an event and draw everyone's receiver",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("name", "Name of the event"),
						requiredString("participants", "Comma separated participant names"),
						optionalString("exclusions", "Pairs to avoid, like Alice>Bob or Alice<>Bob"),
						optionalString("budget", "Gift budget"),
						optionalString("date", "When the exchange happens"),
						optionalString("place", "Where the exchange happens"),
						optionalString("description", "Anything else participants should know"),
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "organizer_participating",
							Description: "Whether you are one of the participants",
						},
						optionalString("organizer_name", "Your name in the participant list"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "check",
					Description: "Check whether a set of exclusions still allows a draw",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("participants", "Comma separated participant names"),
						optionalString("exclusions", "Pairs to avoid, like Alice>Bob or Alice<>Bob"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "event",
					Description: "Show an event",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("event_id", "The shared event ID"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "claim",
					Description: "Claim your name and see who you give a gift to",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("event_id", "The shared event ID"),
						requiredString("participant", "Your name as the organizer entered it"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reveal",
					Description: "See your receiver again",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("event_id", "The shared event ID"),
						requiredString("participant", "Your name as the organizer entered it"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "See who has claimed (organizer only)",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("admin_id", "The secret admin ID"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pairings",
					Description: "List every pairing (organizer only)",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("admin_id", "The secret admin ID"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "toggle",
					Description: "Show or hide a participant on the event (organizer only)",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("admin_id", "The secret admin ID"),
						requiredString("participant", "Participant name"),
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "active",
							Description: "Whether the participant is shown",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "import",
					Description: "Turn last year's pairings into exclusions (organizer only)",
					Options: []*discordgo.ApplicationCommandOption{
						requiredString("admin_id", "The secret admin ID of the earlier event"),
					},
				},
			},
		},
		eventService:     eventService,
		messagingService: messagingService,
		clock:            clock.New(),
	}
}

// Handle processes a Discord interaction for the santa command
func (c *SantaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "create":
		return c.handleCreate(s, i, opts)
	case "check":
		return c.handleCheck(s, i, opts)
	case "event":
		return c.handleEvent(s, i, opts)
	case "claim":
		return c.handleClaim(s, i, opts)
	case "reveal":
		return c.handleReveal(s, i, opts)
	case "status":
		return c.handleStatus(s, i, opts)
	case "pairings":
		return c.handlePairings(s, i, opts)
	case "toggle":
		return c.handleToggle(s, i, opts)
	case "import":
		return c.handleImport(s, i, opts)
	default:
		return errors.New("unknown subcommand")
	}
}

type options = map[string]*discordgo.ApplicationCommandInteractionDataOption

func (c *SantaCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()

	exclusions, err := parseExclusions(stringOption(opts, "exclusions"))
	if err != nil {
		return c.respondWithInvalidInput(ctx, s, i, err.Error())
	}

	participating := boolOption(opts, "organizer_participating")
	organizerName := stringOption(opts, "organizer_name")
	if participating && organizerName == "" {
		organizerName = displayName(i)
	}

	participantNames := parseNames(stringOption(opts, "participants"))

	createOutput, err := c.eventService.CreateEvent(ctx, &event.CreateEventInput{
		Name:                   stringOption(opts, "name"),
		Description:            stringOption(opts, "description"),
		Date:                   stringOption(opts, "date"),
		Place:                  stringOption(opts, "place"),
		Budget:                 stringOption(opts, "budget"),
		ParticipantNames:       participantNames,
		Exclusions:             exclusions,
		OrganizerParticipating: participating,
		OrganizerName:          organizerName,
	})
	if err != nil {
		log.Printf("Error creating event: %v", err)
		return c.respondWithServiceError(ctx, s, i, err)
	}

	announcement, err := c.messagingService.GetEventCreatedMessage(ctx, &messaging.GetEventCreatedMessageInput{
		EventName:        names.Normalize(stringOption(opts, "name")),
		ParticipantCount: len(participantNames),
	})
	if err != nil {
		log.Printf("Error getting event created message: %v", err)
		announcement = &messaging.GetEventCreatedMessageOutput{Title: "Event created"}
	}

	if err := RespondWithEphemeralEmbed(s, i, buildCreatedEmbed(createOutput, announcement)); err != nil {
		return err
	}

	// Post the public view so participants can claim from the channel
	eventOutput, err := c.eventService.GetEvent(ctx, &event.GetEventInput{PublicID: createOutput.PublicID})
	if err != nil {
		log.Printf("Error loading new event %s: %v", createOutput.PublicID, err)
		return nil
	}

	_, err = s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{buildEventEmbed(eventOutput)},
		Components: buildClaimComponents(eventOutput.Event.PublicID, eventOutput.Participants),
	})
	if err != nil {
		log.Printf("Error posting event announcement: %v", err)
	}

	return nil
}

func (c *SantaCommand) handleCheck(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()

	exclusions, err := parseExclusions(stringOption(opts, "exclusions"))
	if err != nil {
		return c.respondWithInvalidInput(ctx, s, i, err.Error())
	}

	output, err := c.eventService.CheckFeasibility(ctx, &event.CheckFeasibilityInput{
		ParticipantNames: parseNames(stringOption(opts, "participants")),
		Exclusions:       exclusions,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	if !output.Feasible {
		return c.respondWithServiceError(ctx, s, i, event.ErrNoValidPairing)
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Looks good",
		Description: "Everyone can be paired with these exclusions.",
		Color:       colorInfo,
	})
}

func (c *SantaCommand) handleEvent(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()

	output, err := c.eventService.GetEvent(ctx, &event.GetEventInput{
		PublicID: stringOption(opts, "event_id"),
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, buildEventEmbed(output), buildClaimComponents(output.Event.PublicID, output.Participants))
}

func (c *SantaCommand) handleClaim(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()
	publicID := stringOption(opts, "event_id")

	participantID, err := c.resolvePublicParticipant(ctx, publicID, stringOption(opts, "participant"))
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return c.claim(ctx, s, i, publicID, participantID)
}

// HandleClaimSelect handles a pick from the claim menu on an event message
func (c *SantaCommand) HandleClaimSelect(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	data := i.MessageComponentData()
	publicID := strings.TrimPrefix(data.CustomID, SelectClaimPrefix)
	if len(data.Values) == 0 {
		return RespondWithError(s, i, "Nothing selected", "Pick your name from the list.")
	}

	return c.claim(ctx, s, i, publicID, data.Values[0])
}

func (c *SantaCommand) claim(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, publicID, participantID string) error {
	output, err := c.eventService.ClaimParticipant(ctx, &event.ClaimParticipantInput{
		PublicID:      publicID,
		ParticipantID: participantID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return c.respondWithReveal(ctx, s, i, output.Participant.Name, output.Receiver.Name, output.Event.Budget)
}

func (c *SantaCommand) handleReveal(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()
	publicID := stringOption(opts, "event_id")

	participantID, err := c.resolvePublicParticipant(ctx, publicID, stringOption(opts, "participant"))
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.eventService.GetDraw(ctx, &event.GetDrawInput{
		PublicID:      publicID,
		ParticipantID: participantID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	if !output.Claimed || output.Receiver == nil {
		return RespondWithError(s, i, "Not claimed yet", "Claim your name first with `/santa claim`.")
	}

	return c.respondWithReveal(ctx, s, i, output.ParticipantName, output.Receiver.Name, output.Event.Budget)
}

func (c *SantaCommand) respondWithReveal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, giver, receiver, budget string) error {
	reveal, err := c.messagingService.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		GiverName:    giver,
		ReceiverName: receiver,
		Budget:       budget,
	})
	if err != nil {
		log.Printf("Error getting reveal message: %v", err)
		reveal = &messaging.GetRevealMessageOutput{
			Title:   "Your draw",
			Message: fmt.Sprintf("You are giving a gift to **%s**.", receiver),
		}
	}

	return RespondWithEphemeralEmbed(s, i, buildRevealEmbed(reveal))
}

func (c *SantaCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()

	output, err := c.eventService.GetAdminEvent(ctx, &event.GetAdminEventInput{
		AdminID: stringOption(opts, "admin_id"),
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEphemeralEmbed(s, i, buildAdminEmbed(output, c.clock.Now()))
}

func (c *SantaCommand) handlePairings(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()

	output, err := c.eventService.GetPairings(ctx, &event.GetPairingsInput{
		AdminID: stringOption(opts, "admin_id"),
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEphemeralEmbed(s, i, buildPairingsEmbed(output))
}

func (c *SantaCommand) handleToggle(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()
	adminID := stringOption(opts, "admin_id")

	adminOutput, err := c.eventService.GetAdminEvent(ctx, &event.GetAdminEventInput{AdminID: adminID})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	candidates := make([]candidate, len(adminOutput.Participants))
	for idx, p := range adminOutput.Participants {
		candidates[idx] = candidate{ID: p.ID, Name: p.Name}
	}

	participantID, ok := findParticipant(candidates, stringOption(opts, "participant"))
	if !ok {
		return c.respondWithServiceError(ctx, s, i, event.ErrParticipantNotFound)
	}

	output, err := c.eventService.SetParticipantActive(ctx, &event.SetParticipantActiveInput{
		AdminID:       adminID,
		ParticipantID: participantID,
		Active:        boolOption(opts, "active"),
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	state := "hidden from"
	if output.Participant.Active {
		state = "shown on"
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Participant updated",
		Description: fmt.Sprintf("%s is now %s the event.", output.Participant.Name, state),
		Color:       colorInfo,
	})
}

func (c *SantaCommand) handleImport(s *discordgo.Session, i *discordgo.InteractionCreate, opts options) error {
	ctx := context.Background()

	output, err := c.eventService.ImportExclusions(ctx, &event.ImportExclusionsInput{
		AdminID: stringOption(opts, "admin_id"),
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	description := "That event has no pairings to import."
	if len(output.Exclusions) > 0 {
		description = "Paste this into the `exclusions` option of `/santa create`:\n```\n" +
			formatExclusions(output.Exclusions) + "\n```"
	}

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Exclusions from last time",
		Description: description,
		Color:       colorInfo,
	})
}

// resolvePublicParticipant accepts either a participant ID or a name from the public list
func (c *SantaCommand) resolvePublicParticipant(ctx context.Context, publicID, wanted string) (string, error) {
	output, err := c.eventService.GetEvent(ctx, &event.GetEventInput{PublicID: publicID})
	if err != nil {
		return "", err
	}

	candidates := make([]candidate, len(output.Participants))
	for idx, p := range output.Participants {
		candidates[idx] = candidate{ID: p.ID, Name: p.Name}
	}

	participantID, ok := findParticipant(candidates, wanted)
	if !ok {
		return "", event.ErrParticipantNotFound
	}
	return participantID, nil
}

func (c *SantaCommand) respondWithServiceError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	errorType := errorTypeFor(err)
	detail := ""
	if errorType == messaging.ErrorTypeInvalidInput {
		detail = err.Error()
	}
	if errorType == messaging.ErrorTypeInternal {
		log.Printf("Unexpected error: %v", err)
	}

	return c.respondWithErrorType(ctx, s, i, errorType, detail)
}

func (c *SantaCommand) respondWithInvalidInput(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, detail string) error {
	return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeInvalidInput, detail)
}

func (c *SantaCommand) respondWithErrorType(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, errorType messaging.ErrorType, detail string) error {
	msg, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
		Detail:    detail,
	})
	if err != nil {
		log.Printf("Error getting error message: %v", err)
		return RespondWithError(s, i, "Something went wrong", detail)
	}

	return RespondWithError(s, i, msg.Title, msg.Message)
}
