package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects a random message. rand.Rand is not safe for concurrent use.
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetRevealMessage returns a message for a participant's draw
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ReceiverName == "" {
		return nil, errors.New("receiver name cannot be empty")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFestive
	}

	giver := input.GiverName
	receiver := input.ReceiverName

	var messages []string
	switch tone {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s, you are giving a gift to **%s**.", giver, receiver),
			fmt.Sprintf("Your draw is **%s**.", receiver),
		}
	case ToneFunny:
		messages = []string{
			fmt.Sprintf("Plot twist, %s: you got **%s**. No trades, no refunds.", giver, receiver),
			fmt.Sprintf("**%s**! Try to do better than socks this year, %s.", receiver, giver),
			fmt.Sprintf("The hat has spoken, %s. It says **%s** and it will not be taking questions.", giver, receiver),
			fmt.Sprintf("You drew **%s**. Act natural. Nobody suspects a thing.", receiver),
		}
	default:
		messages = []string{
			fmt.Sprintf("Ho ho ho, %s! You are **%s**'s Secret Santa! 🎅", giver, receiver),
			fmt.Sprintf("The elves have checked their list twice, %s: you are gifting **%s**. 🎁", giver, receiver),
			fmt.Sprintf("🎄 %s, your mission this season is **%s**. Keep it secret!", giver, receiver),
			fmt.Sprintf("Jingle all the way to the shops, %s. You drew **%s**! ❄️", giver, receiver),
		}
	}

	message := s.pick(messages)
	if input.Budget != "" {
		message = fmt.Sprintf("%s\nBudget: %s", message, input.Budget)
	}

	return &GetRevealMessageOutput{
		Title:   "Your Secret Santa draw",
		Message: message,
		Tone:    tone,
	}, nil
}

// GetEventCreatedMessage returns an announcement for a new event
func (s *service) GetEventCreatedMessage(ctx context.Context, input *GetEventCreatedMessageInput) (*GetEventCreatedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		fmt.Sprintf("The names are in the hat! %d people are ready for **%s**.", input.ParticipantCount, input.EventName),
		fmt.Sprintf("**%s** is on! %d elves have their assignments waiting.", input.EventName, input.ParticipantCount),
		fmt.Sprintf("Sleigh bells are ringing for **%s**. %d participants, zero peeking.", input.EventName, input.ParticipantCount),
	}

	return &GetEventCreatedMessageOutput{
		Title:   "🎄 Secret Santa created",
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var messages []string

	switch input.ErrorType {
	case ErrorTypeEventNotFound:
		title = "Event not found"
		messages = []string{
			"That link doesn't match any gift exchange. Double-check it with your organizer.",
			"Even Santa's workshop has no record of that event.",
		}
	case ErrorTypeEventNotReady:
		title = "Not ready yet"
		messages = []string{
			"The elves are still drawing names. Try again in a moment.",
		}
	case ErrorTypeParticipantNotFound:
		title = "Who's that?"
		messages = []string{
			"That participant isn't on this event's list.",
			"We couldn't find that name on the nice list, or the naughty one.",
		}
	case ErrorTypeAlreadyClaimed:
		title = "Already claimed"
		messages = []string{
			"That name has already been claimed. If it wasn't you, tell your organizer.",
			"Someone already unwrapped that one. Was it you?",
		}
	case ErrorTypeInactive:
		title = "Participant inactive"
		messages = []string{
			"The organizer has taken that participant off the list.",
		}
	case ErrorTypePairingsHidden:
		title = "No peeking!"
		messages = []string{
			"You're taking part in this exchange, so the full list stays secret from you too.",
			"Nice try! Organizers who participate don't get to see the pairings.",
		}
	case ErrorTypeNoValidPairing:
		title = "Impossible exchange"
		messages = []string{
			"These exclusions make the event impossible. Remove one and try again.",
			"Nobody can be paired with those rules. Loosen an exclusion or add a participant.",
		}
	case ErrorTypeInvalidInput:
		title = "Check your input"
		messages = []string{
			"Something in that request doesn't look right.",
		}
	default:
		title = "Something went wrong"
		messages = []string{
			"The sleigh hit some turbulence. Please try again.",
			"An elf tripped over the cables. Please try again.",
		}
	}

	message := s.pick(messages)
	if input.Detail != "" {
		message = fmt.Sprintf("%s\n%s", message, input.Detail)
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}
