package event

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/KirkDiggler/secretsanta/internal/common/clock"
	"github.com/KirkDiggler/secretsanta/internal/common/names"
	"github.com/KirkDiggler/secretsanta/internal/common/uuid"
	"github.com/KirkDiggler/secretsanta/internal/draw"
	"github.com/KirkDiggler/secretsanta/internal/models"
	eventRepo "github.com/KirkDiggler/secretsanta/internal/repositories/event"
	exclusionRepo "github.com/KirkDiggler/secretsanta/internal/repositories/exclusion"
	participantRepo "github.com/KirkDiggler/secretsanta/internal/repositories/participant"
)

// service implements the Service interface
type service struct {
	eventRepo       eventRepo.Repository
	participantRepo participantRepo.Repository
	exclusionRepo   exclusionRepo.Repository
	generator       draw.Generator
	clock           clock.Clock
	uuidGenerator   uuid.UUID
}

// New creates a new event service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.ExclusionRepo == nil {
		return nil, ErrNilExclusionRepo
	}

	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		eventRepo:       cfg.EventRepo,
		participantRepo: cfg.ParticipantRepo,
		exclusionRepo:   cfg.ExclusionRepo,
		generator:       cfg.Generator,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// CheckFeasibility runs the generator over provisional IDs and discards the pairings
func (s *service) CheckFeasibility(ctx context.Context, input *CheckFeasibilityInput) (*CheckFeasibilityOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	participantNames, err := normalizeParticipantNames(input.ParticipantNames)
	if err != nil {
		return nil, err
	}

	exclusions, err := normalizeExclusions(input.Exclusions)
	if err != nil {
		return nil, err
	}

	feasible, err := s.precheck(participantNames, exclusions)
	if err != nil {
		return nil, err
	}

	return &CheckFeasibilityOutput{
		Feasible: feasible,
	}, nil
}

// precheck numbers participants 0..n-1. The real run never reuses these IDs.
func (s *service) precheck(participantNames []string, exclusions []*ExclusionInput) (bool, error) {
	participants := make([]draw.Participant, len(participantNames))
	for i, name := range participantNames {
		participants[i] = draw.Participant{
			ID:   strconv.Itoa(i),
			Name: name,
		}
	}

	output, err := s.generator.Generate(&draw.GenerateInput{
		Participants: participants,
		Exclusions:   toDrawExclusions(exclusions),
	})
	if err != nil {
		return false, translateDrawError(err)
	}

	return output.Feasible, nil
}

// CreateEvent validates, pre-checks, persists and then draws with the stored identities
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	eventName := names.Normalize(input.Name)
	if eventName == "" {
		return nil, ErrNameRequired
	}

	participantNames, err := normalizeParticipantNames(input.ParticipantNames)
	if err != nil {
		return nil, err
	}

	exclusions, err := normalizeExclusions(input.Exclusions)
	if err != nil {
		return nil, err
	}

	organizerName := names.Normalize(input.OrganizerName)
	if input.OrganizerParticipating && !contains(participantNames, organizerName) {
		return nil, ErrOrganizerNotParticipant
	}

	feasible, err := s.precheck(participantNames, exclusions)
	if err != nil {
		return nil, err
	}
	if !feasible {
		return nil, ErrNoValidPairing
	}

	now := s.clock.Now()
	event := &models.Event{
		ID:                     s.uuidGenerator.NewUUID(),
		PublicID:               s.uuidGenerator.NewLinkID(),
		AdminID:                s.uuidGenerator.NewLinkID(),
		Name:                   eventName,
		Description:            input.Description,
		Date:                   input.Date,
		Place:                  input.Place,
		Budget:                 input.Budget,
		OrganizerParticipating: input.OrganizerParticipating,
		Status:                 models.EventStatusPending,
		CreatedAt:              now,
	}

	participants := make([]*models.Participant, len(participantNames))
	for i, name := range participantNames {
		participants[i] = &models.Participant{
			ID:        s.uuidGenerator.NewUUID(),
			EventID:   event.ID,
			Name:      name,
			Position:  i,
			Active:    true,
			CreatedAt: now,
		}

		if input.OrganizerParticipating && name == organizerName {
			event.OrganizerParticipantID = participants[i].ID
		}
	}

	storedExclusions := make([]*models.Exclusion, len(exclusions))
	for i, ex := range exclusions {
		storedExclusions[i] = &models.Exclusion{
			ID:               s.uuidGenerator.NewUUID(),
			EventID:          event.ID,
			ParticipantAName: ex.ParticipantAName,
			ParticipantBName: ex.ParticipantBName,
			Direction:        ex.Direction,
		}
	}

	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: event}); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	if err := s.participantRepo.SaveParticipants(ctx, &participantRepo.SaveParticipantsInput{
		EventID:      event.ID,
		Participants: participants,
	}); err != nil {
		s.discardEvent(ctx, event.ID)
		return nil, fmt.Errorf("failed to save participants: %w", err)
	}

	if err := s.exclusionRepo.SaveExclusions(ctx, &exclusionRepo.SaveExclusionsInput{
		EventID:    event.ID,
		Exclusions: storedExclusions,
	}); err != nil {
		s.discardEvent(ctx, event.ID)
		return nil, fmt.Errorf("failed to save exclusions: %w", err)
	}

	if err := s.assignDraws(ctx, event.ID); err != nil {
		s.discardEvent(ctx, event.ID)
		return nil, err
	}

	event.Status = models.EventStatusActive
	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: event}); err != nil {
		s.discardEvent(ctx, event.ID)
		return nil, fmt.Errorf("failed to activate event: %w", err)
	}

	log.Printf("Created event %s with %d participants and %d exclusions", event.ID, len(participants), len(storedExclusions))

	return &CreateEventOutput{
		EventID:  event.ID,
		PublicID: event.PublicID,
		AdminID:  event.AdminID,
	}, nil
}

// discardEvent removes what a failed CreateEvent already stored. Failures are
// logged only, the pending record is unreachable through the public flows anyway.
func (s *service) discardEvent(ctx context.Context, eventID string) {
	ctx = context.WithoutCancel(ctx)

	if err := s.exclusionRepo.DeleteExclusionsForEvent(ctx, &exclusionRepo.DeleteExclusionsForEventInput{
		EventID: eventID,
	}); err != nil {
		log.Printf("Failed to discard exclusions of event %s: %v", eventID, err)
	}

	if err := s.participantRepo.DeleteParticipantsInEvent(ctx, &participantRepo.DeleteParticipantsInEventInput{
		EventID: eventID,
	}); err != nil {
		log.Printf("Failed to discard participants of event %s: %v", eventID, err)
	}

	if err := s.eventRepo.DeleteEvent(ctx, &eventRepo.DeleteEventInput{
		EventID: eventID,
	}); err != nil {
		log.Printf("Failed to discard event %s: %v", eventID, err)
	}
}

// assignDraws reads back what was stored and runs the real generation over it
func (s *service) assignDraws(ctx context.Context, eventID string) error {
	stored, err := s.participantRepo.GetParticipantsInEvent(ctx, &participantRepo.GetParticipantsInEventInput{
		EventID: eventID,
	})
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}

	storedExclusions, err := s.exclusionRepo.GetExclusionsForEvent(ctx, &exclusionRepo.GetExclusionsForEventInput{
		EventID: eventID,
	})
	if err != nil {
		return fmt.Errorf("failed to load exclusions: %w", err)
	}

	participants := make([]draw.Participant, len(stored.Participants))
	for i, p := range stored.Participants {
		participants[i] = draw.Participant{
			ID:   p.ID,
			Name: p.Name,
		}
	}

	exclusions := make([]draw.Exclusion, len(storedExclusions))
	for i, ex := range storedExclusions {
		exclusions[i] = draw.Exclusion{
			ParticipantAName: ex.ParticipantAName,
			ParticipantBName: ex.ParticipantBName,
			Direction:        draw.Direction(ex.Direction),
		}
	}

	output, err := s.generator.Generate(&draw.GenerateInput{
		Participants: participants,
		Exclusions:   exclusions,
	})
	if err != nil {
		log.Printf("Pairing generation failed for event %s: %v", eventID, err)
		return ErrPairingFailed
	}

	// The pre-check passed, so this only happens if the stored data drifted
	if !output.Feasible {
		log.Printf("No feasible pairing for event %s after a successful pre-check", eventID)
		return ErrPairingFailed
	}

	if err := s.participantRepo.AssignDraws(ctx, &participantRepo.AssignDrawsInput{
		EventID: eventID,
		Draws:   output.Pairings,
	}); err != nil {
		return fmt.Errorf("failed to save draws: %w", err)
	}

	return nil
}

// GetEvent returns the event and its active participants
func (s *service) GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getReadyEvent(ctx, input.PublicID)
	if err != nil {
		return nil, err
	}

	stored, err := s.participantRepo.GetParticipantsInEvent(ctx, &participantRepo.GetParticipantsInEventInput{
		EventID: event.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	participants := make([]*PublicParticipant, 0, len(stored.Participants))
	for _, p := range stored.Participants {
		if !p.Active {
			continue
		}
		participants = append(participants, toPublicParticipant(p))
	}

	return &GetEventOutput{
		Event:        event,
		Participants: participants,
	}, nil
}

// ClaimParticipant resolves the receiver first so a broken draw never burns the claim
func (s *service) ClaimParticipant(ctx context.Context, input *ClaimParticipantInput) (*ClaimParticipantOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getReadyEvent(ctx, input.PublicID)
	if err != nil {
		return nil, err
	}

	giver, err := s.getParticipant(ctx, event.ID, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	if !giver.Active {
		return nil, ErrParticipantInactive
	}

	if giver.Claimed {
		return nil, ErrAlreadyClaimed
	}

	receiver, err := s.getReceiver(ctx, giver)
	if err != nil {
		return nil, err
	}

	claimed, err := s.participantRepo.ClaimParticipant(ctx, &participantRepo.ClaimParticipantInput{
		EventID:       event.ID,
		ParticipantID: giver.ID,
		ClaimedAt:     s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrAlreadyClaimed) {
			return nil, ErrAlreadyClaimed
		}
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to claim participant: %w", err)
	}

	log.Printf("Participant %s claimed in event %s", claimed.ID, event.ID)

	return &ClaimParticipantOutput{
		Event:       event,
		Participant: toPublicParticipant(claimed),
		Receiver:    receiver,
	}, nil
}

// GetDraw returns the receiver once the participant has claimed
func (s *service) GetDraw(ctx context.Context, input *GetDrawInput) (*GetDrawOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getReadyEvent(ctx, input.PublicID)
	if err != nil {
		return nil, err
	}

	giver, err := s.getParticipant(ctx, event.ID, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	output := &GetDrawOutput{
		Event:           event,
		ParticipantName: giver.Name,
		Claimed:         giver.Claimed,
	}

	if !giver.Claimed {
		return output, nil
	}

	output.Receiver, err = s.getReceiver(ctx, giver)
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetAdminEvent returns every participant sorted by name
func (s *service) GetAdminEvent(ctx context.Context, input *GetAdminEventInput) (*GetAdminEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getAdminEvent(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	stored, err := s.participantRepo.GetParticipantsInEvent(ctx, &participantRepo.GetParticipantsInEventInput{
		EventID: event.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	participants := make([]*AdminParticipant, len(stored.Participants))
	for i, p := range stored.Participants {
		participants[i] = toAdminParticipant(p)
	}

	names.SortBy(participants, func(p *AdminParticipant) string {
		return p.Name
	})

	return &GetAdminEventOutput{
		Event:           event,
		Participants:    participants,
		CanViewPairings: !event.OrganizerParticipating,
	}, nil
}

// SetParticipantActive toggles a participant's visibility on the public view
func (s *service) SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) (*SetParticipantActiveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getAdminEvent(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	if input.ParticipantID == "" {
		return nil, ErrParticipantNotFound
	}

	p, err := s.participantRepo.SetParticipantActive(ctx, &participantRepo.SetParticipantActiveInput{
		EventID:       event.ID,
		ParticipantID: input.ParticipantID,
		Active:        input.Active,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return &SetParticipantActiveOutput{
		Participant: toAdminParticipant(p),
	}, nil
}

// GetPairings lists giver and receiver names in registration order
func (s *service) GetPairings(ctx context.Context, input *GetPairingsInput) (*GetPairingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getAdminEvent(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	if event.OrganizerParticipating {
		return nil, ErrPairingsHidden
	}

	stored, err := s.participantRepo.GetParticipantsInEvent(ctx, &participantRepo.GetParticipantsInEventInput{
		EventID: event.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	nameByID := make(map[string]string, len(stored.Participants))
	for _, p := range stored.Participants {
		nameByID[p.ID] = p.Name
	}

	pairings := make([]*models.Pairing, len(stored.Participants))
	for i, p := range stored.Participants {
		receiverName, ok := nameByID[p.DrawsParticipantID]
		if !ok {
			receiverName = UnassignedName
		}
		pairings[i] = &models.Pairing{
			From: p.Name,
			To:   receiverName,
		}
	}

	return &GetPairingsOutput{
		Event:    event,
		Pairings: pairings,
	}, nil
}

// ImportExclusions forbids each giver from drawing last time's receiver.
// Draws pointing at unknown participants are skipped.
func (s *service) ImportExclusions(ctx context.Context, input *ImportExclusionsInput) (*ImportExclusionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getAdminEvent(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	stored, err := s.participantRepo.GetParticipantsInEvent(ctx, &participantRepo.GetParticipantsInEventInput{
		EventID: event.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	nameByID := make(map[string]string, len(stored.Participants))
	for _, p := range stored.Participants {
		nameByID[p.ID] = p.Name
	}

	exclusions := make([]*ExclusionInput, 0, len(stored.Participants))
	for _, p := range stored.Participants {
		receiverName, ok := nameByID[p.DrawsParticipantID]
		if !ok {
			continue
		}
		exclusions = append(exclusions, &ExclusionInput{
			ParticipantAName: p.Name,
			ParticipantBName: receiverName,
			Direction:        models.ExclusionDirectionOneWay,
		})
	}

	return &ImportExclusionsOutput{
		Exclusions: exclusions,
	}, nil
}

func (s *service) getReadyEvent(ctx context.Context, publicID string) (*models.Event, error) {
	if publicID == "" {
		return nil, ErrEventNotFound
	}

	event, err := s.eventRepo.GetEventByPublicID(ctx, &eventRepo.GetEventByPublicIDInput{
		PublicID: publicID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if !event.Status.IsReady() {
		return nil, ErrEventNotReady
	}

	return event, nil
}

func (s *service) getAdminEvent(ctx context.Context, adminID string) (*models.Event, error) {
	if adminID == "" {
		return nil, ErrEventNotFound
	}

	event, err := s.eventRepo.GetEventByAdminID(ctx, &eventRepo.GetEventByAdminIDInput{
		AdminID: adminID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *service) getParticipant(ctx context.Context, eventID, participantID string) (*models.Participant, error) {
	if participantID == "" {
		return nil, ErrParticipantNotFound
	}

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		EventID:       eventID,
		ParticipantID: participantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// getReceiver treats a missing or dangling draw as unassigned
func (s *service) getReceiver(ctx context.Context, giver *models.Participant) (*Receiver, error) {
	if giver.DrawsParticipantID == "" {
		return nil, ErrDrawNotAssigned
	}

	receiver, err := s.getParticipant(ctx, giver.EventID, giver.DrawsParticipantID)
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			log.Printf("Participant %s draws missing participant %s", giver.ID, giver.DrawsParticipantID)
			return nil, ErrDrawNotAssigned
		}
		return nil, err
	}

	return &Receiver{
		ID:   receiver.ID,
		Name: receiver.Name,
	}, nil
}

func normalizeParticipantNames(raw []string) ([]string, error) {
	if len(raw) < draw.MinParticipants {
		return nil, ErrTooFewParticipants
	}

	result := make([]string, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, name := range raw {
		name = names.Normalize(name)
		if name == "" {
			return nil, ErrEmptyParticipantName
		}
		// Case-only variants collide when claimed by name
		key := names.Key(name)
		if _, ok := seen[key]; ok {
			return nil, ErrDuplicateParticipantName
		}
		seen[key] = struct{}{}
		result[i] = name
	}

	return result, nil
}

// normalizeExclusions validates directions. Names outside the participant list are kept; they never match.
func normalizeExclusions(raw []*ExclusionInput) ([]*ExclusionInput, error) {
	result := make([]*ExclusionInput, 0, len(raw))
	for _, ex := range raw {
		if ex == nil {
			continue
		}

		if ex.Direction != models.ExclusionDirectionOneWay && ex.Direction != models.ExclusionDirectionBoth {
			return nil, ErrInvalidExclusionDirection
		}

		a := names.Normalize(ex.ParticipantAName)
		b := names.Normalize(ex.ParticipantBName)
		if a == "" || b == "" {
			return nil, ErrEmptyParticipantName
		}

		result = append(result, &ExclusionInput{
			ParticipantAName: a,
			ParticipantBName: b,
			Direction:        ex.Direction,
		})
	}

	return result, nil
}

func toDrawExclusions(exclusions []*ExclusionInput) []draw.Exclusion {
	result := make([]draw.Exclusion, len(exclusions))
	for i, ex := range exclusions {
		result[i] = draw.Exclusion{
			ParticipantAName: ex.ParticipantAName,
			ParticipantBName: ex.ParticipantBName,
			Direction:        draw.Direction(ex.Direction),
		}
	}
	return result
}

// translateDrawError maps input errors the service already guards against
func translateDrawError(err error) error {
	switch {
	case errors.Is(err, draw.ErrTooFewParticipants):
		return ErrTooFewParticipants
	case errors.Is(err, draw.ErrUnknownDirection):
		return ErrInvalidExclusionDirection
	default:
		return fmt.Errorf("failed to check pairings: %w", err)
	}
}

func toPublicParticipant(p *models.Participant) *PublicParticipant {
	return &PublicParticipant{
		ID:      p.ID,
		Name:    p.Name,
		Claimed: p.Claimed,
	}
}

func toAdminParticipant(p *models.Participant) *AdminParticipant {
	return &AdminParticipant{
		ID:        p.ID,
		Name:      p.Name,
		Claimed:   p.Claimed,
		ClaimedAt: p.ClaimedAt,
		Active:    p.Active,
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
