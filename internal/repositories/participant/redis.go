package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/secretsanta/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix       = "participant:"
	eventParticipantsKeyPrefix = "event_participants:"

	// maxTxRetries bounds optimistic transaction retries on contention
	maxTxRetries = 10
)

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func participantKey(eventID, participantID string) string {
	return fmt.Sprintf("%s%s:%s", participantKeyPrefix, eventID, participantID)
}

func eventParticipantsKey(eventID string) string {
	return eventParticipantsKeyPrefix + eventID
}

// SaveParticipants persists participants and indexes them under their event
func (r *redisRepository) SaveParticipants(ctx context.Context, input *SaveParticipantsInput) error {
	if input == nil || input.EventID == "" {
		return errEmptyEventID
	}

	if len(input.Participants) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()

	for _, p := range input.Participants {
		if p == nil || p.ID == "" {
			return errors.New("participant and participant ID cannot be empty")
		}

		p.EventID = input.EventID

		participantJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal participant: %w", err)
		}

		pipe.Set(ctx, participantKey(input.EventID, p.ID), participantJSON, 0)
		pipe.SAdd(ctx, eventParticipantsKey(input.EventID), p.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participants: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.EventID == "" || input.ParticipantID == "" {
		return nil, errEmptyIDs
	}

	return getParticipant(ctx, r.client, participantKey(input.EventID, input.ParticipantID))
}

// getter is satisfied by both the client and a watched transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getParticipant(ctx context.Context, c getter, key string) (*models.Participant, error) {
	participantJSON, err := c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var participant models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &participant, nil
}

// GetParticipantsInEvent retrieves all participants of an event, sorted by Position
func (r *redisRepository) GetParticipantsInEvent(ctx context.Context, input *GetParticipantsInEventInput) (*GetParticipantsInEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errEmptyEventID
	}

	participantIDs, err := r.client.SMembers(ctx, eventParticipantsKey(input.EventID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs for event: %w", err)
	}

	if len(participantIDs) == 0 {
		return &GetParticipantsInEventOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	// Get all participant records in one round trip
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(participantIDs))

	for _, participantID := range participantIDs {
		commands[participantID] = pipe.Get(ctx, participantKey(input.EventID, participantID))
	}

	// redis.Nil from a single GET surfaces here too, checked per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	for participantID, cmd := range commands {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", participantID, err)
		}

		var participant models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", participantID, err)
		}

		participants = append(participants, &participant)
	}

	sort.Slice(participants, func(i, j int) bool {
		return participants[i].Position < participants[j].Position
	})

	return &GetParticipantsInEventOutput{
		Participants: participants,
	}, nil
}

// ClaimParticipant marks a participant as claimed inside a WATCH transaction
func (r *redisRepository) ClaimParticipant(ctx context.Context, input *ClaimParticipantInput) (*models.Participant, error) {
	if input == nil || input.EventID == "" || input.ParticipantID == "" {
		return nil, errEmptyIDs
	}

	claimedAt := input.ClaimedAt
	return r.update(ctx, participantKey(input.EventID, input.ParticipantID), func(p *models.Participant) error {
		if p.Claimed {
			return ErrAlreadyClaimed
		}
		p.Claimed = true
		p.ClaimedAt = &claimedAt
		return nil
	})
}

// SetParticipantActive updates the active flag inside a WATCH transaction
func (r *redisRepository) SetParticipantActive(ctx context.Context, input *SetParticipantActiveInput) (*models.Participant, error) {
	if input == nil || input.EventID == "" || input.ParticipantID == "" {
		return nil, errEmptyIDs
	}

	return r.update(ctx, participantKey(input.EventID, input.ParticipantID), func(p *models.Participant) error {
		p.Active = input.Active
		return nil
	})
}

// AssignDraws sets DrawsParticipantID on every giver in a single transaction
func (r *redisRepository) AssignDraws(ctx context.Context, input *AssignDrawsInput) error {
	if input == nil || input.EventID == "" {
		return errEmptyEventID
	}

	if len(input.Draws) == 0 {
		return nil
	}

	keys := make([]string, 0, len(input.Draws))
	for giverID := range input.Draws {
		keys = append(keys, participantKey(input.EventID, giverID))
	}

	txf := func(tx *redis.Tx) error {
		updated := make(map[string][]byte, len(input.Draws))
		for giverID, receiverID := range input.Draws {
			key := participantKey(input.EventID, giverID)
			p, err := getParticipant(ctx, tx, key)
			if err != nil {
				return err
			}

			p.DrawsParticipantID = receiverID
			participantJSON, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to marshal participant: %w", err)
			}
			updated[key] = participantJSON
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for key, participantJSON := range updated {
				pipe.Set(ctx, key, participantJSON, 0)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, keys...)
		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		if errors.Is(err, ErrParticipantNotFound) {
			return err
		}
		return fmt.Errorf("failed to assign draws: %w", err)
	}

	return fmt.Errorf("failed to assign draws: %w", redis.TxFailedErr)
}

// update applies fn to the stored participant under optimistic locking.
// A concurrent write to the same key restarts the read-modify-write.
func (r *redisRepository) update(ctx context.Context, key string, fn func(*models.Participant) error) (*models.Participant, error) {
	var result *models.Participant

	txf := func(tx *redis.Tx) error {
		p, err := getParticipant(ctx, tx, key)
		if err != nil {
			return err
		}

		if err := fn(p); err != nil {
			return err
		}

		participantJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal participant: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, participantJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = p
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		if errors.Is(err, ErrParticipantNotFound) || errors.Is(err, ErrAlreadyClaimed) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return nil, fmt.Errorf("failed to update participant: %w", redis.TxFailedErr)
}

// DeleteParticipantsInEvent removes every participant record and the event's index set
func (r *redisRepository) DeleteParticipantsInEvent(ctx context.Context, input *DeleteParticipantsInEventInput) error {
	if input == nil || input.EventID == "" {
		return errEmptyEventID
	}

	participantIDs, err := r.client.SMembers(ctx, eventParticipantsKey(input.EventID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get participant IDs for event: %w", err)
	}

	keys := make([]string, 0, len(participantIDs)+1)
	for _, participantID := range participantIDs {
		keys = append(keys, participantKey(input.EventID, participantID))
	}
	keys = append(keys, eventParticipantsKey(input.EventID))

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	return nil
}
