package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/secretsanta/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix  = "event:"
	publicKeyPrefix = "event_public:"
	adminKeyPrefix  = "event_admin:"
)

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
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

// SaveEvent persists an event to Redis
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errNilInput
	}

	if input.Event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, eventKeyPrefix+input.Event.ID, eventJSON, 0)

	if input.Event.PublicID != "" {
		pipe.Set(ctx, publicKeyPrefix+input.Event.PublicID, input.Event.ID, 0)
	}

	if input.Event.AdminID != "" {
		pipe.Set(ctx, adminKeyPrefix+input.Event.AdminID, input.Event.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID from Redis
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventJSON, err := r.client.Get(ctx, eventKeyPrefix+input.EventID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.Event
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// GetEventByPublicID resolves the public lookup and loads the event
func (r *redisRepository) GetEventByPublicID(ctx context.Context, input *GetEventByPublicIDInput) (*models.Event, error) {
	if input == nil || input.PublicID == "" {
		return nil, errors.New("input and public ID cannot be empty")
	}

	return r.getByLookup(ctx, publicKeyPrefix+input.PublicID)
}

// GetEventByAdminID resolves the admin lookup and loads the event
func (r *redisRepository) GetEventByAdminID(ctx context.Context, input *GetEventByAdminIDInput) (*models.Event, error) {
	if input == nil || input.AdminID == "" {
		return nil, errors.New("input and admin ID cannot be empty")
	}

	return r.getByLookup(ctx, adminKeyPrefix+input.AdminID)
}

func (r *redisRepository) getByLookup(ctx context.Context, key string) (*models.Event, error) {
	eventID, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event ID: %w", err)
	}

	return r.GetEvent(ctx, &GetEventInput{
		EventID: eventID,
	})
}

// DeleteEvent removes the event record and both lookups in one transaction
func (r *redisRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	event, err := r.GetEvent(ctx, &GetEventInput{EventID: input.EventID})
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil
		}
		return err
	}

	keys := []string{eventKeyPrefix + event.ID}
	if event.PublicID != "" {
		keys = append(keys, publicKeyPrefix+event.PublicID)
	}
	if event.AdminID != "" {
		keys = append(keys, adminKeyPrefix+event.AdminID)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
