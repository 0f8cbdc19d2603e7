package exclusion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/secretsanta/internal/models"
	"github.com/redis/go-redis/v9"
)

// Exclusions are stored as a JSON list per event
const eventExclusionsKeyPrefix = "event_exclusions:"

// Config holds configuration for the Redis exclusion repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed exclusion repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
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

// SaveExclusions appends exclusions to the event's list
func (r *redisRepository) SaveExclusions(ctx context.Context, input *SaveExclusionsInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	if len(input.Exclusions) == 0 {
		return nil
	}

	values := make([]any, 0, len(input.Exclusions))
	for _, ex := range input.Exclusions {
		if ex == nil {
			return errors.New("exclusion cannot be nil")
		}

		ex.EventID = input.EventID

		exclusionJSON, err := json.Marshal(ex)
		if err != nil {
			return fmt.Errorf("failed to marshal exclusion: %w", err)
		}
		values = append(values, exclusionJSON)
	}

	if err := r.client.RPush(ctx, eventExclusionsKeyPrefix+input.EventID, values...).Err(); err != nil {
		return fmt.Errorf("failed to save exclusions: %w", err)
	}

	return nil
}

// GetExclusionsForEvent reads the event's list from head to tail
func (r *redisRepository) GetExclusionsForEvent(ctx context.Context, input *GetExclusionsForEventInput) ([]*models.Exclusion, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	values, err := r.client.LRange(ctx, eventExclusionsKeyPrefix+input.EventID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get exclusions: %w", err)
	}

	exclusions := make([]*models.Exclusion, 0, len(values))
	for _, value := range values {
		var ex models.Exclusion
		if err := json.Unmarshal([]byte(value), &ex); err != nil {
			return nil, fmt.Errorf("failed to unmarshal exclusion: %w", err)
		}
		exclusions = append(exclusions, &ex)
	}

	return exclusions, nil
}

// DeleteExclusionsForEvent drops the event's list
func (r *redisRepository) DeleteExclusionsForEvent(ctx context.Context, input *DeleteExclusionsForEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	if err := r.client.Del(ctx, eventExclusionsKeyPrefix+input.EventID).Err(); err != nil {
		return fmt.Errorf("failed to delete exclusions: %w", err)
	}

	return nil
}
