// Package config reads bot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store selects the repository backend
type Store string

const (
	StoreRedis    Store = "redis"
	StorePostgres Store = "postgres"
)

// Config holds everything cmd/bot needs to wire its dependencies
type Config struct {
	Store Store

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// DatabaseURL is required when Store is postgres
	DatabaseURL string

	DiscordToken  string
	ApplicationID string
	GuildID       string

	// DrawSeed makes pairings reproducible; zero seeds from the clock
	DrawSeed int64
}

// Load reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
		log.Println("No .env file found, using environment only")
	}

	cfg := &Config{
		Store:         Store(getEnv("SANTA_STORE", string(StoreRedis))),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	if cfg.DrawSeed, err = strconv.ParseInt(getEnv("DRAW_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid DRAW_SEED: %w", err)
	}

	switch cfg.Store {
	case StoreRedis:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when SANTA_STORE is postgres")
		}
	default:
		return nil, fmt.Errorf("unknown SANTA_STORE %q", cfg.Store)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
