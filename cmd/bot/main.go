package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/secretsanta/internal/common/clock"
	"github.com/KirkDiggler/secretsanta/internal/common/uuid"
	"github.com/KirkDiggler/secretsanta/internal/config"
	"github.com/KirkDiggler/secretsanta/internal/db"
	"github.com/KirkDiggler/secretsanta/internal/draw"
	"github.com/KirkDiggler/secretsanta/internal/handlers/discord"
	eventRepo "github.com/KirkDiggler/secretsanta/internal/repositories/event"
	exclusionRepo "github.com/KirkDiggler/secretsanta/internal/repositories/exclusion"
	participantRepo "github.com/KirkDiggler/secretsanta/internal/repositories/participant"
	eventService "github.com/KirkDiggler/secretsanta/internal/services/event"
	"github.com/KirkDiggler/secretsanta/internal/services/messaging"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// repositories bundles the backend chosen by SANTA_STORE
type repositories struct {
	events       eventRepo.Repository
	participants participantRepo.Repository
	exclusions   exclusionRepo.Repository
	close        func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	var repos *repositories
	switch cfg.Store {
	case config.StorePostgres:
		repos, err = newPostgresRepositories(cfg)
	default:
		repos, err = newRedisRepositories(cfg)
	}
	if err != nil {
		log.Fatalf("Failed to initialize %s repositories: %v", cfg.Store, err)
	}
	defer func() {
		if err := repos.close(); err != nil {
			log.Printf("Error closing %s connection: %v", cfg.Store, err)
		}
	}()

	// Initialize pairing generator
	generator, err := draw.New(&draw.Config{
		Shuffler: draw.NewShuffler(&draw.ShufflerConfig{Seed: cfg.DrawSeed}),
	})
	if err != nil {
		log.Fatalf("Failed to create pairing generator: %v", err)
	}

	// Initialize services
	eventSvc, err := eventService.New(&eventService.Config{
		EventRepo:       repos.events,
		ParticipantRepo: repos.participants,
		ExclusionRepo:   repos.exclusions,
		Generator:       generator,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create event service: %v", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{Seed: cfg.DrawSeed})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		EventService:     eventSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

func newRedisRepositories(cfg *config.Config) (*repositories, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	events, err := eventRepo.NewRedis(&eventRepo.Config{RedisClient: redisClient})
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{RedisClient: redisClient})
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	exclusions, err := exclusionRepo.NewRedis(&exclusionRepo.Config{RedisClient: redisClient})
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	return &repositories{
		events:       events,
		participants: participants,
		exclusions:   exclusions,
		close:        redisClient.Close,
	}, nil
}

func newPostgresRepositories(cfg *config.Config) (*repositories, error) {
	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	events, err := eventRepo.NewPostgres(&eventRepo.PostgresConfig{DB: conn})
	if err != nil {
		conn.Close()
		return nil, err
	}

	participants, err := participantRepo.NewPostgres(&participantRepo.PostgresConfig{DB: conn})
	if err != nil {
		conn.Close()
		return nil, err
	}

	exclusions, err := exclusionRepo.NewPostgres(&exclusionRepo.PostgresConfig{DB: conn})
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &repositories{
		events:       events,
		participants: participants,
		exclusions:   exclusions,
		close:        conn.Close,
	}, nil
}
