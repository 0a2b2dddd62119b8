package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"onboard/internal/config"
	"onboard/internal/logging"
	serverHTTP "onboard/internal/server/http"
	"onboard/internal/user"
)

// Config holds server configuration.
type Config struct {
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
}

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	logger := logging.NewComponentLogger("Main")
	cfg := loadConfig()

	logger.Info("Starting onboarding server on :%s", cfg.Port)

	configStore, userStore, cleanup, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer cleanup()

	router := serverHTTP.NewRouter(configStore, userStore, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// buildStores selects Postgres-backed stores when a database URL is
// configured, in-memory stores otherwise.
func buildStores(cfg Config) (config.Store, user.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return config.NewMemoryStore(), user.NewMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}

	configStore := config.NewPostgresStore(pool)
	userStore := user.NewPostgresStore(pool)
	if err := configStore.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	if err := userStore.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	return configStore, userStore, pool.Close, nil
}

// loadConfig loads configuration from environment variables.
func loadConfig() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("ONBOARD_DATABASE_URL", ""),
	}
	if origins := getEnv("ONBOARD_ALLOWED_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
