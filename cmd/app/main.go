package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"commerce/cmd"
	httpadapter "commerce/internal/adapters/in/http"
	mongodb "commerce/internal/adapters/out/mongo"
	"commerce/internal/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, config.MongoURI, config.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", "error", err)
		}
	}()

	root, err := cmd.NewCompositionRoot(ctx, config, db, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer root.Close()

	jobManager := root.CreateJobManager(config, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true

	server := httpadapter.NewServer(root.CreateHTTPHandlers(), root.TokenVerifier(), metrics.NewServerMetrics())
	server.RegisterRoutes(e)

	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if serveErr := e.Start(address); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server stopped: %v", serveErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down HTTP server", "error", err)
	}
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:             envOr("HTTP_PORT", "8080"),
		MongoURI:             envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:          envOr("MONGO_DB_NAME", "commerce"),
		NatsURL:              envOr("NATS_URL", "nats://localhost:4222"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTTTL:               durationOr("JWT_TTL", 24*time.Hour),
		ResetCleanupSchedule: envOr("RESET_CLEANUP_SCHEDULE", "0 0 * * * *"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Warnf("Invalid %s value %q, using default", key, raw)
		return fallback
	}
	return parsed
}
