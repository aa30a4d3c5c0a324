package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightboard-service/internal/domain/entity"
	domainRepo "flightboard-service/internal/domain/repository"
	"flightboard-service/internal/infrastructure/config"
	"flightboard-service/internal/infrastructure/persistence"
	"flightboard-service/internal/interface/gateway"
	"flightboard-service/internal/interface/identity"
	storeRepo "flightboard-service/internal/interface/repository"
	"flightboard-service/internal/usecase"
	"flightboard-service/pkg/logger"
	"flightboard-service/pkg/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.Development)
	log.Info("Starting Flightboard Tool Gateway", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Flight table: Postgres when a DSN is configured, otherwise the
	// seeded in-memory table
	var flightRepo domainRepo.FlightRepository
	if cfg.PostgresURI != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		flightRepo = storeRepo.NewGormFlightRepository(gormDB)
		log.Info("Using PostgreSQL flight table")
	} else {
		flightRepo = storeRepo.NewMemoryFlightRepository(entity.SampleFlights())
		log.Info("Using in-memory flight table")
	}

	// Set up MongoDB profile store
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	profileRepo := storeRepo.NewMongoProfileRepository(db)

	// Identity service client
	identityClient := identity.NewHTTPClient(cfg.IdentityURL, cfg.IdentityServiceKey, log)

	// Adapters and dispatcher
	flightTools := usecase.NewFlightToolset(flightRepo, log)
	userTools := usecase.NewUserToolset(identityClient, profileRepo, log)
	dispatcher := usecase.NewDispatcher(flightTools, userTools, log)

	// Gateway server
	m := metrics.NewMetrics("flightboard")
	server := gateway.NewServer(dispatcher, m, log, ":"+cfg.Port, cfg.ReadTimeout, cfg.WriteTimeout)

	// Start HTTP server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flightboard Tool Gateway stopped")
}
