package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"memedrop.backend/internal/config"
	"memedrop.backend/internal/infrastructure/pinning"
	"memedrop.backend/internal/infrastructure/repositories"
	"memedrop.backend/internal/interfaces/http/handlers"
	"memedrop.backend/internal/usecases"
	"memedrop.backend/pkg/logger"
	"memedrop.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Security.APIKey == "" {
		logger.Warn(context.Background(), "API_KEY is not set; every token request will be rejected")
	}

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Repositories and collaborators
	tokenRepo := repositories.NewTokenRepository(db)
	waitlistRepo := repositories.NewWaitlistRepository(db)
	pinner := pinning.NewClient(cfg.IPFS.APIAddr, cfg.IPFS.Gateway)

	// Usecases
	tokenUsecase := usecases.NewTokenUsecase(tokenRepo, pinner, cfg.Tokens.ValidateCreatorAddress)
	waitlistUsecase := usecases.NewWaitlistUsecase(waitlistRepo)

	// Handlers
	deps := routeDeps{
		tokenHandler:    handlers.NewTokenHandler(tokenUsecase),
		waitlistHandler: handlers.NewWaitlistHandler(waitlistUsecase),
		healthHandler:   handlers.NewHealthHandler(),
		apiKey:          cfg.Security.APIKey,
	}

	r := gin.New()
	registerRoutes(r, deps)

	logger.Info(context.Background(), "Starting server", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
