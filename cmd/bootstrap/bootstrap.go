package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthtrack-service/config"
	deliveryHttp "healthtrack-service/internal/delivery/http"
	"healthtrack-service/internal/delivery/http/handler"
	"healthtrack-service/internal/delivery/http/middleware"
	"healthtrack-service/internal/infrastructure/cache"
	"healthtrack-service/internal/infrastructure/database"
	infraStorage "healthtrack-service/internal/infrastructure/storage"
	"healthtrack-service/internal/repository"
	"healthtrack-service/internal/service"
	"healthtrack-service/internal/usecase"
	"healthtrack-service/pkg/validator"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	MongoClient *mongo.Client
	AuditDB     *gorm.DB
	RedisClient *redis.Client
	MinioClient *minio.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize document store
	mongoClient, err := database.NewMongoConnection(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	app.MongoClient = mongoClient

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(indexCtx, mongoClient, cfg.Mongo); err != nil {
		return nil, fmt.Errorf("failed to ensure mongo indexes: %w", err)
	}

	// Initialize audit database
	auditDB, err := database.NewPostgresConnection(cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to audit database: %w", err)
	}
	app.AuditDB = auditDB

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize blob storage
	minioClient, err := infraStorage.NewMinioClient(cfg.Minio)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Minio: %w", err)
	}
	app.MinioClient = minioClient

	// Initialize all layers
	app.Server = initializeServer(cfg, mongoClient, auditDB, redisClient, minioClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, mongoClient *mongo.Client, auditDB *gorm.DB, redisClient *redis.Client, minioClient *minio.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	db := mongoClient.Database(cfg.Mongo.Database)
	identityRepo := repository.NewIdentityRepository(db.Collection(cfg.Mongo.IdentityCollection))
	profileRepo := repository.NewPatientProfileRepository(db.Collection(cfg.Mongo.ProfileCollection))
	appointmentRepo := repository.NewAppointmentRepository(db.Collection(cfg.Mongo.AppointmentCollection))
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(auditDB, log, auditRepo)
	fileStorage := service.NewMinioFileStorage(minioClient, cfg.Minio.Bucket, log)
	appointmentCache := service.NewAppointmentCache(redisClient, cfg.Redis.AppointmentTTL, log)

	// Initialize usecases
	intakeValidator := usecase.NewIntakeValidator(customValidator)
	patientUsecase := usecase.NewPatientUsecase(log, identityRepo, profileRepo, fileStorage, auditService, intakeValidator)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, identityRepo, appointmentCache, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(auditDB, log, auditRepo)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	physicianHandler := handler.NewPhysicianHandler()
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, appointmentHandler, physicianHandler, auditLogHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close(ctx)

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (document store, audit database, redis)
func (app *App) Close(ctx context.Context) {
	if app.MongoClient != nil {
		if err := app.MongoClient.Disconnect(ctx); err != nil {
			logrus.Errorf("Failed to disconnect mongo client: %v", err)
		}
	}

	if app.AuditDB != nil {
		sqlDB, err := app.AuditDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
