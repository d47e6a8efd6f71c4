package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "autoportal-backend/internal/api/http"
	"autoportal-backend/internal/config"
	"autoportal-backend/internal/logger"
	"autoportal-backend/internal/repository/postgres"
	"autoportal-backend/internal/security"
	"autoportal-backend/internal/service"
	"autoportal-backend/internal/session"
	"autoportal-backend/internal/storage"
	"autoportal-backend/internal/workflow"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AutoPortal Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Session Manager
	var sessionStore session.Store
	switch cfg.Session.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Using Redis session store", "addr", cfg.Redis.Addr)
		sessionStore = session.NewRedisStore(client)
	default:
		logger.Info("Using in-memory session store")
		sessionStore = session.NewMemoryStore()
	}
	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	sessions := session.NewManager(sessionStore, store.UserRepository, sessionTTL)

	// Initialize Document File Storage
	files, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	downloadTokens := security.NewDownloadTokenManager(cfg.Storage.DownloadTokenSecret)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName, cfg.Email.Enabled)

	// Initialize Services
	rules := workflow.Rules{AllowUserCancel: cfg.Workflow.AllowUserCancel}
	authSvc := service.NewAuthService(store.UserRepository, sessions)
	requestSvc := service.NewRequestService(
		store.ServiceRequestRepository,
		store.ServiceTypeRepository,
		store.DocumentRepository,
		store.PaymentRepository,
		store.UserRepository,
		emailSvc,
		rules,
		cfg.Email.AdminEmail,
	)
	documentSvc := service.NewDocumentService(
		store.DocumentRepository,
		store.ServiceRequestRepository,
		files,
		downloadTokens,
		cfg.Storage.BaseURL,
		cfg.Storage.MaxFileSizeMB,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.ServiceRequestRepository,
		store.UserRepository,
		service.NewStubGateway(),
		emailSvc,
	)
	messageSvc := service.NewMessageService(store.MessageRepository, store.UserRepository, store.ServiceRequestRepository)
	adminSvc := service.NewAdminService(store.UserRepository, store.ServiceTypeRepository, sessions)

	// Initialize HTTP handlers
	authHandler := httpapi.NewAuthHandler(authSvc, cfg.Session.CookieName, sessionTTL, cfg.Session.SecureCookie)
	requestHandler := httpapi.NewRequestHandler(requestSvc)
	documentHandler := httpapi.NewDocumentHandler(documentSvc, cfg.Storage.MaxFileSizeMB)
	paymentHandler := httpapi.NewPaymentHandler(paymentSvc)
	messageHandler := httpapi.NewMessageHandler(messageSvc)
	adminHandler := httpapi.NewAdminHandler(adminSvc)

	router := httpapi.NewRouter(
		sessions,
		cfg.Session.CookieName,
		authHandler,
		requestHandler,
		documentHandler,
		paymentHandler,
		messageHandler,
		adminHandler,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
