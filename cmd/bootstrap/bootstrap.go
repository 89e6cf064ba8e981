package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinic-booking/config"
	deliveryHttp "dental-clinic-booking/internal/delivery/http"
	"dental-clinic-booking/internal/delivery/http/handler"
	"dental-clinic-booking/internal/delivery/http/middleware"
	domainRepo "dental-clinic-booking/internal/domain/repository"
	"dental-clinic-booking/internal/infrastructure/cache"
	"dental-clinic-booking/internal/infrastructure/database"
	"dental-clinic-booking/internal/infrastructure/metrics"
	"dental-clinic-booking/internal/repository"
	"dental-clinic-booking/internal/service"
	"dental-clinic-booking/internal/usecase"
	"dental-clinic-booking/pkg/jwt"
	"dental-clinic-booking/pkg/validator"

	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Janitor     *service.SessionJanitor
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Initialize database, the in-memory stores are used without one
	if cfg.DB.Enabled() {
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		logrus.Info("Database connected successfully")

		if err := database.RunMigrations(db); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logrus.Info("Database migrations applied")
	} else {
		logrus.Info("No database configured, using in-memory appointments and audit logs")
	}

	// Initialize Redis
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Info("No Redis configured, using in-memory sessions and tokens")
	}

	// Initialize all layers
	httpHandler, janitor, err := buildHandler(cfg, logrus.StandardLogger(), app.DB, app.RedisClient, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Janitor = janitor

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// buildHandler initializes repositories, usecases and handlers and returns the root HTTP handler.
// db and redisClient may be nil.
func buildHandler(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	registerer prometheus.Registerer,
	gatherer prometheus.Gatherer,
) (http.Handler, *service.SessionJanitor, error) {
	now := time.Now

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	appMetrics := metrics.New(registerer)

	// Initialize repositories
	serviceRepo := repository.NewServiceRepository()
	settingsRepo := repository.NewSettingsRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	managedRepo := repository.NewManagedAppointmentRepository(serviceRepo)

	var (
		sessionRepo     domainRepo.SessionRepository
		tokenRepo       domainRepo.TokenRepository
		appointmentRepo domainRepo.AppointmentRepository
		auditRepo       domainRepo.AuditLogRepository
	)
	if redisClient != nil {
		sessionRepo = repository.NewRedisSessionRepository(redisClient)
		tokenRepo = repository.NewRedisTokenRepository(redisClient)
	} else {
		sessionRepo = repository.NewMemorySessionRepository(now)
		tokenRepo = repository.NewMemoryTokenRepository(now)
	}
	if db != nil {
		appointmentRepo = repository.NewAppointmentRepository(db)
		auditRepo = repository.NewAuditLogRepository(db)
	} else {
		appointmentRepo = repository.NewMemoryAppointmentRepository(repository.MockAppointments())
		auditRepo = repository.NewMemoryAuditLogRepository()
	}

	// Initialize services
	slotSource := service.NewFakeSlotSource(cfg.App.SlotSeed)
	notificationService := service.NewNotificationServiceFromConfig(log, cfg.Notify)
	auditService := service.NewAuditService(log, auditRepo)

	janitor, err := service.NewSessionJanitor(log, sessionRepo, cfg.Session.CleanupSchedule)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to schedule session cleanup: %w", err)
	}

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(log, sessionRepo, serviceRepo, settingsRepo, slotSource, notificationService, appMetrics, cfg.Session.TTL, now)
	calendarUsecase := usecase.NewCalendarUsecase(log, sessionRepo, slotSource, cfg.Session.TTL, now)
	manageUsecase := usecase.NewManageUsecase(log, managedRepo, slotSource, now)
	authUsecase, err := usecase.NewAdminAuthUsecase(log, cfg.Admin, jwtService, tokenRepo, auditService, appMetrics)
	if err != nil {
		return nil, nil, err
	}
	availabilityUsecase := usecase.NewAvailabilityUsecase(log, availabilityRepo, auditService)
	settingsUsecase := usecase.NewSettingsUsecase(log, settingsRepo, auditService)
	exportUsecase := usecase.NewExportUsecase(log, appointmentRepo, auditService, now)
	dashboardUsecase := usecase.NewAdminDashboardUsecase(log, appointmentRepo, availabilityUsecase, settingsUsecase, exportUsecase)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditRepo)

	// Initialize handlers
	handlerSet := deliveryHttp.Handlers{
		Booking:      handler.NewBookingHandler(bookingUsecase, customValidator),
		Calendar:     handler.NewCalendarHandler(calendarUsecase, customValidator),
		Manage:       handler.NewManageHandler(manageUsecase, customValidator),
		Auth:         handler.NewAuthHandler(authUsecase, customValidator),
		Dashboard:    handler.NewDashboardHandler(dashboardUsecase),
		Availability: handler.NewAvailabilityHandler(availabilityUsecase, customValidator),
		Settings:     handler.NewSettingsHandler(settingsUsecase, customValidator),
		Export:       handler.NewExportHandler(exportUsecase, customValidator),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenRepo)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log, appMetrics)

	// Initialize router
	router := deliveryHttp.NewRouter(handlerSet, authMiddleware, corsMiddleware, loggingMiddleware,
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(log), handlers.PrintRecoveryStack(true))
	return recovery(router.Handler()), janitor, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.Janitor.Start()

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

	app.Janitor.Stop()

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
