package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"therapy-clinic-api/config"
	deliveryHttp "therapy-clinic-api/internal/delivery/http"
	"therapy-clinic-api/internal/delivery/http/handler"
	"therapy-clinic-api/internal/delivery/http/middleware"
	"therapy-clinic-api/internal/infrastructure/cache"
	"therapy-clinic-api/internal/infrastructure/database"
	"therapy-clinic-api/internal/repository"
	"therapy-clinic-api/internal/service"
	"therapy-clinic-api/internal/usecase"
	"therapy-clinic-api/pkg/jwt"
	"therapy-clinic-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const limiterCleanupInterval = time.Minute

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	stopBackground context.CancelFunc
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

	if cfg.DB.Migrate {
		if err := database.RunMigrations(cfg.DB, logrus.StandardLogger()); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server = app.initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	personRepo := repository.NewPersonRepository()
	clientRepo := repository.NewClientRepository()
	addressRepo := repository.NewAddressRepository()
	userRepo := repository.NewAppUserRepository()
	roleRepo := repository.NewRoleRepository()
	therapistRepo := repository.NewTherapistRepository()
	therapyRepo := repository.NewTherapyRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	tokenStore := service.NewTokenStore(redisClient, log)
	addressReconciler := service.NewAddressReconciler(log, addressRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService)
	clientUsecase := usecase.NewClientUsecase(db, log, personRepo, clientRepo, addressRepo, userRepo, addressReconciler, auditService)
	therapistUsecase := usecase.NewTherapistUsecase(db, log, personRepo, userRepo, roleRepo, therapistRepo, therapyRepo, tokenStore, auditService)
	therapyUsecase := usecase.NewTherapyUsecase(db, log, therapyRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, clientRepo, therapistRepo, therapyRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	clientHandler := handler.NewClientHandler(clientUsecase, customValidator)
	therapistHandler := handler.NewTherapistHandler(therapistUsecase, customValidator)
	therapyHandler := handler.NewTherapyHandler(therapyUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst, log)
	metrics := middleware.NewMetrics()

	bgCtx, stop := context.WithCancel(context.Background())
	app.stopBackground = stop
	go cleanupLimiter(bgCtx, loginLimiter)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		clientHandler,
		therapistHandler,
		therapyHandler,
		appointmentHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loginLimiter,
		metrics,
	)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func cleanupLimiter(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup()
		}
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.stopBackground != nil {
		app.stopBackground()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
