package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-sedes-backend/config"
	deliveryHttp "hospital-sedes-backend/internal/delivery/http"
	"hospital-sedes-backend/internal/delivery/http/handler"
	"hospital-sedes-backend/internal/delivery/http/middleware"
	"hospital-sedes-backend/internal/infrastructure/cache"
	"hospital-sedes-backend/internal/infrastructure/database"
	"hospital-sedes-backend/internal/repository"
	"hospital-sedes-backend/internal/service"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/jwt"
	"hospital-sedes-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Resolver    *database.Resolver
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized. The
// per-sede datastores connect lazily on first use, so a sede being down at
// boot never blocks startup.
func New() (*App, error) {
	app := &App{}

	setupLogger()
	log := logrus.StandardLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if cfg.DB.MigrationsDir != "" {
		if err := database.RunMigrations(cfg.DB, log); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	app.Resolver = database.NewResolver(cfg.DB, log)

	// Redis is optional; without it the refdata cache is a no-op.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, refdata caching disabled: %v", err)
		redisClient = nil
	} else {
		logrus.Info("Redis connected successfully")
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, app.Resolver, redisClient, log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, resolver *database.Resolver, redisClient *redis.Client, log *logrus.Logger) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	refdataCache := service.NewRefdataCache(redisClient, log)

	pacienteRepo := repository.NewPacienteRepository()
	doctorRepo := repository.NewDoctorRepository()
	consultorioRepo := repository.NewConsultorioRepository()
	citaRepo := repository.NewCitaRepository()
	historialRepo := repository.NewHistorialRepository()
	especialidadRepo := repository.NewEspecialidadRepository()
	centroRepo := repository.NewCentroRepository()

	authUsecase := usecase.NewAuthUsecase(log, jwtService)
	pacienteUsecase := usecase.NewPacienteUsecase(resolver, log, pacienteRepo)
	doctorUsecase := usecase.NewDoctorUsecase(resolver, log, doctorRepo)
	consultorioUsecase := usecase.NewConsultorioUsecase(resolver, log, consultorioRepo)
	citaUsecase := usecase.NewCitaUsecase(resolver, log, citaRepo)
	historialUsecase := usecase.NewHistorialUsecase(resolver, log, historialRepo)
	especialidadUsecase := usecase.NewEspecialidadUsecase(resolver, log, refdataCache, especialidadRepo)
	centroUsecase := usecase.NewCentroUsecase(resolver, log, refdataCache, centroRepo)
	statusUsecase := usecase.NewStatusUsecase(resolver, log)

	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	pacienteHandler := handler.NewPacienteHandler(pacienteUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	consultorioHandler := handler.NewConsultorioHandler(consultorioUsecase, customValidator)
	citaHandler := handler.NewCitaHandler(citaUsecase, customValidator)
	historialHandler := handler.NewHistorialHandler(historialUsecase, customValidator)
	especialidadHandler := handler.NewEspecialidadHandler(especialidadUsecase, customValidator)
	centroHandler := handler.NewCentroHandler(centroUsecase, customValidator)
	statusHandler := handler.NewStatusHandler(statusUsecase)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogger := middleware.NewRequestLogger(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		pacienteHandler,
		doctorHandler,
		consultorioHandler,
		citaHandler,
		historialHandler,
		especialidadHandler,
		centroHandler,
		statusHandler,
		authMiddleware,
		corsMiddleware,
		requestLogger,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
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

// Close closes all connections (per-sede pools, redis)
func (app *App) Close() {
	if app.Resolver != nil {
		app.Resolver.Close()
	}
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
