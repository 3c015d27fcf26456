package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-registry/config"
	deliveryHttp "go-clinic-registry/internal/delivery/http"
	"go-clinic-registry/internal/delivery/http/handler"
	"go-clinic-registry/internal/delivery/http/middleware"
	domainRepo "go-clinic-registry/internal/domain/repository"
	"go-clinic-registry/internal/repository"
	"go-clinic-registry/internal/service"
	"go-clinic-registry/internal/usecase"
	"go-clinic-registry/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// App holds all dependencies for the application
type App struct {
	Config   *config.Config
	Log      *logrus.Logger
	Registry domainRepo.ClinicRepository
	Server   *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig wires the application from an already loaded configuration.
// The registry is created here, once, and handed to every layer that needs it.
func NewWithConfig(cfg *config.Config) *App {
	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	registry := repository.NewClinicRepository(
		repository.WithStrictReferences(cfg.Registry.StrictReferences),
	)
	log.Infof("Clinic registry initialized (strict references: %t)", cfg.Registry.StrictReferences)

	return &App{
		Config:   cfg,
		Log:      log,
		Registry: registry,
		Server:   initializeServer(cfg, log, registry),
	}
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, registry domainRepo.ClinicRepository) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: NewHandler(log, registry),
	}
}

// NewHandler builds the full HTTP handler around a registry.
func NewHandler(log *logrus.Logger, registry domainRepo.ClinicRepository) http.Handler {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	clinicUsecase := usecase.NewClinicUsecase(log, registry, auditService, time.Local)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(clinicUsecase)
	patientHandler := handler.NewPatientHandler(clinicUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(clinicUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(doctorHandler, patientHandler, appointmentHandler, auditLogHandler, loggingMiddleware, corsMiddleware)
	return router.Setup()
}

// Run starts the HTTP server and blocks until an interrupt signal is received
// or the server fails. The registry is discarded on return.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.App.ShutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
			return err
		}
		app.Log.Info("Server shutdown complete")
		return nil
	})

	return g.Wait()
}
