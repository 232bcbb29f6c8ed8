package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/telehealth-connect/patient-api/internal/config"
	"github.com/telehealth-connect/patient-api/internal/email"
	"github.com/telehealth-connect/patient-api/internal/handler"
	appointmentHandler "github.com/telehealth-connect/patient-api/internal/handler/appointment"
	authHandler "github.com/telehealth-connect/patient-api/internal/handler/auth"
	healthcenterHandler "github.com/telehealth-connect/patient-api/internal/handler/healthcenter"
	"github.com/telehealth-connect/patient-api/internal/middleware"
	"github.com/telehealth-connect/patient-api/internal/repository/postgres"
	redisrepo "github.com/telehealth-connect/patient-api/internal/repository/redis"
	"github.com/telehealth-connect/patient-api/internal/router"
	appointmentService "github.com/telehealth-connect/patient-api/internal/service/appointment"
	authService "github.com/telehealth-connect/patient-api/internal/service/auth"
	healthcenterService "github.com/telehealth-connect/patient-api/internal/service/healthcenter"
	notificationService "github.com/telehealth-connect/patient-api/internal/service/notification"
	pkgauth "github.com/telehealth-connect/patient-api/pkg/auth"
	"github.com/telehealth-connect/patient-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Initialize Redis session store
	redisClient, err := redisrepo.NewClient(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize repositories
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	centerRepo := postgres.NewHealthCenterRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Initialize services
	tokenSvc := pkgauth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	authSvc := authService.NewService(patientRepo, sessionRepo, tokenSvc)
	centerSvc := healthcenterService.NewService(centerRepo, healthcenterService.NewSubstringMatcher())
	notifier := notificationService.NewService(email.NewService(cfg.SMTP))
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, centerSvc, notifier)

	// Seed the fixed health centers on first startup
	if err := centerSvc.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed health centers")
	}

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	centerH := healthcenterHandler.NewHandler(centerSvc)

	// Setup router
	r := router.NewRouter(authMiddleware, authH, appointmentH, centerH, h, router.Config{
		RateLimit: middleware.RateLimiterConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		},
		CORSConfig: middleware.DefaultCORSConfig(),
		Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
