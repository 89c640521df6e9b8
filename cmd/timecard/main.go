package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/timecard-app/timecard/internal/application/auth"
	"github.com/timecard-app/timecard/internal/application/manage"
	"github.com/timecard-app/timecard/internal/application/report"
	"github.com/timecard-app/timecard/internal/application/timesheet"
	"github.com/timecard-app/timecard/internal/config"
	httprouter "github.com/timecard-app/timecard/internal/infrastructure/http"
	"github.com/timecard-app/timecard/internal/infrastructure/http/handlers"
	"github.com/timecard-app/timecard/internal/infrastructure/http/middleware"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/postgres"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	calendarRepo := postgres.NewCalendarRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)

	summarizeUC := timesheet.NewSummarize(entryRepo, calendarRepo)
	timeHandler := handlers.NewTimeHandler(
		timesheet.NewDayView(entryRepo, projectRepo, summarizeUC),
		summarizeUC,
		timesheet.NewAddEntry(entryRepo, assignmentRepo, projectRepo),
		timesheet.NewUpdateEntry(entryRepo),
		timesheet.NewDeleteEntry(entryRepo),
		timesheet.NewSyncDay(entryRepo, assignmentRepo, projectRepo),
	)
	reportHandler := handlers.NewReportHandler(
		report.NewWorkerReport(entryRepo, assignmentRepo, projectRepo, userRepo),
		report.NewProjectReport(entryRepo, assignmentRepo, projectRepo, userRepo),
	)
	adminHandler := handlers.NewAdminHandler(
		manage.NewCreateProject(projectRepo),
		manage.NewListProjects(projectRepo),
		manage.NewUpdateProject(projectRepo),
		manage.NewSuppressProject(projectRepo),
		manage.NewAssignProject(assignmentRepo, userRepo, projectRepo),
		manage.NewSuppressAssignment(assignmentRepo),
		manage.NewSetCalendarDay(calendarRepo),
		manage.NewMonthOverrides(calendarRepo),
	)
	authHandler := handlers.NewAuthHandler(
		auth.NewLogin(userRepo, sessionRepo, cfg.Session.TTL),
		auth.NewLogout(sessionRepo),
		auth.NewSwitchRole(sessionRepo, userRepo),
		log,
	)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.Security.RateLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	var cors func(http.Handler) http.Handler
	if len(cfg.Security.CORSOrigins) > 0 {
		cors = middleware.CORS(cfg.Security.CORSOrigins)
	}

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:   authHandler,
		TimeHandler:   timeHandler,
		ReportHandler: reportHandler,
		AdminHandler:  adminHandler,
		UsersHandler:  handlers.NewUsersHandler(userRepo),
		HealthHandler: handlers.NewHealthHandler(pool),
		Session:       middleware.NewSessionResolver(sessionRepo, userRepo),
		Log:           log,
		Secure:        middleware.NewSecure(middleware.SecureOptions(cfg.Security.IsDev)),
		IPRateLimit:   ipLimit,
		CORS:          cors,
		Metrics:       cfg.Server.Metrics,
	})

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(cfg.Session.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				n, err := auth.SweepExpiredSessions(sweepCtx, sessionRepo)
				if err != nil {
					log.Warn().Err(err).Msg("session sweep")
					continue
				}
				if n > 0 {
					log.Info().Int64("removed", n).Msg("expired sessions swept")
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	stopSweep()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
