package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/auth"
	"github.com/amirhosseinghanipour/timesheet/internal/application/client"
	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/application/project"
	"github.com/amirhosseinghanipour/timesheet/internal/application/team"
	"github.com/amirhosseinghanipour/timesheet/internal/application/timelog"
	"github.com/amirhosseinghanipour/timesheet/internal/config"
	httprouter "github.com/amirhosseinghanipour/timesheet/internal/infrastructure/http"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/http/handlers"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/http/middleware"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/migrations"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/postgres"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/queue"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/security"
)

func newLogger(cfg config.LogConfig) zerolog.Logger {
	var log zerolog.Logger
	if cfg.Format == "json" {
		log = zerolog.New(os.Stderr)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	return log.Level(level).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}
	log := newLogger(cfg.Log)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	if cfg.Database.MigrateOnStart {
		sqlDB := stdlib.OpenDBFromPool(pool)
		if err := migrations.Up(ctx, sqlDB); err != nil {
			log.Fatal().Err(err).Msg("apply migrations")
		}
		_ = sqlDB.Close()
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without session purge scheduling")
			redisClient = nil
		}
	}

	var healthHandler *handlers.HealthHandler
	if redisClient != nil {
		healthHandler = handlers.NewHealthHandler(pool, redisClient)
	} else {
		healthHandler = handlers.NewHealthHandler(pool, nil)
	}

	queries := db.New(pool)
	userRepo := postgres.NewUserRepository(queries)
	sessionStore := postgres.NewSessionStore(queries)
	clientRepo := postgres.NewClientRepository(queries)
	projectRepo := postgres.NewProjectRepository(queries)
	teamRepo := postgres.NewTeamRepository(queries, pool)
	taskRepo := postgres.NewTaskRepository(queries)
	timeLogRepo := postgres.NewTimeLogRepository(queries)

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		redisOpt := redisClient.Options()
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Username: redisOpt.Username, Password: redisOpt.Password, DB: redisOpt.DB, TLSConfig: redisOpt.TLSConfig}
		asynqEnq := queue.NewAsynqEnqueuer(asynqOpt, log)
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		purge := queue.NewPurgeHandler(sessionStore, time.Now, log)
		asynqWorker = queue.NewWorker(asynqOpt, purge, cfg.Session.PurgeInterval, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewNoopEnqueuer()
	}
	// Clear whatever expired while the service was down.
	if err := taskEnqueuer.EnqueuePurgeExpiredSessions(ctx); err != nil {
		log.Warn().Err(err).Msg("initial session purge not queued")
	}

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	loginUC := auth.NewLogin(userRepo, hasher, sessionStore, cfg.Session.TTL, time.Now)
	authenticateUC := auth.NewAuthenticate(sessionStore, time.Now)
	logoutUC := auth.NewLogout(sessionStore)

	authHandler := handlers.NewAuthHandler(loginUC, authenticateUC, logoutUC, log)
	usersHandler := handlers.NewUsersHandler(userRepo, log)
	clientsHandler := handlers.NewClientsHandler(clientRepo, client.NewDeleteClient(clientRepo), log)
	projectsHandler := handlers.NewProjectsHandler(projectRepo, project.NewCreateProject(projectRepo), project.NewUpdateProject(projectRepo), log)
	teamsHandler := handlers.NewTeamsHandler(teamRepo, team.NewCreateTeam(teamRepo), team.NewSetMembers(teamRepo), log)
	tasksHandler := handlers.NewTasksHandler(taskRepo, log)
	timeLogsHandler := handlers.NewTimeLogsHandler(timeLogRepo, timelog.NewCreateTimeLog(timeLogRepo), timelog.NewUpdateTimeLog(timeLogRepo), log)
	adminHandler := handlers.NewAdminHandler(sessionStore, time.Now, log)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:     authHandler,
		HealthHandler:   healthHandler,
		UsersHandler:    usersHandler,
		ClientsHandler:  clientsHandler,
		ProjectsHandler: projectsHandler,
		TeamsHandler:    teamsHandler,
		TasksHandler:    tasksHandler,
		TimeLogsHandler: timeLogsHandler,
		AdminHandler:    adminHandler,
		RequireSession:  middleware.NewSessionGuard(authenticateUC, log).Handler,
		RequireAdmin:    middleware.RequireAdminSecret(cfg.Admin.Secret),
		CORS:            middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil),
		Secure:          middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment)),
		Log:             log,
		Metrics:         cfg.Metrics,
	})

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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
