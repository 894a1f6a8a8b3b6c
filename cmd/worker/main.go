package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"roomledger/internal/config"
	"roomledger/internal/notify"
	"roomledger/internal/queue"
	"roomledger/internal/repository/postgres"
	"roomledger/internal/repository/reportdir"
	"roomledger/internal/service/ingest"
	"roomledger/internal/spreadsheet"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	// Logs go to stdout, and additionally to a timestamped file when a log
	// directory is configured
	logOut := io.Writer(os.Stdout)
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, "worker", cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("worker starting",
		"environment", cfg.Environment,
		"concurrency", cfg.WorkerConcurrency,
		"table_prefix", cfg.TablePrefix,
	)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	taskRepo := postgres.NewTaskRepository(repoConfig)
	reservationRepo := postgres.NewReservationRepository(repoConfig)

	reportStore, err := reportdir.NewStore(cfg.ReportDir)
	if err != nil {
		log.Fatalf("Failed to create report store: %v", err)
	}

	// Events go out over Redis pub/sub; the WebSocket gateway subscribes
	// outside this process.
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	notifier := notify.NewRedisNotifier(redisClient, logger)

	rules := ingest.NewRuleEngine(reservationRepo, cfg.Statuses, logger)
	orchestrator := ingest.NewOrchestrator(
		taskRepo,
		reportStore,
		spreadsheet.NewExcelReader(),
		rules,
		notifier,
		cfg.Statuses,
		logger,
	)

	handler := queue.NewHandler(orchestrator, logger)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{
			// Parallelism across tasks; each task's rows stay
			// strictly sequential inside one handler invocation.
			Concurrency: cfg.WorkerConcurrency,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeIngest, handler.HandleIngest)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("Worker failed: %v", err)
	}
}
