// Echoman daemon — ingests platform hot lists on a schedule and runs the
// two-stage merge pipeline that maintains the topic store.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/echoman-project/echoman/pkg/config"
	"github.com/echoman-project/echoman/pkg/database"
	"github.com/echoman-project/echoman/pkg/ingest"
	"github.com/echoman-project/echoman/pkg/llm"
	"github.com/echoman-project/echoman/pkg/scheduler"
	"github.com/echoman-project/echoman/pkg/services"
	"github.com/echoman-project/echoman/pkg/tokens"
	"github.com/echoman-project/echoman/pkg/vector"
	"github.com/joho/godotenv"
)

func main() {
	envPath := flag.String("env-file", ".env", "Path to the environment file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	ctx := context.Background()

	// 1. Configuration
	settings, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	loc, err := settings.Location()
	if err != nil {
		slog.Error("Failed to resolve timezone", "timezone", settings.Timezone, "error", err)
		os.Exit(1)
	}
	slog.Info("Starting echoman",
		"platforms", settings.EnabledPlatforms,
		"timezone", settings.Timezone)

	// 2. Database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	if health, err := dbClient.Health(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	} else {
		slog.Info("Connected to PostgreSQL database",
			"response_time_ms", health.ResponseTime,
			"max_open_conns", health.MaxOpenConns)
	}

	// 3. LLM client, token accountant, vector store
	llmClient := llm.NewOpenAIClient(llm.OpenAIConfig{
		BaseURL:    settings.LLMBaseURL,
		APIKey:     settings.LLMAPIKey,
		Model:      settings.LLMModel,
		EmbBaseURL: settings.EmbeddingBaseURL,
		EmbAPIKey:  settings.EmbeddingAPIKey,
		EmbModel:   settings.EmbeddingModel,
		Timeout:    settings.LLMTimeout,
		MaxRetries: settings.LLMMaxRetries,
	})
	acct := tokens.NewAccountant()
	store := vector.NewPGStore(dbClient.DB())
	slog.Info("LLM client initialized", "model", settings.LLMModel, "embedding_model", settings.EmbeddingModel)

	// 4. Domain services
	runs := services.NewRunService(dbClient.Client)
	judgements := services.NewJudgementRecorder(dbClient.Client)
	heat := services.NewHeatService(dbClient.Client, settings)
	classifier := services.NewClassificationService(dbClient.Client, llmClient, acct, settings, judgements)
	summaries := services.NewSummaryService(dbClient.Client, llmClient, store, acct, settings, judgements)
	periodMerge := services.NewPeriodMergeService(dbClient.Client, llmClient, store, acct, settings, runs, judgements)
	globalMerge := services.NewGlobalMergeService(dbClient.Client, llmClient, store, acct, settings, runs, judgements, classifier, summaries, loc)
	metrics := services.NewMetricsService(dbClient.Client, runs, loc)
	ingestSvc := ingest.NewService(dbClient.Client, settings, ingest.DefaultScrapers(), loc)
	slog.Info("Services initialized")

	// 5. Scheduler
	sched := scheduler.New(settings, loc, ingestSvc, heat, periodMerge, globalMerge, metrics)
	if err := sched.Start(); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	slog.Info("Echoman started successfully")

	// 6. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 7. Graceful shutdown: stop triggering new jobs, drain in-flight ones
	sched.Stop()
	slog.Info("Echoman stopped")
}
