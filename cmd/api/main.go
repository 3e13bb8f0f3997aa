package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"language-assistant/config"
	_ "language-assistant/docs" // Swagger docs
	"language-assistant/internal/clock"
	clockUC "language-assistant/internal/clock/usecase"
	"language-assistant/internal/httpserver"
	"language-assistant/internal/qna"
	qnaUC "language-assistant/internal/qna/usecase"
	"language-assistant/internal/router"
	"language-assistant/pkg/conversations"
	"language-assistant/pkg/log"
	"language-assistant/pkg/questionanswering"
)

// @title       Language Assistant API
// @description Clock and question answering over Azure AI Language.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Language Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Clock domain
	var clockUseCase clock.UseCase
	if err := cfg.ValidateConversations(); err != nil {
		logger.Warnf(ctx, "Clock domain skipped: %v", err)
	} else {
		client, err := conversations.New(conversations.Config{
			Endpoint:       cfg.Conversations.Endpoint,
			Key:            cfg.Conversations.Key,
			ProjectName:    cfg.Conversations.ProjectName,
			DeploymentName: cfg.Conversations.DeploymentName,
			Language:       cfg.Conversations.Language,
			Timeout:        cfg.Conversations.Timeout,
			Verbose:        cfg.Conversations.Verbose,
		})
		if err != nil {
			logger.Fatalf(ctx, "Failed to initialize conversations client: %v", err)
		}
		clockUseCase = clockUC.New(logger, clock.NewCLUClassifier(client), router.New(nil))
		logger.Info(ctx, "Clock domain initialized")
	}

	// 4. Q&A domain
	var qnaUseCase qna.UseCase
	if err := cfg.ValidateQuestionAnswering(); err != nil {
		logger.Warnf(ctx, "Q&A domain skipped: %v", err)
	} else {
		client, err := questionanswering.New(questionanswering.Config{
			Endpoint:            cfg.QuestionAnswering.Endpoint,
			Key:                 cfg.QuestionAnswering.Key,
			ProjectName:         cfg.QuestionAnswering.ProjectName,
			DeploymentName:      cfg.QuestionAnswering.DeploymentName,
			Timeout:             cfg.QuestionAnswering.Timeout,
			Top:                 cfg.QuestionAnswering.Top,
			ConfidenceThreshold: cfg.QuestionAnswering.ConfidenceThreshold,
		})
		if err != nil {
			logger.Fatalf(ctx, "Failed to initialize question answering client: %v", err)
		}
		qnaUseCase = qnaUC.New(logger, client, qnaUC.CacheConfig{
			Size: cfg.QuestionAnswering.CacheSize,
			TTL:  cfg.QuestionAnswering.CacheTTL,
		})
		logger.Info(ctx, "Q&A domain initialized")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		ClockUseCase:    clockUseCase,
		QnAUseCase:      qnaUseCase,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
