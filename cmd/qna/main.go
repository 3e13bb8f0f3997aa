package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"language-assistant/config"
	qnaCLI "language-assistant/internal/qna/delivery/cli"
	qnaUC "language-assistant/internal/qna/usecase"
	"language-assistant/internal/repl"
	"language-assistant/pkg/log"
	"language-assistant/pkg/questionanswering"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	if err := cfg.ValidateQuestionAnswering(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Question answering client
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
		return err
	}

	// 4. UseCase and delivery
	uc := qnaUC.New(logger, client, qnaUC.CacheConfig{
		Size: cfg.QuestionAnswering.CacheSize,
		TTL:  cfg.QuestionAnswering.CacheTTL,
	})
	h := qnaCLI.New(logger, uc)

	// 5. Run
	fmt.Println(qnaCLI.Banner)
	return repl.New(os.Stdin, os.Stdout, qnaCLI.Prompt).Run(ctx, h.Handle)
}
