package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"language-assistant/config"
	"language-assistant/internal/clock"
	clockCLI "language-assistant/internal/clock/delivery/cli"
	clockUC "language-assistant/internal/clock/usecase"
	"language-assistant/internal/repl"
	"language-assistant/internal/router"
	"language-assistant/pkg/conversations"
	"language-assistant/pkg/log"
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

	if err := cfg.ValidateConversations(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Conversation analysis client
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
		return err
	}
	project, deployment := client.Project()
	logger.Infof(ctx, "Using project %s, deployment %s", project, deployment)

	// 4. UseCase and delivery
	uc := clockUC.New(logger, clock.NewCLUClassifier(client), router.New(nil))
	h := clockCLI.New(logger, uc)

	// 5. Run
	return repl.New(os.Stdin, os.Stdout, clockCLI.Prompt).Run(ctx, h.Handle)
}
