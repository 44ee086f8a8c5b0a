package commands

import (
	"context"
	"fmt"

	"github.com/vaultgate/vaultgate/internal/app"
	"github.com/vaultgate/vaultgate/internal/config"
)

// RunProcessOutbox processes pending outbox events once and exits. Useful for
// draining the outbox from a cron job instead of the server's built-in loop.
//
// Requirements: Database must be migrated and accessible.
func RunProcessOutbox(ctx context.Context) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	outboxUseCase, err := container.OutboxUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize outbox processor: %w", err)
	}

	logger.Info("processing pending outbox events")

	if err := outboxUseCase.ProcessEvents(ctx); err != nil {
		return fmt.Errorf("failed to process outbox events: %w", err)
	}

	logger.Info("outbox events processed successfully")
	return nil
}
