package commands

import (
	"context"
	"fmt"
	"log/slog"
)

// RunInitRegistry initializes the access registry with its first administrator.
// Should only be run once during initial system setup; subsequent runs fail
// because the registry is already initialized.
//
// Requirements: Database must be migrated and accessible.
func RunInitRegistry(ctx context.Context, deps RegistryDeps, administratorStr string) error {
	administrator, err := parseAddressFlag("administrator", administratorStr)
	if err != nil {
		return err
	}

	deps.Logger.Info("initializing registry",
		slog.String("administrator", administrator.String()),
	)

	if err := deps.UseCase.Initialize(ctx, administrator); err != nil {
		return fmt.Errorf("failed to initialize registry: %w", err)
	}

	deps.Logger.Info("registry initialized successfully",
		slog.String("administrator", administrator.String()),
	)

	return nil
}
