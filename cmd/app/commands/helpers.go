// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/vaultgate/vaultgate/internal/app"
	"github.com/vaultgate/vaultgate/internal/config"
	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
	registryUseCase "github.com/vaultgate/vaultgate/internal/registry/usecase"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// RegistryDeps bundles the dependencies registry commands need.
type RegistryDeps struct {
	UseCase registryUseCase.RegistryUseCase
	Logger  *slog.Logger
}

// WithRegistryUseCase loads configuration, builds the DI container, and runs
// fn with a fully wired registry use case. The container is shut down when fn
// returns.
func WithRegistryUseCase(ctx context.Context, fn func(deps RegistryDeps) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.RegistryUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize registry use case: %w", err)
	}

	return fn(RegistryDeps{UseCase: useCase, Logger: logger})
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parseAddressFlag converts a flag value to a registry address.
// Returns an error naming the flag if the value is empty or malformed.
func parseAddressFlag(flag, value string) (registryDomain.Address, error) {
	if value == "" {
		return registryDomain.Address{}, fmt.Errorf("--%s is required", flag)
	}
	address, err := registryDomain.ParseAddress(value)
	if err != nil {
		return registryDomain.Address{}, fmt.Errorf("invalid --%s value %q: %w", flag, value, err)
	}
	return address, nil
}
