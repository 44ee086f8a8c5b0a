package commands

import (
	"context"
	"fmt"
	"log/slog"
)

// RunTransferAdministrator transfers registry administration to a new address.
// The caller must be the current administrator; their rights are revoked
// immediately on success.
//
// Requirements: Database must be migrated and the registry initialized.
func RunTransferAdministrator(
	ctx context.Context,
	deps RegistryDeps,
	callerStr string,
	newAdministratorStr string,
) error {
	caller, err := parseAddressFlag("caller", callerStr)
	if err != nil {
		return err
	}

	newAdministrator, err := parseAddressFlag("new", newAdministratorStr)
	if err != nil {
		return err
	}

	deps.Logger.Info("transferring administrator",
		slog.String("new_administrator", newAdministrator.String()),
	)

	if err := deps.UseCase.TransferAdministrator(ctx, caller, newAdministrator); err != nil {
		return fmt.Errorf("failed to transfer administrator: %w", err)
	}

	deps.Logger.Info("administrator transferred successfully",
		slog.String("new_administrator", newAdministrator.String()),
	)

	return nil
}
