package commands

import (
	"context"
	"fmt"
	"log/slog"
)

// RunSetMembership sets the allow/deny state for an account on the allowlist.
// The caller must be the current administrator.
//
// Requirements: Database must be migrated and the registry initialized.
func RunSetMembership(
	ctx context.Context,
	deps RegistryDeps,
	callerStr string,
	accountStr string,
	allowed bool,
) error {
	caller, err := parseAddressFlag("caller", callerStr)
	if err != nil {
		return err
	}

	account, err := parseAddressFlag("account", accountStr)
	if err != nil {
		return err
	}

	deps.Logger.Info("setting membership",
		slog.String("account", account.String()),
		slog.Bool("allowed", allowed),
	)

	if err := deps.UseCase.SetMembership(ctx, caller, account, allowed); err != nil {
		return fmt.Errorf("failed to set membership: %w", err)
	}

	deps.Logger.Info("membership updated successfully",
		slog.String("account", account.String()),
		slog.Bool("allowed", allowed),
	)

	return nil
}
