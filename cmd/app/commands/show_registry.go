package commands

import (
	"context"
	"fmt"
)

// RunShowRegistry prints the current administrator and the explicit
// membership entries to the writer. Useful for reconciling the allowlist
// against external records.
//
// Requirements: Database must be migrated and the registry initialized.
func RunShowRegistry(ctx context.Context, deps RegistryDeps, limit, offset int, io IOTuple) error {
	registry, err := deps.UseCase.Registry(ctx)
	if err != nil {
		return fmt.Errorf("failed to read registry: %w", err)
	}

	memberships, err := deps.UseCase.ListMemberships(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("failed to list memberships: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "Administrator: %s\n", registry.Administrator.String())
	_, _ = fmt.Fprintf(io.Writer, "Updated at:    %s\n", registry.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
	_, _ = fmt.Fprintf(io.Writer, "\nMemberships (limit=%d offset=%d):\n", limit, offset)

	if len(memberships) == 0 {
		_, _ = fmt.Fprintln(io.Writer, "  (none)")
		return nil
	}

	for _, membership := range memberships {
		state := "denied"
		if membership.Allowed {
			state = "allowed"
		}
		_, _ = fmt.Fprintf(io.Writer, "  %s  %s\n", membership.Account.String(), state)
	}

	return nil
}
