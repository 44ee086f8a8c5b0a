// Package usecase implements the access registry business logic: the single
// administrator identity and the per-account allow/deny membership set.
package usecase

import (
	"context"

	outboxDomain "github.com/vaultgate/vaultgate/internal/outbox/domain"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// RegistryUseCase defines the interface for registry business logic operations.
//
// All mutations are atomic all-or-nothing: on failure no state changes and no
// notification is recorded.
type RegistryUseCase interface {
	// Initialize constructs the registry with its first administrator.
	// Fails with ErrInvalidAdministrator for the zero address and with
	// ErrRegistryAlreadyInitialized if called twice.
	Initialize(ctx context.Context, administrator domain.Address) error

	// SetMembership sets the allow/deny state for an account. Only the current
	// administrator may call it; any other caller gets ErrUnauthorized and no
	// state change. Setting an already-set value succeeds and records a fresh
	// notification. The account itself is not validated: the administrator may
	// explicitly allow or deny any identity, including the zero address.
	SetMembership(ctx context.Context, caller, account domain.Address, allowed bool) error

	// TransferAdministrator atomically replaces the administrator. Only the
	// current administrator may call it; the zero address is rejected with
	// ErrInvalidAdministrator. The old administrator's rights are revoked
	// immediately on success.
	TransferAdministrator(ctx context.Context, caller, newAdministrator domain.Address) error

	// IsMember reports the current allow/deny state for an account.
	// Accounts never explicitly set are denied.
	IsMember(ctx context.Context, account domain.Address) (bool, error)

	// Registry returns the current administrative state for external tooling.
	Registry(ctx context.Context) (*domain.Registry, error)

	// ListMemberships returns explicit membership entries for reconciliation.
	ListMemberships(ctx context.Context, limit, offset int) ([]*domain.Membership, error)
}

// RegistryRepository defines administrator persistence operations
type RegistryRepository interface {
	GetAdministrator(ctx context.Context) (*domain.Registry, error)
	CreateAdministrator(ctx context.Context, administrator domain.Address) error
	UpdateAdministrator(ctx context.Context, administrator domain.Address) error
}

// MembershipRepository defines membership persistence operations
type MembershipRepository interface {
	Upsert(ctx context.Context, account domain.Address, allowed bool) error
	Get(ctx context.Context, account domain.Address) (*domain.Membership, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Membership, error)
}

// OutboxEventRepository defines outbox event persistence operations
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}
