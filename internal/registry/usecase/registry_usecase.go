package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vaultgate/vaultgate/internal/database"
	apperrors "github.com/vaultgate/vaultgate/internal/errors"
	outboxDomain "github.com/vaultgate/vaultgate/internal/outbox/domain"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
	"github.com/vaultgate/vaultgate/internal/registry/repository"
)

// registryUseCase implements RegistryUseCase over the repositories.
type registryUseCase struct {
	txManager      database.TxManager
	registryRepo   RegistryRepository
	membershipRepo MembershipRepository
	outboxRepo     OutboxEventRepository
	logger         *slog.Logger
}

// NewRegistryUseCase creates a new RegistryUseCase
func NewRegistryUseCase(
	txManager database.TxManager,
	registryRepo RegistryRepository,
	membershipRepo MembershipRepository,
	outboxRepo OutboxEventRepository,
	logger *slog.Logger,
) RegistryUseCase {
	return &registryUseCase{
		txManager:      txManager,
		registryRepo:   registryRepo,
		membershipRepo: membershipRepo,
		outboxRepo:     outboxRepo,
		logger:         logger,
	}
}

// Initialize constructs the registry with its first administrator.
func (uc *registryUseCase) Initialize(ctx context.Context, administrator domain.Address) error {
	if administrator.IsZero() {
		return domain.ErrInvalidAdministrator
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.registryRepo.CreateAdministrator(ctx, administrator); err != nil {
			return err
		}

		// Recorded as a transfer from the zero address, mirroring the
		// construction-time ownership event of the host vault's contracts.
		return uc.createAdministratorChangedEvent(ctx, domain.ZeroAddress, administrator)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("registry initialized",
		slog.String("administrator", administrator.String()),
	)
	return nil
}

// SetMembership sets the allow/deny state for an account.
func (uc *registryUseCase) SetMembership(ctx context.Context, caller, account domain.Address, allowed bool) error {
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.requireAdministrator(ctx, caller); err != nil {
			return err
		}

		if err := uc.membershipRepo.Upsert(ctx, account, allowed); err != nil {
			return err
		}

		return uc.createMembershipChangedEvent(ctx, account, allowed, caller)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("membership set",
		slog.String("account", account.String()),
		slog.Bool("allowed", allowed),
		slog.String("actor", caller.String()),
	)
	return nil
}

// TransferAdministrator atomically replaces the administrator.
func (uc *registryUseCase) TransferAdministrator(ctx context.Context, caller, newAdministrator domain.Address) error {
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.requireAdministrator(ctx, caller); err != nil {
			return err
		}

		if newAdministrator.IsZero() {
			return domain.ErrInvalidAdministrator
		}

		if err := uc.registryRepo.UpdateAdministrator(ctx, newAdministrator); err != nil {
			return err
		}

		return uc.createAdministratorChangedEvent(ctx, caller, newAdministrator)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("administrator transferred",
		slog.String("old_administrator", caller.String()),
		slog.String("new_administrator", newAdministrator.String()),
	)
	return nil
}

// IsMember reports the current allow/deny state for an account.
func (uc *registryUseCase) IsMember(ctx context.Context, account domain.Address) (bool, error) {
	membership, err := uc.membershipRepo.Get(ctx, account)
	if err != nil {
		// No explicit entry means denied; this is state, not a failure.
		if apperrors.Is(err, repository.ErrMembershipNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.Allowed, nil
}

// Registry returns the current administrative state.
func (uc *registryUseCase) Registry(ctx context.Context) (*domain.Registry, error) {
	return uc.registryRepo.GetAdministrator(ctx)
}

// ListMemberships returns explicit membership entries.
func (uc *registryUseCase) ListMemberships(ctx context.Context, limit, offset int) ([]*domain.Membership, error) {
	return uc.membershipRepo.List(ctx, limit, offset)
}

// requireAdministrator verifies the caller holds the administrator role.
// Runs inside the mutation transaction so the check and the write are serialized.
func (uc *registryUseCase) requireAdministrator(ctx context.Context, caller domain.Address) error {
	registry, err := uc.registryRepo.GetAdministrator(ctx)
	if err != nil {
		return err
	}
	if registry.Administrator != caller {
		return domain.ErrUnauthorized
	}
	return nil
}

func (uc *registryUseCase) createMembershipChangedEvent(
	ctx context.Context,
	account domain.Address,
	allowed bool,
	actor domain.Address,
) error {
	payload, err := json.Marshal(domain.MembershipChangedEvent{
		Account: account,
		Allowed: allowed,
		Actor:   actor,
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal membership event payload")
	}

	return uc.outboxRepo.Create(ctx, &outboxDomain.OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: domain.EventMembershipChanged,
		Payload:   string(payload),
		Status:    outboxDomain.OutboxEventStatusPending,
	})
}

func (uc *registryUseCase) createAdministratorChangedEvent(
	ctx context.Context,
	oldAdministrator, newAdministrator domain.Address,
) error {
	payload, err := json.Marshal(domain.AdministratorChangedEvent{
		OldAdministrator: oldAdministrator,
		NewAdministrator: newAdministrator,
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal administrator event payload")
	}

	return uc.outboxRepo.Create(ctx, &outboxDomain.OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: domain.EventAdministratorChanged,
		Payload:   string(payload),
		Status:    outboxDomain.OutboxEventStatusPending,
	})
}
