package usecase

import (
	"context"
	"time"

	"github.com/vaultgate/vaultgate/internal/metrics"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// registryUseCaseWithMetrics decorates RegistryUseCase with metrics instrumentation.
type registryUseCaseWithMetrics struct {
	next    RegistryUseCase
	metrics metrics.BusinessMetrics
}

// NewRegistryUseCaseWithMetrics wraps a RegistryUseCase with metrics recording.
func NewRegistryUseCaseWithMetrics(useCase RegistryUseCase, m metrics.BusinessMetrics) RegistryUseCase {
	return &registryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Initialize records metrics for registry construction.
func (r *registryUseCaseWithMetrics) Initialize(ctx context.Context, administrator domain.Address) error {
	start := time.Now()
	err := r.next.Initialize(ctx, administrator)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "registry", "initialize", status)
	r.metrics.RecordDuration(ctx, "registry", "initialize", time.Since(start), status)

	return err
}

// SetMembership records metrics for membership mutations.
func (r *registryUseCaseWithMetrics) SetMembership(
	ctx context.Context,
	caller, account domain.Address,
	allowed bool,
) error {
	start := time.Now()
	err := r.next.SetMembership(ctx, caller, account, allowed)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "registry", "set_membership", status)
	r.metrics.RecordDuration(ctx, "registry", "set_membership", time.Since(start), status)

	return err
}

// TransferAdministrator records metrics for administrator transfers.
func (r *registryUseCaseWithMetrics) TransferAdministrator(
	ctx context.Context,
	caller, newAdministrator domain.Address,
) error {
	start := time.Now()
	err := r.next.TransferAdministrator(ctx, caller, newAdministrator)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "registry", "transfer_administrator", status)
	r.metrics.RecordDuration(ctx, "registry", "transfer_administrator", time.Since(start), status)

	return err
}

// IsMember records metrics for membership reads.
func (r *registryUseCaseWithMetrics) IsMember(ctx context.Context, account domain.Address) (bool, error) {
	start := time.Now()
	allowed, err := r.next.IsMember(ctx, account)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "registry", "is_member", status)
	r.metrics.RecordDuration(ctx, "registry", "is_member", time.Since(start), status)

	return allowed, err
}

// Registry records metrics for administrative state reads.
func (r *registryUseCaseWithMetrics) Registry(ctx context.Context) (*domain.Registry, error) {
	start := time.Now()
	registry, err := r.next.Registry(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "registry", "get_registry", status)
	r.metrics.RecordDuration(ctx, "registry", "get_registry", time.Since(start), status)

	return registry, err
}

// ListMemberships records metrics for membership listing.
func (r *registryUseCaseWithMetrics) ListMemberships(
	ctx context.Context,
	limit, offset int,
) ([]*domain.Membership, error) {
	start := time.Now()
	memberships, err := r.next.ListMemberships(ctx, limit, offset)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "registry", "list_memberships", status)
	r.metrics.RecordDuration(ctx, "registry", "list_memberships", time.Since(start), status)

	return memberships, err
}
