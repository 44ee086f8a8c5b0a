package usecase

import (
	"context"
	"time"

	"github.com/vaultgate/vaultgate/internal/gate/domain"
	"github.com/vaultgate/vaultgate/internal/metrics"
	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
)

// gateUseCaseWithMetrics decorates GateUseCase with metrics instrumentation.
// The recorded status is the check outcome (allowed or denied), not an error
// state: the gate has none.
type gateUseCaseWithMetrics struct {
	next    GateUseCase
	metrics metrics.BusinessMetrics
}

// NewGateUseCaseWithMetrics wraps a GateUseCase with metrics recording.
func NewGateUseCaseWithMetrics(useCase GateUseCase, m metrics.BusinessMetrics) GateUseCase {
	return &gateUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (g *gateUseCaseWithMetrics) CanSendAssets(ctx context.Context, account registryDomain.Address) bool {
	return g.record(ctx, domain.RoleSendAssets, func() bool {
		return g.next.CanSendAssets(ctx, account)
	})
}

func (g *gateUseCaseWithMetrics) CanReceiveShares(ctx context.Context, account registryDomain.Address) bool {
	return g.record(ctx, domain.RoleReceiveShares, func() bool {
		return g.next.CanReceiveShares(ctx, account)
	})
}

func (g *gateUseCaseWithMetrics) CanSendShares(ctx context.Context, account registryDomain.Address) bool {
	return g.record(ctx, domain.RoleSendShares, func() bool {
		return g.next.CanSendShares(ctx, account)
	})
}

func (g *gateUseCaseWithMetrics) CanReceiveAssets(ctx context.Context, account registryDomain.Address) bool {
	return g.record(ctx, domain.RoleReceiveAssets, func() bool {
		return g.next.CanReceiveAssets(ctx, account)
	})
}

func (g *gateUseCaseWithMetrics) record(ctx context.Context, role domain.Role, check func() bool) bool {
	start := time.Now()
	allowed := check()

	status := "denied"
	if allowed {
		status = "allowed"
	}

	g.metrics.RecordOperation(ctx, "gate", "can_"+role.String(), status)
	g.metrics.RecordDuration(ctx, "gate", "can_"+role.String(), time.Since(start), status)

	return allowed
}
