package usecase

import (
	"context"
	"log/slog"

	"github.com/vaultgate/vaultgate/internal/gate/domain"
	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
)

// gateUseCase implements GateUseCase over a MembershipChecker.
type gateUseCase struct {
	checker MembershipChecker
	logger  *slog.Logger
}

// NewGateUseCase creates a new GateUseCase
func NewGateUseCase(checker MembershipChecker, logger *slog.Logger) GateUseCase {
	return &gateUseCase{
		checker: checker,
		logger:  logger,
	}
}

// CanSendAssets reports whether the account may deposit assets.
func (uc *gateUseCase) CanSendAssets(ctx context.Context, account registryDomain.Address) bool {
	return uc.check(ctx, domain.RoleSendAssets, account)
}

// CanReceiveShares reports whether the account may be credited shares.
func (uc *gateUseCase) CanReceiveShares(ctx context.Context, account registryDomain.Address) bool {
	return uc.check(ctx, domain.RoleReceiveShares, account)
}

// CanSendShares reports whether the account may transfer or redeem shares.
func (uc *gateUseCase) CanSendShares(ctx context.Context, account registryDomain.Address) bool {
	return uc.check(ctx, domain.RoleSendShares, account)
}

// CanReceiveAssets reports whether the account may receive assets.
func (uc *gateUseCase) CanReceiveAssets(ctx context.Context, account registryDomain.Address) bool {
	return uc.check(ctx, domain.RoleReceiveAssets, account)
}

// check resolves a capability from the allowlist. All four roles share this
// single read path, so an account is either fully in or fully out and every
// check agrees with the membership read, zero address included: the
// administrator may allowlist it explicitly. A read failure denies instead
// of propagating: callers sit on a transfer path that must never abort on
// gate infrastructure trouble.
func (uc *gateUseCase) check(ctx context.Context, role domain.Role, account registryDomain.Address) bool {
	allowed, err := uc.checker.IsMember(ctx, account)
	if err != nil {
		uc.logger.Error("gate check failed, denying",
			slog.String("role", role.String()),
			slog.String("account", account.String()),
			slog.Any("error", err),
		)
		return false
	}
	return allowed
}
