// Package usecase implements the vault gate checks on top of the access
// registry.
package usecase

import (
	"context"

	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
)

// GateUseCase answers the four capability questions a tokenized vault asks
// before moving value.
//
// Never-fail contract: these methods have no error return and must not panic.
// Denial is expressed strictly through a false result. Absent allowlist
// entries, the zero address, and infrastructure read failures all deny.
type GateUseCase interface {
	// CanSendAssets reports whether the account may deposit assets.
	CanSendAssets(ctx context.Context, account registryDomain.Address) bool

	// CanReceiveShares reports whether the account may be credited shares.
	CanReceiveShares(ctx context.Context, account registryDomain.Address) bool

	// CanSendShares reports whether the account may transfer or redeem shares.
	CanSendShares(ctx context.Context, account registryDomain.Address) bool

	// CanReceiveAssets reports whether the account may receive assets.
	CanReceiveAssets(ctx context.Context, account registryDomain.Address) bool
}

// MembershipChecker reports allowlist membership for an account.
type MembershipChecker interface {
	IsMember(ctx context.Context, account registryDomain.Address) (bool, error)
}
