package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
	registryMocks "github.com/vaultgate/vaultgate/internal/registry/usecase/mocks"
)

func TestRunShowRegistry(t *testing.T) {
	ctx := context.Background()
	administrator := registryDomain.MustParseAddress("0x8617e340b3d01fa5f11f306f4090fd50e238070d")
	allowedAccount := registryDomain.MustParseAddress("0x52908400098527886e0f7030069857d2e4169ee7")
	deniedAccount := registryDomain.MustParseAddress("0x27b1fdb04752bbc536007a920d24acb045561c26")
	registry := &registryDomain.Registry{
		Administrator: administrator,
		UpdatedAt:     time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	t.Run("with-memberships", func(t *testing.T) {
		mockUseCase := &registryMocks.MockRegistryUseCase{}
		mockUseCase.On("Registry", ctx).Return(registry, nil)
		mockUseCase.On("ListMemberships", ctx, 50, 0).Return([]*registryDomain.Membership{
			{Account: allowedAccount, Allowed: true},
			{Account: deniedAccount, Allowed: false},
		}, nil)

		var out bytes.Buffer
		err := RunShowRegistry(ctx, testDeps(mockUseCase), 50, 0, IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), administrator.String())
		require.Contains(t, out.String(), allowedAccount.String()+"  allowed")
		require.Contains(t, out.String(), deniedAccount.String()+"  denied")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty-memberships", func(t *testing.T) {
		mockUseCase := &registryMocks.MockRegistryUseCase{}
		mockUseCase.On("Registry", ctx).Return(registry, nil)
		mockUseCase.On("ListMemberships", ctx, 50, 0).
			Return([]*registryDomain.Membership{}, nil)

		var out bytes.Buffer
		err := RunShowRegistry(ctx, testDeps(mockUseCase), 50, 0, IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), "(none)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("not-initialized", func(t *testing.T) {
		mockUseCase := &registryMocks.MockRegistryUseCase{}
		mockUseCase.On("Registry", ctx).Return(nil, registryDomain.ErrRegistryNotInitialized)

		var out bytes.Buffer
		err := RunShowRegistry(ctx, testDeps(mockUseCase), 50, 0, IOTuple{Writer: &out})

		require.Error(t, err)
		require.ErrorIs(t, err, registryDomain.ErrRegistryNotInitialized)
		mockUseCase.AssertNotCalled(t, "ListMemberships")
	})
}
