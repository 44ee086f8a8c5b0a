package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
	registryMocks "github.com/vaultgate/vaultgate/internal/registry/usecase/mocks"
)

func TestRunTransferAdministrator(t *testing.T) {
	ctx := context.Background()
	caller := registryDomain.MustParseAddress("0x8617e340b3d01fa5f11f306f4090fd50e238070d")
	newAdministrator := registryDomain.MustParseAddress("0xde709f2102306220921060314715629080e2fb77")

	t.Run("success", func(t *testing.T) {
		mockUseCase := &registryMocks.MockRegistryUseCase{}
		mockUseCase.On("TransferAdministrator", ctx, caller, newAdministrator).Return(nil)

		err := RunTransferAdministrator(
			ctx,
			testDeps(mockUseCase),
			caller.String(),
			newAdministrator.String(),
		)

		require.NoError(t, err)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("missing-new-administrator", func(t *testing.T) {
		mockUseCase := &registryMocks.MockRegistryUseCase{}

		err := RunTransferAdministrator(ctx, testDeps(mockUseCase), caller.String(), "")

		require.Error(t, err)
		require.Contains(t, err.Error(), "--new is required")
		mockUseCase.AssertNotCalled(t, "TransferAdministrator")
	})

	t.Run("zero-address-rejected-by-usecase", func(t *testing.T) {
		zero := registryDomain.ZeroAddress
		mockUseCase := &registryMocks.MockRegistryUseCase{}
		mockUseCase.On("TransferAdministrator", ctx, caller, zero).
			Return(registryDomain.ErrInvalidAdministrator)

		err := RunTransferAdministrator(ctx, testDeps(mockUseCase), caller.String(), zero.String())

		require.Error(t, err)
		require.ErrorIs(t, err, registryDomain.ErrInvalidAdministrator)
		mockUseCase.AssertExpectations(t)
	})
}
