package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// MockRegistryUseCase is a mock implementation of RegistryUseCase for testing.
type MockRegistryUseCase struct {
	mock.Mock
}

// Initialize mocks the Initialize method of RegistryUseCase.
func (m *MockRegistryUseCase) Initialize(ctx context.Context, administrator domain.Address) error {
	args := m.Called(ctx, administrator)
	return args.Error(0)
}

// SetMembership mocks the SetMembership method of RegistryUseCase.
func (m *MockRegistryUseCase) SetMembership(ctx context.Context, caller, account domain.Address, allowed bool) error {
	args := m.Called(ctx, caller, account, allowed)
	return args.Error(0)
}

// TransferAdministrator mocks the TransferAdministrator method of RegistryUseCase.
func (m *MockRegistryUseCase) TransferAdministrator(ctx context.Context, caller, newAdministrator domain.Address) error {
	args := m.Called(ctx, caller, newAdministrator)
	return args.Error(0)
}

// IsMember mocks the IsMember method of RegistryUseCase.
func (m *MockRegistryUseCase) IsMember(ctx context.Context, account domain.Address) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

// Registry mocks the Registry method of RegistryUseCase.
func (m *MockRegistryUseCase) Registry(ctx context.Context) (*domain.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registry), args.Error(1)
}

// ListMemberships mocks the ListMemberships method of RegistryUseCase.
func (m *MockRegistryUseCase) ListMemberships(ctx context.Context, limit, offset int) ([]*domain.Membership, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}
