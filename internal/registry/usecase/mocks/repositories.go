// Package mocks provides mock implementations for testing registry business logic.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	outboxDomain "github.com/vaultgate/vaultgate/internal/outbox/domain"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// MockRegistryRepository is a mock implementation of RegistryRepository for testing.
type MockRegistryRepository struct {
	mock.Mock
}

// GetAdministrator mocks the GetAdministrator method of RegistryRepository.
func (m *MockRegistryRepository) GetAdministrator(ctx context.Context) (*domain.Registry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registry), args.Error(1)
}

// CreateAdministrator mocks the CreateAdministrator method of RegistryRepository.
func (m *MockRegistryRepository) CreateAdministrator(ctx context.Context, administrator domain.Address) error {
	args := m.Called(ctx, administrator)
	return args.Error(0)
}

// UpdateAdministrator mocks the UpdateAdministrator method of RegistryRepository.
func (m *MockRegistryRepository) UpdateAdministrator(ctx context.Context, administrator domain.Address) error {
	args := m.Called(ctx, administrator)
	return args.Error(0)
}

// MockMembershipRepository is a mock implementation of MembershipRepository for testing.
type MockMembershipRepository struct {
	mock.Mock
}

// Upsert mocks the Upsert method of MembershipRepository.
func (m *MockMembershipRepository) Upsert(ctx context.Context, account domain.Address, allowed bool) error {
	args := m.Called(ctx, account, allowed)
	return args.Error(0)
}

// Get mocks the Get method of MembershipRepository.
func (m *MockMembershipRepository) Get(ctx context.Context, account domain.Address) (*domain.Membership, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

// List mocks the List method of MembershipRepository.
func (m *MockMembershipRepository) List(ctx context.Context, limit, offset int) ([]*domain.Membership, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Membership), args.Error(1)
}

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository for testing.
type MockOutboxEventRepository struct {
	mock.Mock
}

// Create mocks the Create method of OutboxEventRepository.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
