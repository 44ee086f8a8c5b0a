package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vaultgate/vaultgate/internal/metrics"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
	usecaseMocks "github.com/vaultgate/vaultgate/internal/registry/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

// TestNewRegistryUseCaseWithMetrics tests the metrics decorator constructor.
func TestNewRegistryUseCaseWithMetrics(t *testing.T) {
	mockUseCase := &usecaseMocks.MockRegistryUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewRegistryUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.Implements(t, (*RegistryUseCase)(nil), decorator)
}

// TestRegistryMetricsDecorator_SetMembership tests the SetMembership method with metrics.
func TestRegistryMetricsDecorator_SetMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockRegistryUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("SetMembership", ctx, testAdministrator, testAccount, true).
			Return(nil).
			Once()

		mockMetrics.On("RecordOperation", ctx, "registry", "set_membership", "success").
			Return().
			Once()

		mockMetrics.On("RecordDuration", ctx, "registry", "set_membership", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewRegistryUseCaseWithMetrics(mockUseCase, mockMetrics)
		err := decorator.SetMembership(ctx, testAdministrator, testAccount, true)

		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockRegistryUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("SetMembership", ctx, testStranger, testAccount, true).
			Return(domain.ErrUnauthorized).
			Once()

		mockMetrics.On("RecordOperation", ctx, "registry", "set_membership", "error").
			Return().
			Once()

		mockMetrics.On("RecordDuration", ctx, "registry", "set_membership", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewRegistryUseCaseWithMetrics(mockUseCase, mockMetrics)
		err := decorator.SetMembership(ctx, testStranger, testAccount, true)

		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
		mockMetrics.AssertExpectations(t)
	})
}

// TestRegistryMetricsDecorator_TransferAdministrator tests the TransferAdministrator method with metrics.
func TestRegistryMetricsDecorator_TransferAdministrator(t *testing.T) {
	ctx := context.Background()

	mockUseCase := &usecaseMocks.MockRegistryUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("TransferAdministrator", ctx, testAdministrator, testNewAdministrator).
		Return(nil).
		Once()

	mockMetrics.On("RecordOperation", ctx, "registry", "transfer_administrator", "success").
		Return().
		Once()

	mockMetrics.On("RecordDuration", ctx, "registry", "transfer_administrator", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()

	decorator := NewRegistryUseCaseWithMetrics(mockUseCase, mockMetrics)
	err := decorator.TransferAdministrator(ctx, testAdministrator, testNewAdministrator)

	assert.NoError(t, err)
	mockMetrics.AssertExpectations(t)
}

// TestRegistryMetricsDecorator_IsMember tests the IsMember method with metrics.
func TestRegistryMetricsDecorator_IsMember(t *testing.T) {
	ctx := context.Background()

	mockUseCase := &usecaseMocks.MockRegistryUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("IsMember", ctx, testAccount).
		Return(true, nil).
		Once()

	mockMetrics.On("RecordOperation", ctx, "registry", "is_member", "success").
		Return().
		Once()

	mockMetrics.On("RecordDuration", ctx, "registry", "is_member", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()

	decorator := NewRegistryUseCaseWithMetrics(mockUseCase, mockMetrics)
	allowed, err := decorator.IsMember(ctx, testAccount)

	assert.NoError(t, err)
	assert.True(t, allowed)
	mockMetrics.AssertExpectations(t)
}
