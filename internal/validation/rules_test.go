package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/vaultgate/vaultgate/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	err := WrapValidationError(apperrors.New("account: must be a 20-byte hex address"))
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
}

func TestWrapValidationError_Nil(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestAddressFormat(t *testing.T) {
	assert.NoError(t, AddressFormat.Validate("0x52908400098527886e0f7030069857d2e4169ee7"))
	assert.NoError(t, AddressFormat.Validate("52908400098527886E0F7030069857D2E4169EE7"))
	// The zero address is a well-formed address; rejecting it is a caller decision.
	assert.NoError(t, AddressFormat.Validate("0x0000000000000000000000000000000000000000"))
	assert.Error(t, AddressFormat.Validate("0x1234"))
	assert.Error(t, AddressFormat.Validate("not-an-address"))
}
