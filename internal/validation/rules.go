// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/vaultgate/vaultgate/internal/errors"
	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// AddressFormat validates that a string is a well-formed hex account address.
// The zero address is accepted; callers that must reject it check separately.
var AddressFormat = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := registryDomain.ParseAddress(s)
		return err == nil
	},
	validation.NewError("validation_address_format", "must be a 20-byte hex address"),
)
