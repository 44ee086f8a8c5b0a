// Package dto provides data transfer objects for registry HTTP request and
// response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/vaultgate/vaultgate/internal/validation"
)

// SetMembershipRequest contains the parameters for setting an account's
// membership. The account is extracted from the URL parameter, not the body.
type SetMembershipRequest struct {
	Allowed *bool `json:"allowed"`
}

// Validate checks if the set membership request is valid.
func (r *SetMembershipRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Allowed, validation.NotNil),
	)
}

// TransferAdministratorRequest contains the parameters for replacing the
// administrator.
type TransferAdministratorRequest struct {
	NewAdministrator string `json:"new_administrator"`
}

// Validate checks if the transfer administrator request is valid. Zero-address
// rejection belongs to the usecase, which reports it as an invalid
// administrator rather than a malformed request.
func (r *TransferAdministratorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.NewAdministrator,
			validation.Required,
			customValidation.AddressFormat,
		),
	)
}
