// Package dto provides data transfer objects for gate HTTP responses.
package dto

import (
	gateDomain "github.com/vaultgate/vaultgate/internal/gate/domain"
)

// CheckResponse represents one capability check result. Every gate request
// produces exactly this shape with status 200; denial is allowed=false.
type CheckResponse struct {
	Account string `json:"account"`
	Role    string `json:"role"`
	Allowed bool   `json:"allowed"`
}

// NewCheckResponse builds a capability check response.
func NewCheckResponse(account string, role gateDomain.Role, allowed bool) CheckResponse {
	return CheckResponse{
		Account: account,
		Role:    role.String(),
		Allowed: allowed,
	}
}
