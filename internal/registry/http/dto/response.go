package dto

import (
	"time"

	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
)

// RegistryResponse represents the administrative state in API responses.
type RegistryResponse struct {
	Administrator string    `json:"administrator"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MapRegistryToResponse converts the domain registry to an API response.
func MapRegistryToResponse(registry *registryDomain.Registry) RegistryResponse {
	return RegistryResponse{
		Administrator: registry.Administrator.String(),
		UpdatedAt:     registry.UpdatedAt,
	}
}

// MembershipResponse represents an account's allowlist state in API responses.
type MembershipResponse struct {
	Account string `json:"account"`
	Allowed bool   `json:"allowed"`
}

// MapMembershipToResponse converts a domain membership to an API response.
func MapMembershipToResponse(membership *registryDomain.Membership) MembershipResponse {
	return MembershipResponse{
		Account: membership.Account.String(),
		Allowed: membership.Allowed,
	}
}

// ListMembershipsResponse represents a paginated membership listing.
type ListMembershipsResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
	Offset      int                  `json:"offset"`
	Limit       int                  `json:"limit"`
}

// MapMembershipsToListResponse converts domain memberships to a paginated API response.
func MapMembershipsToListResponse(memberships []*registryDomain.Membership, offset, limit int) ListMembershipsResponse {
	items := make([]MembershipResponse, 0, len(memberships))
	for _, membership := range memberships {
		items = append(items, MapMembershipToResponse(membership))
	}
	return ListMembershipsResponse{
		Memberships: items,
		Offset:      offset,
		Limit:       limit,
	}
}
