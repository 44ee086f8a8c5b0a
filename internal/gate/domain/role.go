// Package domain contains the gate capability model.
//
// The gate answers four capability questions a tokenized vault asks before
// moving value: may this account send assets, receive shares, send shares,
// receive assets. All four derive from the same allowlist membership, so an
// account either participates fully or not at all.
package domain

// Role identifies one of the four vault capabilities the gate arbitrates.
type Role string

const (
	// RoleSendAssets covers depositing assets into the vault.
	RoleSendAssets Role = "send_assets"

	// RoleReceiveShares covers being credited vault shares.
	RoleReceiveShares Role = "receive_shares"

	// RoleSendShares covers transferring or redeeming vault shares.
	RoleSendShares Role = "send_shares"

	// RoleReceiveAssets covers receiving assets out of the vault.
	RoleReceiveAssets Role = "receive_assets"
)

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}
