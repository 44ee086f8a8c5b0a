package domain

// Outbox event types emitted by registry mutations. Events are written in the
// same transaction as the mutation, so a failed mutation emits nothing.
const (
	// EventMembershipChanged carries a MembershipChangedEvent payload.
	EventMembershipChanged = "registry.membership_changed"

	// EventAdministratorChanged carries an AdministratorChangedEvent payload.
	EventAdministratorChanged = "registry.administrator_changed"
)

// MembershipChangedEvent is the payload recorded when a membership entry is written.
// Emitted on every successful SetMembership, including no-op rewrites of the same value.
type MembershipChangedEvent struct {
	Account Address `json:"account"`
	Allowed bool    `json:"allowed"`
	Actor   Address `json:"actor"`
}

// AdministratorChangedEvent is the payload recorded when the administrator role moves.
type AdministratorChangedEvent struct {
	OldAdministrator Address `json:"old_administrator"`
	NewAdministrator Address `json:"new_administrator"`
}
