package domain

import "time"

// Membership records the allow/deny state for a single account. Accounts without
// a row are denied; absence and an explicit false are semantically identical.
type Membership struct {
	// Account is the identity this entry applies to.
	Account Address
	// Allowed is the current allow/deny state.
	Allowed bool
	// CreatedAt is the UTC timestamp when this entry was first written.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the most recent write, including no-op rewrites.
	UpdatedAt time.Time
}

// Registry describes the registry's administrative state for read entry points.
type Registry struct {
	// Administrator is the single identity with exclusive mutation rights.
	Administrator Address
	// UpdatedAt is the UTC timestamp of the most recent administrator change.
	UpdatedAt time.Time
}
