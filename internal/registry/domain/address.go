// Package domain defines the core domain models for the access registry: account
// addresses, membership state, and the notification payloads emitted on mutation.
package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of an account address.
const AddressLength = 20

// Address is a 20-byte account identity. The zero value is the null address,
// which is never a valid administrator but may appear as a membership key.
type Address [AddressLength]byte

// ZeroAddress is the null account identity.
var ZeroAddress Address

// ParseAddress parses a hex-encoded account address. The "0x" prefix is optional
// and letter case is ignored. Exactly 40 hex digits are required.
func ParseAddress(s string) (Address, error) {
	var addr Address

	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(trimmed) != AddressLength*2 {
		return addr, fmt.Errorf("invalid address %q: must be %d hex digits", s, AddressLength*2)
	}

	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return addr, fmt.Errorf("invalid address %q: %w", s, err)
	}

	copy(addr[:], raw)
	return addr, nil
}

// MustParseAddress parses a hex-encoded account address and panics on failure.
// Intended for tests and static initialization only.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// String returns the canonical lowercase hex form with the "0x" prefix.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// IsZero reports whether the address is the null account identity.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// MarshalText implements encoding.TextMarshaler using the canonical hex form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
