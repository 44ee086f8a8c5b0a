package domain

import (
	"github.com/vaultgate/vaultgate/internal/errors"
)

// Registry errors.
var (
	// ErrInvalidAdministrator indicates a supplied administrator identity is the zero address.
	ErrInvalidAdministrator = errors.Wrap(errors.ErrInvalidInput, "administrator cannot be the zero address")

	// ErrUnauthorized indicates the caller of a mutation is not the current administrator.
	ErrUnauthorized = errors.Wrap(errors.ErrForbidden, "caller is not the administrator")

	// ErrRegistryNotInitialized indicates no administrator has been set yet.
	ErrRegistryNotInitialized = errors.Wrap(errors.ErrNotFound, "registry not initialized")

	// ErrRegistryAlreadyInitialized indicates the registry was already constructed.
	ErrRegistryAlreadyInitialized = errors.Wrap(errors.ErrConflict, "registry already initialized")
)
