// Package http provides HTTP handlers for access registry operations.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// CallerHeader carries the caller's account identity. Authenticating that
// identity belongs to the fronting deployment platform; this service only
// compares it against the registered administrator.
const CallerHeader = "X-Caller-Address"

const callerContextKey = "callerAddress"

// SetCaller stores the caller identity in the gin context.
func SetCaller(c *gin.Context, caller domain.Address) {
	c.Set(callerContextKey, caller)
}

// GetCaller returns the caller identity from the gin context, if one was set.
func GetCaller(c *gin.Context) (domain.Address, bool) {
	value, exists := c.Get(callerContextKey)
	if !exists {
		return domain.ZeroAddress, false
	}
	caller, ok := value.(domain.Address)
	return caller, ok
}
