package http

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/vaultgate/vaultgate/internal/httputil"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
)

// CallerMiddleware extracts the caller identity from the X-Caller-Address
// header into the request context. A missing header passes through (read
// endpoints need no caller); a malformed one fails the request immediately.
func CallerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(CallerHeader)
		if header == "" {
			c.Next()
			return
		}

		caller, err := domain.ParseAddress(header)
		if err != nil {
			httputil.HandleBadRequestGin(c, fmt.Errorf("invalid %s header: %w", CallerHeader, err), logger)
			c.Abort()
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

// requireCaller returns the caller identity or fails the request when the
// header was absent. Mutation handlers call it before touching the usecase.
func requireCaller(c *gin.Context, logger *slog.Logger) (domain.Address, bool) {
	caller, ok := GetCaller(c)
	if !ok {
		httputil.HandleBadRequestGin(c, fmt.Errorf("missing %s header", CallerHeader), logger)
		return domain.ZeroAddress, false
	}
	return caller, true
}
