// Package http provides HTTP handlers for the vault gate checks.
//
// Gate endpoints never fail: every request is answered with 200 and an
// explicit allowed flag. A malformed account denies rather than erroring, so
// a confused caller is indistinguishable from a denied one.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	gateDomain "github.com/vaultgate/vaultgate/internal/gate/domain"
	"github.com/vaultgate/vaultgate/internal/gate/http/dto"
	gateUseCase "github.com/vaultgate/vaultgate/internal/gate/usecase"
	registryDomain "github.com/vaultgate/vaultgate/internal/registry/domain"
)

// GateHandler handles HTTP requests for capability checks.
type GateHandler struct {
	gateUseCase gateUseCase.GateUseCase
	logger      *slog.Logger
}

// NewGateHandler creates a new gate handler.
func NewGateHandler(uc gateUseCase.GateUseCase, logger *slog.Logger) *GateHandler {
	return &GateHandler{
		gateUseCase: uc,
		logger:      logger,
	}
}

// CanSendAssetsHandler reports whether the account may deposit assets.
// GET /v1/gate/can-send-assets/:account
func (h *GateHandler) CanSendAssetsHandler(c *gin.Context) {
	h.check(c, gateDomain.RoleSendAssets, h.gateUseCase.CanSendAssets)
}

// CanReceiveSharesHandler reports whether the account may be credited shares.
// GET /v1/gate/can-receive-shares/:account
func (h *GateHandler) CanReceiveSharesHandler(c *gin.Context) {
	h.check(c, gateDomain.RoleReceiveShares, h.gateUseCase.CanReceiveShares)
}

// CanSendSharesHandler reports whether the account may transfer or redeem shares.
// GET /v1/gate/can-send-shares/:account
func (h *GateHandler) CanSendSharesHandler(c *gin.Context) {
	h.check(c, gateDomain.RoleSendShares, h.gateUseCase.CanSendShares)
}

// CanReceiveAssetsHandler reports whether the account may receive assets.
// GET /v1/gate/can-receive-assets/:account
func (h *GateHandler) CanReceiveAssetsHandler(c *gin.Context) {
	h.check(c, gateDomain.RoleReceiveAssets, h.gateUseCase.CanReceiveAssets)
}

func (h *GateHandler) check(
	c *gin.Context,
	role gateDomain.Role,
	capability func(ctx context.Context, account registryDomain.Address) bool,
) {
	raw := c.Param("account")

	account, err := registryDomain.ParseAddress(raw)
	if err != nil {
		h.logger.Warn("gate received unparseable account, denying",
			slog.String("role", role.String()),
			slog.String("account", raw),
		)
		c.JSON(http.StatusOK, dto.NewCheckResponse(raw, role, false))
		return
	}

	allowed := capability(c.Request.Context(), account)
	c.JSON(http.StatusOK, dto.NewCheckResponse(account.String(), role, allowed))
}
