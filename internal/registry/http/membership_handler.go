package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultgate/vaultgate/internal/httputil"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
	"github.com/vaultgate/vaultgate/internal/registry/http/dto"
	registryUseCase "github.com/vaultgate/vaultgate/internal/registry/usecase"
	customValidation "github.com/vaultgate/vaultgate/internal/validation"
)

// MembershipHandler handles HTTP requests for allowlist memberships.
type MembershipHandler struct {
	registryUseCase registryUseCase.RegistryUseCase
	logger          *slog.Logger
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(uc registryUseCase.RegistryUseCase, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		registryUseCase: uc,
		logger:          logger,
	}
}

// ListHandler returns a page of explicit membership entries.
// GET /v1/registry/memberships?offset=N&limit=M
func (h *MembershipHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	memberships, err := h.registryUseCase.ListMemberships(c.Request.Context(), limit, offset)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMembershipsToListResponse(memberships, offset, limit))
}

// GetHandler returns the allow/deny state for one account. Accounts never
// explicitly set report allowed=false.
// GET /v1/registry/memberships/:account
func (h *MembershipHandler) GetHandler(c *gin.Context) {
	account, ok := h.parseAccount(c)
	if !ok {
		return
	}

	allowed, err := h.registryUseCase.IsMember(c.Request.Context(), account)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MembershipResponse{
		Account: account.String(),
		Allowed: allowed,
	})
}

// SetHandler sets the allow/deny state for one account.
// PUT /v1/registry/memberships/:account - caller from X-Caller-Address.
func (h *MembershipHandler) SetHandler(c *gin.Context) {
	caller, ok := requireCaller(c, h.logger)
	if !ok {
		return
	}

	account, ok := h.parseAccount(c)
	if !ok {
		return
	}

	var req dto.SetMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.registryUseCase.SetMembership(c.Request.Context(), caller, account, *req.Allowed)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MembershipResponse{
		Account: account.String(),
		Allowed: *req.Allowed,
	})
}

func (h *MembershipHandler) parseAccount(c *gin.Context) (domain.Address, bool) {
	account, err := domain.ParseAddress(c.Param("account"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid account: %w", err), h.logger)
		return domain.ZeroAddress, false
	}
	return account, true
}
