package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultgate/vaultgate/internal/httputil"
	"github.com/vaultgate/vaultgate/internal/registry/domain"
	"github.com/vaultgate/vaultgate/internal/registry/http/dto"
	registryUseCase "github.com/vaultgate/vaultgate/internal/registry/usecase"
	customValidation "github.com/vaultgate/vaultgate/internal/validation"
)

// RegistryHandler handles HTTP requests for the administrator identity.
type RegistryHandler struct {
	registryUseCase registryUseCase.RegistryUseCase
	logger          *slog.Logger
}

// NewRegistryHandler creates a new registry handler.
func NewRegistryHandler(uc registryUseCase.RegistryUseCase, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{
		registryUseCase: uc,
		logger:          logger,
	}
}

// GetHandler returns the current administrative state.
// GET /v1/registry
func (h *RegistryHandler) GetHandler(c *gin.Context) {
	registry, err := h.registryUseCase.Registry(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRegistryToResponse(registry))
}

// TransferAdministratorHandler replaces the administrator.
// POST /v1/registry/administrator - caller from X-Caller-Address.
func (h *RegistryHandler) TransferAdministratorHandler(c *gin.Context) {
	caller, ok := requireCaller(c, h.logger)
	if !ok {
		return
	}

	var req dto.TransferAdministratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Validated by AddressFormat above.
	newAdministrator := domain.MustParseAddress(req.NewAdministrator)

	err := h.registryUseCase.TransferAdministrator(c.Request.Context(), caller, newAdministrator)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	registry, err := h.registryUseCase.Registry(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRegistryToResponse(registry))
}
