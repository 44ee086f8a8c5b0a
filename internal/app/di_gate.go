package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	gateHTTP "github.com/vaultgate/vaultgate/internal/gate/http"
	gateUsecase "github.com/vaultgate/vaultgate/internal/gate/usecase"
)

// GateUseCase returns the gate use case instance, wrapped with metrics.
func (c *Container) GateUseCase() (gateUsecase.GateUseCase, error) {
	c.gateUseCaseInit.Do(func() {
		useCase, err := c.initGateUseCase()
		if err != nil {
			c.initErrors["gateUseCase"] = err
			return
		}
		c.gateUseCase = useCase
	})
	if storedErr, exists := c.initErrors["gateUseCase"]; exists {
		return nil, storedErr
	}
	return c.gateUseCase, nil
}

func (c *Container) initGateUseCase() (gateUsecase.GateUseCase, error) {
	// The gate reads membership through the registry use case so both surfaces
	// share one source of truth.
	registryUseCase, err := c.RegistryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get registry use case for gate use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for gate use case: %w", err)
	}

	useCase := gateUsecase.NewGateUseCase(registryUseCase, c.Logger())

	return gateUsecase.NewGateUseCaseWithMetrics(useCase, businessMetrics), nil
}

// gateRoutes builds the route registrar for the gate check endpoints. Gate
// reads bypass the rate limiter: they sit on the vault's transfer path.
func (c *Container) gateRoutes() (func(router *gin.Engine, mutations *gin.RouterGroup), error) {
	useCase, err := c.GateUseCase()
	if err != nil {
		return nil, err
	}

	handler := gateHTTP.NewGateHandler(useCase, c.Logger())

	return func(router *gin.Engine, mutations *gin.RouterGroup) {
		router.GET("/v1/gate/can-send-assets/:account", handler.CanSendAssetsHandler)
		router.GET("/v1/gate/can-receive-shares/:account", handler.CanReceiveSharesHandler)
		router.GET("/v1/gate/can-send-shares/:account", handler.CanSendSharesHandler)
		router.GET("/v1/gate/can-receive-assets/:account", handler.CanReceiveAssetsHandler)
	}, nil
}
