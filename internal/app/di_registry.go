package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	registryHTTP "github.com/vaultgate/vaultgate/internal/registry/http"
	registryRepository "github.com/vaultgate/vaultgate/internal/registry/repository"
	registryUsecase "github.com/vaultgate/vaultgate/internal/registry/usecase"
)

// RegistryRepository returns the administrator repository instance.
func (c *Container) RegistryRepository() (registryUsecase.RegistryRepository, error) {
	c.registryRepoInit.Do(func() {
		repo, err := c.initRegistryRepository()
		if err != nil {
			c.initErrors["registryRepo"] = err
			return
		}
		c.registryRepo = repo
	})
	if storedErr, exists := c.initErrors["registryRepo"]; exists {
		return nil, storedErr
	}
	return c.registryRepo, nil
}

// MembershipRepository returns the membership repository instance.
func (c *Container) MembershipRepository() (registryUsecase.MembershipRepository, error) {
	c.membershipRepoInit.Do(func() {
		repo, err := c.initMembershipRepository()
		if err != nil {
			c.initErrors["membershipRepo"] = err
			return
		}
		c.membershipRepo = repo
	})
	if storedErr, exists := c.initErrors["membershipRepo"]; exists {
		return nil, storedErr
	}
	return c.membershipRepo, nil
}

// RegistryUseCase returns the registry use case instance, wrapped with metrics.
func (c *Container) RegistryUseCase() (registryUsecase.RegistryUseCase, error) {
	c.registryUseCaseInit.Do(func() {
		useCase, err := c.initRegistryUseCase()
		if err != nil {
			c.initErrors["registryUseCase"] = err
			return
		}
		c.registryUseCase = useCase
	})
	if storedErr, exists := c.initErrors["registryUseCase"]; exists {
		return nil, storedErr
	}
	return c.registryUseCase, nil
}

func (c *Container) initRegistryRepository() (registryUsecase.RegistryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for registry repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return registryRepository.NewMySQLRegistryRepository(db), nil
	case "postgres":
		return registryRepository.NewPostgreSQLRegistryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initMembershipRepository() (registryUsecase.MembershipRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for membership repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return registryRepository.NewMySQLMembershipRepository(db), nil
	case "postgres":
		return registryRepository.NewPostgreSQLMembershipRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initRegistryUseCase() (registryUsecase.RegistryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for registry use case: %w", err)
	}

	registryRepo, err := c.RegistryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get registry repository for registry use case: %w", err)
	}

	membershipRepo, err := c.MembershipRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get membership repository for registry use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for registry use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for registry use case: %w", err)
	}

	useCase := registryUsecase.NewRegistryUseCase(
		txManager,
		registryRepo,
		membershipRepo,
		outboxRepo,
		c.Logger(),
	)

	return registryUsecase.NewRegistryUseCaseWithMetrics(useCase, businessMetrics), nil
}

// registryRoutes builds the route registrar for registry endpoints. Reads go
// on the plain router; mutations go on the rate-limited group and require the
// caller header.
func (c *Container) registryRoutes() (func(router *gin.Engine, mutations *gin.RouterGroup), error) {
	useCase, err := c.RegistryUseCase()
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	registryHandler := registryHTTP.NewRegistryHandler(useCase, logger)
	membershipHandler := registryHTTP.NewMembershipHandler(useCase, logger)
	callerMiddleware := registryHTTP.CallerMiddleware(logger)

	return func(router *gin.Engine, mutations *gin.RouterGroup) {
		router.GET("/v1/registry", registryHandler.GetHandler)
		router.GET("/v1/registry/memberships", membershipHandler.ListHandler)
		router.GET("/v1/registry/memberships/:account", membershipHandler.GetHandler)

		mutations.PUT("/v1/registry/memberships/:account", callerMiddleware, membershipHandler.SetHandler)
		mutations.POST("/v1/registry/administrator", callerMiddleware, registryHandler.TransferAdministratorHandler)
	}, nil
}
