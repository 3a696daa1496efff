package router

import (
	"markethub/internal/application"
	"markethub/internal/container"
	"markethub/internal/infrastructure/mongodb"
	handlers "markethub/internal/interface/http"
	"markethub/internal/router/modules"
)

// Services builds the user and product services on top of the container's
// mongo handle. The MCP entrypoint reuses this wiring.
func Services() (*application.UserService, *application.ProductService) {
	db := container.GetMongoDB()
	logger := container.GetLogger()

	userSvc := application.NewUserService(mongodb.NewUserRepository(db), logger)
	productSvc := application.NewProductService(mongodb.NewProductRepository(db), logger)
	return userSvc, productSvc
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userSvc, productSvc := Services()
	logger := container.GetLogger()

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, logger)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
