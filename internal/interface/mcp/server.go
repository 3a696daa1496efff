// Package mcpserver exposes the user and product services as MCP tools
// over a stdio transport. Tool argument shapes are declared through the
// SDK's JSON schema inference; the gin binding rules are not re-run here.
package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"markethub/internal/application"
)

// serverName identifies this MCP server to clients.
const serverName = "markethub MCP"

// Server hosts the MCP tool server.
type Server struct {
	impl   *mcp.Server
	logger *logrus.Logger
}

// New builds the tool server and registers the full tool catalog against
// the shared services.
func New(userSvc *application.UserService, productSvc *application.ProductService, version string, logger *logrus.Logger) *Server {
	impl := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(impl, CreateUserTool(), CreateUserHandler(userSvc))
	mcp.AddTool(impl, GetAllUsersTool(), GetAllUsersHandler(userSvc))
	mcp.AddTool(impl, GetUserByIDTool(), GetUserByIDHandler(userSvc))
	mcp.AddTool(impl, UpdateUserTool(), UpdateUserHandler(userSvc))
	mcp.AddTool(impl, DeleteUserTool(), DeleteUserHandler(userSvc))

	mcp.AddTool(impl, CreateProductTool(), CreateProductHandler(productSvc))
	mcp.AddTool(impl, GetAllProductsTool(), GetAllProductsHandler(productSvc))
	mcp.AddTool(impl, GetProductByIDTool(), GetProductByIDHandler(productSvc))
	mcp.AddTool(impl, UpdateProductTool(), UpdateProductHandler(productSvc))
	mcp.AddTool(impl, DeleteProductTool(), DeleteProductHandler(productSvc))

	return &Server{impl: impl, logger: logger}
}

// Run serves the tool catalog on stdio and blocks until the client
// disconnects or the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if s.logger != nil {
		s.logger.WithField("server", serverName).Info("mcp server starting on stdio")
	}
	err := s.impl.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
