package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"markethub/config"
	"markethub/internal/container"
	"markethub/internal/infrastructure/mongodb"
	mcpserver "markethub/internal/interface/mcp"
	"markethub/internal/router"
	"markethub/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	// stdout belongs to the MCP stdio transport; log to stderr
	logger := helpers.NewLogger(os.Stderr, cfg.AppName+"-mcp", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongoDB(db)

	userSvc, productSvc := router.Services()
	srv := mcpserver.New(userSvc, productSvc, config.Version, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatalf("mcp server stopped: %v", err)
	}
	logger.Info("mcp server exited properly")
}
