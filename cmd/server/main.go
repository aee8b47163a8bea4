package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/wealthdash/internal/adapter/grpc"
	"github.com/simaogato/wealthdash/internal/adapter/repository/memory"
	"github.com/simaogato/wealthdash/internal/adapter/repository/postgres"
	"github.com/simaogato/wealthdash/internal/config"
	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/logger"
	"github.com/simaogato/wealthdash/internal/usecase/allocation"
	"github.com/simaogato/wealthdash/internal/usecase/holdings"
	"github.com/simaogato/wealthdash/internal/usecase/portfolio"
	"github.com/simaogato/wealthdash/internal/usecase/seeder"
	"github.com/simaogato/wealthdash/internal/usecase/valuation"
)

func main() {
	// Best effort: a missing .env file is fine
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	ctx := context.Background()

	// 1. Initialize Repositories
	assetRepo, historyRepo, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// 2. Initialize Services (Use Cases)
	allocOpts := allocation.DefaultOptions()
	allocOpts.PaletteSize = cfg.PaletteSize
	portfolioService := portfolio.NewPortfolioService(assetRepo, historyRepo, portfolio.NewAssembler(allocOpts))
	valuationService := valuation.NewValuationService(assetRepo, historyRepo)
	assetService := holdings.NewAssetService(assetRepo)

	// 3. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(log),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	grpcAdapter := grpcadapter.NewServer(portfolioService, valuationService, assetService, allocation.DefaultPalette)
	grpcadapter.RegisterPortfolioServiceServer(grpcServer, grpcAdapter)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalw("failed to listen", "addr", cfg.GRPCAddr, "error", err)
	}

	// Start server in a goroutine
	go func() {
		log.Infow("gRPC server listening", "addr", cfg.GRPCAddr, "backend", cfg.DataBackend)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalw("failed to serve gRPC server", "error", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, healthServer, log)
}

// openStore connects the configured backend. The memory backend is seeded with demo holdings.
func openStore(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (domain.AssetRepository, domain.HistoryRepository, func()) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		db, err := postgres.NewDB(cfg.DBConnStr)
		if err != nil {
			log.Fatalw("failed to connect to database", "error", err)
		}

		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := db.EnsureSchema(schemaCtx); err != nil {
			log.Fatalw("failed to ensure schema", "error", err)
		}

		return postgres.NewAssetRepository(db), postgres.NewHistoryRepository(db), func() {
			if err := db.Close(); err != nil {
				log.Warnw("failed to close database", "error", err)
			}
		}
	default:
		store := memory.NewStore()
		if err := seeder.NewDemoSeeder(store.Assets(), store.History()).Seed(ctx, time.Now()); err != nil {
			log.Fatalw("failed to seed demo holdings", "error", err)
		}
		log.Infow("demo holdings seeded", "assets", len(seeder.DemoAssets))
		return store.Assets(), store.History(), func() {}
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, healthServer *health.Server, log *zap.SugaredLogger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Infow("shutting down gracefully", "signal", sig.String())

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")
}
