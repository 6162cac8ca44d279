package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	gqladapter "github.com/ogurasousui/hr-graphql-clean-arch/internal/adapters/graphql"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/adapters/repository/postgres"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/dashboard"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/departemen"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/karyawan"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/core/vendor"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/platform/config"
	pg "github.com/ogurasousui/hr-graphql-clean-arch/internal/platform/db/postgres"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/platform/server"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		logger = logger.Level(level)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database pool")
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	karyawanRepo := postgres.NewKaryawanRepository(dbPool)
	departemenRepo := postgres.NewDepartemenRepository(dbPool)
	vendorRepo := postgres.NewVendorRepository(dbPool)

	karyawanSvc := karyawan.NewService(karyawanRepo, nil, txManager)
	departemenSvc := departemen.NewService(departemenRepo)
	vendorSvc := vendor.NewService(vendorRepo)
	dashboardSvc := dashboard.NewService()

	resolver := gqladapter.NewResolver(karyawanSvc, departemenSvc, vendorSvc, dashboardSvc)
	schema, err := gqladapter.NewSchema(resolver)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build graphql schema")
	}

	httpServer := server.New(server.Options{
		ListenAddr:      cfg.Server.ListenAddr,
		GraphQLHandler:  gqladapter.NewHandler(schema, logger),
		Logger:          logger,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	if err := httpServer.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}
}
