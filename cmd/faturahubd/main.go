package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	faturaspb "github.com/lucasveras/faturahub/gen/proto/faturas/v1"
	"github.com/lucasveras/faturahub/internal/common"
	"github.com/lucasveras/faturahub/internal/export"
	"github.com/lucasveras/faturahub/internal/extract"
	"github.com/lucasveras/faturahub/internal/reconcile"
	repo "github.com/lucasveras/faturahub/internal/repository"
	svc "github.com/lucasveras/faturahub/internal/server"
	"github.com/lucasveras/faturahub/internal/textacq"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(svc.UnaryRequestID(logger)),
	)

	customersRepo := repo.NewCustomerRepository(entc, logger)
	unitsRepo := repo.NewUnitRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	tasksRepo := repo.NewTaskRepository(entc, logger)

	acquirer := textacq.NewAcquirer(textacq.Config{
		Language:    cfg.Acquisition.Language,
		DPI:         cfg.Acquisition.DPI,
		MaxPages:    cfg.Acquisition.MaxPages,
		TessdataDir: cfg.Acquisition.TessdataDir,
	}, logger)
	engine := extract.NewEngine(acquirer, logger)
	workflow := reconcile.NewWorkflow(entc, unitsRepo, tasksRepo, engine, cfg.Acquisition.Timeout, logger)

	customersServer := svc.NewCustomersServer(customersRepo, unitsRepo, logger)
	faturaspb.RegisterCustomersServiceServer(grpcServer, customersServer)

	ingestionServer := svc.NewIngestionServer(engine, workflow, customersRepo, logger)
	faturaspb.RegisterIngestionServiceServer(grpcServer, ingestionServer)

	invoicesServer := svc.NewInvoicesServer(invoicesRepo, unitsRepo, tasksRepo, logger)
	faturaspb.RegisterInvoicesServiceServer(grpcServer, invoicesServer)

	exportService := export.NewService(invoicesRepo, unitsRepo, logger)
	exportServer := svc.NewExportServer(exportService, logger)
	faturaspb.RegisterExportServiceServer(grpcServer, exportServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("faturahub listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
