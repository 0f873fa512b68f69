package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lenddesk/los/internal/application/usecase"
	"github.com/lenddesk/los/internal/domain/service"
	"github.com/lenddesk/los/internal/infrastructure/adapter"
	"github.com/lenddesk/los/internal/infrastructure/config"
	"github.com/lenddesk/los/internal/infrastructure/messaging"
	pgRepo "github.com/lenddesk/los/internal/infrastructure/persistence/postgres"
	s3store "github.com/lenddesk/los/internal/infrastructure/storage/s3"
	"github.com/lenddesk/los/internal/presentation/rest"
	pkgkafka "github.com/lenddesk/los/pkg/kafka"
	"github.com/lenddesk/los/pkg/observability"
	pkgpostgres "github.com/lenddesk/los/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration. A missing .env file is fine; variables may come
	// from the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})

	logger.Info("starting los", "http_port", cfg.HTTPPort)

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if err := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Infrastructure adapters.
	appRepo := pgRepo.NewLoanApplicationRepo(pool)
	productRepo := pgRepo.NewLoanProductRepo(pool)
	businessRepo := pgRepo.NewBusinessRepo(pool)
	reportRepo := pgRepo.NewCreditReportRepo(pool)
	decisionRepo := pgRepo.NewUnderwritingDecisionRepo(pool)
	underwritingWriter := pgRepo.NewUnderwritingWriteRepo(pool)
	documentRepo := pgRepo.NewDocumentRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	documentStore, err := s3store.NewStore(ctx, cfg.AWS.Region, cfg.AWS.DocumentsBucket)
	if err != nil {
		logger.Error("failed to initialize document store", "error", err)
		os.Exit(1)
	}
	notifier, err := adapter.NewSNSDecisionNotifier(ctx, cfg.AWS.Region, cfg.AWS.DecisionsTopic)
	if err != nil {
		logger.Error("failed to initialize decision notifier", "error", err)
		os.Exit(1)
	}

	bureau := adapter.NewStubCreditBureauClient()
	engine := service.NewUnderwritingEngine()

	// Use cases.
	submitUC := usecase.NewSubmitApplicationUseCase(businessRepo, appRepo, productRepo, publisher)
	getUC := usecase.NewGetApplicationUseCase(appRepo, documentRepo)
	creditCheckUC := usecase.NewPerformCreditCheckUseCase(appRepo, businessRepo, reportRepo, bureau, publisher)
	underwriteUC := usecase.NewRunUnderwritingUseCase(
		appRepo, productRepo, businessRepo, reportRepo, decisionRepo, underwritingWriter,
		engine, publisher, notifier, observability.WithComponent(logger, "underwriting"),
	)
	uploadUC := usecase.NewUploadDocumentUseCase(appRepo, documentRepo, documentStore, publisher)
	fundUC := usecase.NewFundApplicationUseCase(appRepo, publisher)
	catalogUC := usecase.NewProductCatalogUseCase(productRepo)

	// HTTP server.
	appHandler := rest.NewApplicationHandler(
		submitUC, getUC, creditCheckUC, underwriteUC, uploadUC, fundUC,
		observability.WithComponent(logger, "rest"),
	)
	productHandler := rest.NewProductHandler(catalogUC, observability.WithComponent(logger, "rest"))
	engineHTTP := rest.NewEngine(appHandler, productHandler, pool, metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           engineHTTP,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("los stopped")
}
