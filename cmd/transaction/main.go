package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/raditp/dompet/internal/pkg/config"
	"github.com/raditp/dompet/internal/pkg/database"
	"github.com/raditp/dompet/internal/pkg/health"
	"github.com/raditp/dompet/internal/pkg/logger"
	"github.com/raditp/dompet/internal/pkg/middleware"
	nsqpkg "github.com/raditp/dompet/internal/pkg/nsq"
	"github.com/raditp/dompet/internal/pkg/server"
	"github.com/raditp/dompet/services/transaction/gateway"
	"github.com/raditp/dompet/services/transaction/handler"
	httphandler "github.com/raditp/dompet/services/transaction/handler/http"
	"github.com/raditp/dompet/services/transaction/outbox"
	"github.com/raditp/dompet/services/transaction/repository"
	"github.com/raditp/dompet/services/transaction/usecase"
	"github.com/raditp/dompet/services/transaction/verifier"
)

const serviceName = "transaction-service"

func main() {
	cfg := config.InitConfig(serviceName)

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithService(serviceName).WithField("environment", cfg.App.Environment).
		Info("Starting transaction service")

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to postgres")
	}

	producer, err := nsqpkg.NewProducer(cfg.NSQ.NSQDAddress, appLogger.Logger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create NSQ producer")
	}

	txnRepo := repository.NewTransactionRepository(pgClient.GetDB())
	sigVerifier := verifier.NewHMACVerifier(cfg.Webhook.Secret)
	txnUC := usecase.NewTransactionUC(cfg, sigVerifier, txnRepo, appLogger.Logger)
	txnGW := gateway.NewNSQGateway(producer)

	relayCtx, cancelRelay := context.WithCancel(context.Background())
	relay := outbox.NewRelay(cfg.Outbox, txnRepo, txnGW, appLogger.Logger)
	go relay.Run(relayCtx)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger.Logger))

	health.RegisterRoutes(e, serviceName)
	txnHandler := httphandler.NewTransactionHandler(txnUC, cfg.Webhook.SignatureHeader)
	handler.RegisterRoutes(e, txnHandler, cfg)

	shutdownManager := server.NewShutdownManager(appLogger.Logger)
	shutdownManager.Register(func(ctx context.Context) error {
		cancelRelay()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return pgClient.Close()
	})

	srv := server.NewGracefulServer(
		e,
		appLogger.Logger,
		cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Error("Server stopped with error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
