package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/raditp/dompet/internal/pkg/config"
	"github.com/raditp/dompet/internal/pkg/constants"
	"github.com/raditp/dompet/internal/pkg/database"
	"github.com/raditp/dompet/internal/pkg/health"
	"github.com/raditp/dompet/internal/pkg/logger"
	"github.com/raditp/dompet/internal/pkg/middleware"
	nsqpkg "github.com/raditp/dompet/internal/pkg/nsq"
	"github.com/raditp/dompet/internal/pkg/server"
	"github.com/raditp/dompet/services/wallet/handler"
	httphandler "github.com/raditp/dompet/services/wallet/handler/http"
	"github.com/raditp/dompet/services/wallet/handler/nsqhandler"
	"github.com/raditp/dompet/services/wallet/repository"
	"github.com/raditp/dompet/services/wallet/usecase"
)

const serviceName = "wallet-service"

func main() {
	cfg := config.InitConfig(serviceName)

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithService(serviceName).WithField("environment", cfg.App.Environment).
		Info("Starting wallet service")

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to postgres")
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to redis")
	}

	ledgerRepo := repository.NewLedgerRepository(pgClient.GetDB())
	walletUC := usecase.NewWalletUC(ledgerRepo, redisClient, appLogger.Logger)
	ledgerHandler := nsqhandler.NewLedgerHandler(walletUC, appLogger.Logger)

	// Both terminal topics feed the same handler; failure events have no
	// ledger effect but are observed for reconciliation.
	consumers := make([]*nsqpkg.Consumer, 0, 2)
	for _, topic := range []string{constants.TopicTxnCompleted, constants.TopicTxnFailed} {
		consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
			Topic:        topic,
			Channel:      cfg.NSQ.ConsumerChannel,
			NSQDAddress:  cfg.NSQ.NSQDAddress,
			LookupdAddrs: cfg.NSQ.LookupdAddrs,
			MaxInFlight:  cfg.NSQ.MaxInFlight,
		}, ledgerHandler.HandleCompletionEvent, appLogger.Logger)
		if err != nil {
			appLogger.WithError(err).WithField("topic", topic).Fatal("Failed to start NSQ consumer")
		}
		consumers = append(consumers, consumer)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger.Logger))

	health.RegisterRoutes(e, serviceName)
	walletHandler := httphandler.NewWalletHandler(walletUC)
	handler.RegisterRoutes(e, walletHandler, cfg)

	shutdownManager := server.NewShutdownManager(appLogger.Logger)
	for _, consumer := range consumers {
		c := consumer
		shutdownManager.Register(func(ctx context.Context) error {
			c.Stop()
			return nil
		})
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
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
