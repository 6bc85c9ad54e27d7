package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/api"
	"github.com/carson-networks/transfer-server/internal/config"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/status"
	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/notify"
	"github.com/carson-networks/transfer-server/internal/operator"
	"github.com/carson-networks/transfer-server/internal/scheduler"
	"github.com/carson-networks/transfer-server/internal/seed"
	"github.com/carson-networks/transfer-server/internal/service"
	"github.com/carson-networks/transfer-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("transfer-server starting")

	if err := godotenv.Load(); err != nil {
		logrus.Info("main.godotenv no .env file, using environment")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err = logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.SetLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, logger, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	if err = seed.Load(ctx, delegator, time.Now()); err != nil {
		logrus.WithError(err).Fatal("seed.Load")
		return
	}

	var receipts notify.ReceiptSender = notify.NewLogReceiptSender(logger)
	if envConfig.AMQPURL != "" {
		publisher, pubErr := notify.NewAMQPReceiptPublisher(envConfig.AMQPURL, envConfig.AMQPExchange)
		if pubErr != nil {
			logrus.WithError(pubErr).Warn("main.NewAMQPReceiptPublisher falling back to log receipts")
		} else {
			defer publisher.Close()
			receipts = publisher
		}
	}

	svc := service.NewService(store, delegator, service.Options{
		Delays: lifecycle.Delays{
			Transit: envConfig.TransitDelay,
			Convert: envConfig.ConvertDelay,
			Arrival: envConfig.ArrivalDelay,
		},
		UserName: envConfig.UserName,
		ReceiptSettings: notify.ReceiptSettings{
			Email: envConfig.ReceiptEmail,
			SMS:   envConfig.ReceiptSMS,
		},
		Inbox: notify.NewInbox(notify.PushSettings{
			Transactions: envConfig.PushTransactions,
			Security:     envConfig.PushSecurity,
		}, logger),
		ReceiptSender: receipts,
		Logger:        logger,
	})

	progression := scheduler.NewScheduler(svc.Transaction, logger, envConfig.ProgressionSchedule)
	if err = progression.Start(); err != nil {
		logrus.WithError(err).Fatal("scheduler.Start")
		return
	}

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
		Checks:  []status.Check{delegator.Ready},
	}
	httpRest.Serve(ctx)

	<-progression.Stop().Done()
	logrus.Info("transfer-server stopped")
}
