package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/account"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/notification"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/quote"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/recipient"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/status"
	"github.com/carson-networks/transfer-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Checks  []status.Check
}

// Router builds the mux serving /status and the versioned API.
func (r *Rest) Router() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Checks...)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Transfer Server", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	svc := r.Service
	account.NewCreateAccountHandler(svc.Account).Register(api)
	account.NewListAccountsHandler(svc.Account).Register(api)
	account.NewGetBalanceHandler(svc.Account).Register(api)
	account.NewCreditAccountHandler(svc.Account).Register(api)
	account.NewDebitAccountHandler(svc.Account).Register(api)
	account.NewPayHandler(svc.Account).Register(api)
	account.NewUpdateNicknameHandler(svc.Account).Register(api)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewCreateWireHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewLifecycleHandler(svc.Transaction).Register(api)

	recipient.NewHandler(svc.Recipient).Register(api)
	notification.NewHandler(svc.Notifications).Register(api)
	quote.NewHandler().Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
