package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-calc-api/internal/api/handler"
	"github.com/vfg2006/seller-calc-api/internal/api/handler/router"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
	"github.com/vfg2006/seller-calc-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	cache exchanging.Cache,
	refreshService handler.CronJob,
	recorder metrics.Recorder,
	gatherer prometheus.Gatherer,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ExchangeRateRefreshService: refreshService,
	}

	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Server.Address(),
			Handler:           Handler(config, cache, cronServices, recorder, gatherer),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler monta o roteador com a cadeia de middlewares global
func Handler(
	config *config.Config,
	cache exchanging.Cache,
	cronServices handler.CronJobServices,
	recorder metrics.Recorder,
	gatherer prometheus.Gatherer,
) http.Handler {
	rt := router.New(
		router.WithJSONErrors(),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Units(recorder)...),
		router.WithRoutes(handler.Calculators(recorder)...),
		router.WithRoutes(handler.ExchangeRates(cache, recorder)...),
		router.WithRoutes(handler.Content(recorder)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithRoutes(handler.Metrics(gatherer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
