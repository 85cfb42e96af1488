// Package app monta as dependências compartilhadas pela API e pela CLI
package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-calc-api/infrastructure/database/redis"
	"github.com/vfg2006/seller-calc-api/infrastructure/integrator/ratesprovider"
	"github.com/vfg2006/seller-calc-api/infrastructure/integrator/ratesprovider/ratesclient"
	"github.com/vfg2006/seller-calc-api/infrastructure/repository"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging"
	"github.com/vfg2006/seller-calc-api/pkg/clock"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
)

type Dependencies struct {
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Redis    *redis.Connection
	Cache    *exchanging.ExchangeRateCache
}

// Build cria o cache de cotações. Sem REDIS_ADDR, ou com o Redis fora do ar,
// o snapshot fica apenas em memória.
func Build(ctx context.Context, cfg *config.Config) *Dependencies {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := &Dependencies{
		Registry: registry,
		Metrics:  metrics.New(registry),
	}

	snapshotRepo := repository.NewMemorySnapshotRepository()
	if cfg.Redis.Addr != "" {
		conn, err := redis.NewConnection(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).WithField("addr", cfg.Redis.Addr).
				Warn("Redis indisponível, usando snapshot de cotações em memória")
		} else {
			logrus.Info("Conexão com Redis estabelecida com sucesso")
			deps.Redis = conn
			snapshotRepo = repository.NewRedisSnapshotRepository(conn.Client, cfg.Redis.SnapshotKey)
		}
	}

	ratesClient := ratesclient.NewClient(cfg)
	ratesIntegrator := ratesprovider.New(cfg, ratesClient)

	deps.Cache = exchanging.New(cfg, ratesIntegrator, snapshotRepo, clock.NewSystemClock(), deps.Metrics)

	return deps
}

func (d *Dependencies) Close() {
	if d.Redis == nil {
		return
	}

	if err := d.Redis.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
	}
}
