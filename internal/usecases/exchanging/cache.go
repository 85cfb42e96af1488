package exchanging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-calc-api/infrastructure/integrator/ratesprovider"
	"github.com/vfg2006/seller-calc-api/infrastructure/repository"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/pkg/clock"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
)

// Cache entrega sempre um snapshot de cotações: o armazenado enquanto estiver
// fresco, um novo buscado no provedor, o antigo quando a busca falha ou a tabela fixa.
type Cache interface {
	Get(ctx context.Context) *domain.ExchangeRateSnapshot
	Refresh(ctx context.Context) *domain.ExchangeRateSnapshot
	Status(ctx context.Context) domain.ExchangeRateStatus
	Currencies() []string
}

type ExchangeRateCache struct {
	baseCurrency string
	supported    []string
	ttl          time.Duration

	integrator ratesprovider.RatesIntegrator
	repo       repository.ExchangeRateSnapshotRepository
	clock      clock.Clock
	metrics    metrics.Recorder

	// Buscas concorrentes não são agrupadas; o mutex protege apenas o estado da última tentativa
	mu            sync.Mutex
	lastAttemptAt time.Time
	lastError     string
}

func New(
	cfg *config.Config,
	integrator ratesprovider.RatesIntegrator,
	repo repository.ExchangeRateSnapshotRepository,
	clk clock.Clock,
	recorder metrics.Recorder,
) *ExchangeRateCache {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &ExchangeRateCache{
		baseCurrency: cfg.ExchangeRates.BaseCurrency,
		supported:    cfg.ExchangeRates.SupportedCurrencies,
		ttl:          cfg.ExchangeRates.TTL,
		integrator:   integrator,
		repo:         repo,
		clock:        clk,
		metrics:      recorder,
	}
}

func (c *ExchangeRateCache) Get(ctx context.Context) *domain.ExchangeRateSnapshot {
	now := c.clock.Now(ctx)
	current := c.load(ctx)

	if current != nil && c.isFresh(current, now) {
		c.metrics.ExchangeRateLookup(metrics.OutcomeFresh)
		return current
	}

	fetched, err := c.integrator.FetchRates(ctx)
	c.recordAttempt(now, err)

	if err != nil {
		if current != nil {
			logrus.WithFields(logrus.Fields{
				"snapshot_id": current.ID,
				"fetched_at":  current.FetchedAt,
				"error":       err.Error(),
			}).Warn("exchange rates: fetch failed, serving stale snapshot")
			c.metrics.ExchangeRateLookup(metrics.OutcomeStale)
			return current
		}

		logrus.WithField("error", err.Error()).Warn("exchange rates: fetch failed, serving fallback rates")
		c.metrics.ExchangeRateLookup(metrics.OutcomeFallback)
		return FallbackSnapshot(c.baseCurrency, c.supported, now)
	}

	fetched.FetchedAt = c.clock.Now(ctx)
	if err := c.repo.Save(ctx, fetched); err != nil {
		logrus.WithError(err).Warn("exchange rates: failed to store snapshot")
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":   fetched.ID,
		"base_currency": fetched.BaseCurrency,
		"count":         len(fetched.Rates),
	}).Info("exchange rates: fetched fresh rates")
	c.metrics.ExchangeRateLookup(metrics.OutcomeFetched)

	return fetched
}

// Refresh limpa o slot e força uma nova busca
func (c *ExchangeRateCache) Refresh(ctx context.Context) *domain.ExchangeRateSnapshot {
	if err := c.repo.Clear(ctx); err != nil {
		logrus.WithError(err).Warn("exchange rates: failed to clear snapshot")
	}
	return c.Get(ctx)
}

func (c *ExchangeRateCache) Status(ctx context.Context) domain.ExchangeRateStatus {
	now := c.clock.Now(ctx)

	status := domain.ExchangeRateStatus{
		State:        domain.CacheStateEmpty,
		BaseCurrency: c.baseCurrency,
		TTLSeconds:   c.ttl.Seconds(),
	}

	c.mu.Lock()
	if !c.lastAttemptAt.IsZero() {
		lastAttemptAt := c.lastAttemptAt
		status.LastAttemptAt = &lastAttemptAt
	}
	status.LastError = c.lastError
	c.mu.Unlock()

	current := c.load(ctx)
	if current == nil {
		return status
	}

	fetchedAt := current.FetchedAt
	status.FetchedAt = &fetchedAt
	if !current.ProviderUpdatedAt.IsZero() {
		providerUpdatedAt := current.ProviderUpdatedAt
		status.ProviderUpdatedAt = &providerUpdatedAt
	}
	status.SnapshotID = current.ID
	status.AgeSeconds = current.Age(now).Seconds()

	status.State = domain.CacheStateStale
	if c.isFresh(current, now) {
		status.State = domain.CacheStateFresh
	}

	return status
}

// Currencies lista a moeda base seguida das moedas suportadas
func (c *ExchangeRateCache) Currencies() []string {
	out := []string{c.baseCurrency}
	for _, code := range c.supported {
		if code != c.baseCurrency {
			out = append(out, code)
		}
	}
	return out
}

// load trata erro de leitura e snapshot de outra moeda base como slot vazio
func (c *ExchangeRateCache) load(ctx context.Context) *domain.ExchangeRateSnapshot {
	current, err := c.repo.Load(ctx)
	if err != nil {
		logrus.WithError(err).Warn("exchange rates: failed to load snapshot")
		return nil
	}
	if current != nil && current.BaseCurrency != c.baseCurrency {
		return nil
	}
	return current
}

func (c *ExchangeRateCache) isFresh(snapshot *domain.ExchangeRateSnapshot, now time.Time) bool {
	return snapshot.Age(now) < c.ttl
}

func (c *ExchangeRateCache) recordAttempt(at time.Time, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastAttemptAt = at
	c.lastError = ""
	if err != nil {
		c.lastError = err.Error()
	}
}
