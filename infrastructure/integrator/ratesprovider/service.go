package ratesprovider

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ratesdomain "github.com/vfg2006/seller-calc-api/infrastructure/integrator/ratesprovider/domain"
	"github.com/vfg2006/seller-calc-api/infrastructure/integrator/ratesprovider/ratesclient"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/pkg/utils"
)

var (
	ErrEmptyRates      = errors.New("rates provider returned no rates")
	ErrMissingBaseRate = errors.New("rates provider has no rate for the base currency")
)

type RatesIntegrator interface {
	FetchRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error)
}

type RatesService struct {
	cfg    *config.Config
	Client ratesclient.Client
}

func New(cfg *config.Config, client ratesclient.Client) RatesIntegrator {
	return &RatesService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchRates busca as cotações do provedor e as normaliza para a moeda base configurada.
// FetchedAt fica a cargo de quem armazena o snapshot.
func (s *RatesService) FetchRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	resp, err := s.Client.GetAllRates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching exchange rates")
	}

	if resp.Code != ratesdomain.SuccessCode {
		return nil, &ratesdomain.ProviderError{Code: resp.Code, Message: resp.Msg}
	}
	if !resp.IsSuccess() {
		return nil, ErrEmptyRates
	}

	base := s.cfg.ExchangeRates.BaseCurrency
	providerRates, names := FactoryProviderRates(resp)

	// Sem a cotação da moeda base o snapshot é rejeitado e o cache serve o valor
	// antigo ou o fallback. Não assumimos uma taxa fixa USD→CNY para normalizar.
	rates, ok := domain.CrossNormalize(providerRates, base, s.cfg.ExchangeRates.SupportedCurrencies)
	if !ok {
		return nil, errors.Wrapf(ErrMissingBaseRate, "base %s", base)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generating snapshot id")
	}

	snapshot := &domain.ExchangeRateSnapshot{
		ID:           id,
		BaseCurrency: base,
		Rates:        rates,
		Names:        make(map[string]string, len(rates)+1),
	}
	for code := range rates {
		if name, exists := names[code]; exists {
			snapshot.Names[code] = name
		}
	}
	if name, exists := names[base]; exists {
		snapshot.Names[base] = name
	}
	if resp.Data.UpdateAt > 0 {
		snapshot.ProviderUpdatedAt = time.UnixMilli(resp.Data.UpdateAt).UTC()
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":   snapshot.ID,
		"base_currency": base,
		"count":         len(rates),
		"request_id":    resp.RequestID,
	}).Debug("rates: successfully fetched provider rates")

	return snapshot, nil
}

// FactoryProviderRates extrai as cotações positivas do payload. A moeda do provedor
// vale 1 mesmo quando não aparece na lista.
func FactoryProviderRates(resp *ratesdomain.AllRatesResponse) (map[string]float64, map[string]string) {
	rates := make(map[string]float64, len(resp.Data.Rates)+1)
	names := make(map[string]string, len(resp.Data.Rates))

	for code, entry := range resp.Data.Rates {
		if entry.Rate <= 0 || !utils.IsFinite(entry.Rate) {
			continue
		}
		rates[code] = entry.Rate
		if entry.Name != "" {
			names[code] = entry.Name
		}
	}

	if _, exists := rates[ratesdomain.ProviderBaseCurrency]; !exists {
		rates[ratesdomain.ProviderBaseCurrency] = 1
	}

	return rates, names
}
