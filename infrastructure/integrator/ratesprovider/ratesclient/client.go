package ratesclient

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	ratesdomain "github.com/vfg2006/seller-calc-api/infrastructure/integrator/ratesprovider/domain"
	"github.com/vfg2006/seller-calc-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAllRates(ctx context.Context) (*ratesdomain.AllRatesResponse, error)
}

type RatesClient struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient cria o cliente do provedor. Sem timeout configurado, vale o padrão do transporte.
func NewClient(cfg *config.Config) Client {
	return &RatesClient{
		URL: cfg.ExchangeRates.URL,
		HTTPClient: &http.Client{
			Timeout: cfg.ExchangeRates.HTTPTimeout,
		},
	}
}

func (c *RatesClient) GetAllRates(ctx context.Context) (*ratesdomain.AllRatesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building rates request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting rates")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ratesdomain.ProviderError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading rates response")
	}

	var response ratesdomain.AllRatesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decoding rates response")
	}

	return &response, nil
}
