package ratesdomain

// Código de sucesso informado no corpo da resposta
const SuccessCode = 200

// Moeda em que o provedor cota todas as taxas
const ProviderBaseCurrency = "USD"

type AllRatesResponse struct {
	Code      int          `json:"code"`
	Msg       string       `json:"msg"`
	Data      AllRatesData `json:"data"`
	RequestID string       `json:"request_id"`
}

type AllRatesData struct {
	Count    int                  `json:"count"`
	Rates    map[string]RateEntry `json:"rates"`
	UpdateAt int64                `json:"update_at"` // epoch em milissegundos
}

type RateEntry struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// IsSuccess indica se o provedor respondeu com código de sucesso e alguma cotação
func (r *AllRatesResponse) IsSuccess() bool {
	return r != nil && r.Code == SuccessCode && len(r.Data.Rates) > 0
}
