package ratesdomain

import "fmt"

// ProviderError representa uma resposta recusada pelo provedor
type ProviderError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("rates provider returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("rates provider returned code %d: %s", e.Code, e.Message)
}
