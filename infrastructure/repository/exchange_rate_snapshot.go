package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/seller-calc-api/internal/domain"
)

// ExchangeRateSnapshotRepository guarda o único snapshot de cotações do cache.
// Load retorna nil sem erro quando o slot está vazio.
type ExchangeRateSnapshotRepository interface {
	Load(ctx context.Context) (*domain.ExchangeRateSnapshot, error)
	Save(ctx context.Context, snapshot *domain.ExchangeRateSnapshot) error
	Clear(ctx context.Context) error
}

type memorySnapshotRepository struct {
	mu       sync.RWMutex
	snapshot *domain.ExchangeRateSnapshot
}

func NewMemorySnapshotRepository() ExchangeRateSnapshotRepository {
	return &memorySnapshotRepository{}
}

// Load devolve o mesmo ponteiro salvo, sem cópia
func (r *memorySnapshotRepository) Load(_ context.Context) (*domain.ExchangeRateSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot, nil
}

func (r *memorySnapshotRepository) Save(_ context.Context, snapshot *domain.ExchangeRateSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
	return nil
}

func (r *memorySnapshotRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = nil
	return nil
}
