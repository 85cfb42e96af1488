package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging/mocks"
	"go.uber.org/mock/gomock"
)

func refreshConfig(enabled bool, cron string) *config.Config {
	return &config.Config{ExchangeRateRefresh: config.ExchangeRateRefresh{CronSchedule: cron, Enabled: enabled}}
}

func TestExchangeRateRefreshService_Start(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{name: "desabilitado não agenda", cfg: refreshConfig(false, "0 * * * *")},
		{name: "cron inválido", cfg: refreshConfig(true, "a cada hora"), wantErr: true},
		{name: "cron válido", cfg: refreshConfig(true, "0 * * * *")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockCache(ctrl)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewExchangeRateRefreshService(cache, tt.cfg)
			err := service.Start(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExchangeRateRefreshService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	service := NewExchangeRateRefreshService(cache, refreshConfig(true, "0 * * * *"))

	tests := []struct {
		name     string
		force    bool
		setup    func()
		validate func(t *testing.T, ran bool)
	}{
		{
			name: "execução agendada consulta o cache",
			setup: func() {
				cache.EXPECT().Get(gomock.Any()).Return(&domain.ExchangeRateSnapshot{ID: "s1"})
			},
			validate: func(t *testing.T, ran bool) {
				assert.True(t, ran)
				assert.Equal(t, "s1", service.GetStatus()["last_snapshot_id"])
				assert.Equal(t, false, service.GetStatus()["last_snapshot_fallback"])
			},
		},
		{
			name:  "execução forçada renova o cache",
			force: true,
			setup: func() {
				cache.EXPECT().Refresh(gomock.Any()).Return(&domain.ExchangeRateSnapshot{ID: "fallback", Fallback: true})
			},
			validate: func(t *testing.T, ran bool) {
				assert.True(t, ran)
				assert.Equal(t, "fallback", service.GetStatus()["last_snapshot_id"])
				assert.Equal(t, true, service.GetStatus()["last_snapshot_fallback"])
			},
		},
		{
			name: "ignora quando já está em andamento",
			setup: func() {
				service.syncRunning = true
			},
			validate: func(t *testing.T, ran bool) {
				assert.False(t, ran)
				service.syncRunning = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			ran := service.Refresh(context.Background(), tt.force)
			tt.validate(t, ran)
		})
	}
}

func TestExchangeRateRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	service := NewExchangeRateRefreshService(cache, refreshConfig(true, "0 * * * *"))

	done := make(chan struct{})
	cache.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(_ context.Context) *domain.ExchangeRateSnapshot {
		defer close(done)
		return &domain.ExchangeRateSnapshot{ID: "s2"}
	})

	require.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("atualização manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "s2", service.GetStatus()["last_snapshot_id"])
}

func TestExchangeRateRefreshService_TriggerManualSyncWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewExchangeRateRefreshService(mocks.NewMockCache(ctrl), refreshConfig(true, "0 * * * *"))
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync())
}

type refreshCtxKey struct{}

func TestExchangeRateRefreshService_TriggerManualSyncUsesStartedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	service := NewExchangeRateRefreshService(cache, refreshConfig(false, "0 * * * *"))

	received := make(chan context.Context, 2)
	cache.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) *domain.ExchangeRateSnapshot {
		received <- ctx
		return &domain.ExchangeRateSnapshot{ID: "s3"}
	}).Times(2)

	waitIdle := func() {
		select {
		case <-received:
		case <-time.After(2 * time.Second):
			t.Fatal("atualização manual não executou")
		}
		assert.Eventually(t, func() bool {
			return service.GetStatus()["sync_running"] == false
		}, time.Second, 10*time.Millisecond)
	}

	started := context.WithValue(context.Background(), refreshCtxKey{}, "iniciado")

	// Start e TriggerManualSync concorrentes não podem disputar o contexto
	startDone := make(chan error, 1)
	go func() { startDone <- service.Start(started) }()
	require.True(t, service.TriggerManualSync())
	require.NoError(t, <-startDone)
	waitIdle()

	require.True(t, service.TriggerManualSync())
	select {
	case ctx := <-received:
		assert.Equal(t, "iniciado", ctx.Value(refreshCtxKey{}))
	case <-time.After(2 * time.Second):
		t.Fatal("atualização manual não executou")
	}
}
