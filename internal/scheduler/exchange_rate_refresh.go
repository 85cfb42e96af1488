// Package scheduler contém os serviços de agendamento em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging"
)

type ExchangeRateRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ExchangeRateRefreshService mantém o cache de cotações aquecido. O job agendado
// consulta o cache normalmente; a execução manual força uma nova busca.
type ExchangeRateRefreshService struct {
	scheduler           *gocron.Scheduler
	cache               exchanging.Cache
	config              ExchangeRateRefreshConfig
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastFallback        bool
}

func NewExchangeRateRefreshService(cache exchanging.Cache, cfg *config.Config) *ExchangeRateRefreshService {
	refreshConfig := ExchangeRateRefreshConfig{
		CronSchedule: cfg.ExchangeRateRefresh.CronSchedule, // Default: a cada hora cheia
		SyncEnabled:  cfg.ExchangeRateRefresh.Enabled,      // Default: habilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de cotações carregada")

	return &ExchangeRateRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		cache:     cache,
		config:    refreshConfig,
		ctx:       context.Background(),
	}
}

func (s *ExchangeRateRefreshService) Start(ctx context.Context) error {
	// ctx é lido por TriggerManualSync, inclusive com o job desabilitado
	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Atualização de cotações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de cotações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Refresh(ctx, false)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de cotações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de cotações")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh consulta o cache. Com force, descarta o snapshot atual antes.
// Retorna falso quando outra execução já está em andamento.
func (s *ExchangeRateRefreshService) Refresh(ctx context.Context, force bool) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de cotações já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	snapshot := s.cache.Get
	if force {
		snapshot = s.cache.Refresh
	}
	result := snapshot(ctx)

	s.syncMutex.Lock()
	if result != nil {
		s.lastSnapshotID = result.ID
		s.lastFallback = result.Fallback
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"forced":   force,
	}).Info("Atualização de cotações concluída")

	return true
}

// TriggerManualSync força uma atualização em segundo plano
func (s *ExchangeRateRefreshService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de cotações já em andamento, ignorando solicitação manual")
		return false
	}
	ctx := s.ctx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de cotações")
	go s.Refresh(ctx, true)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ExchangeRateRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_snapshot_fallback": s.lastFallback,
	}
}
