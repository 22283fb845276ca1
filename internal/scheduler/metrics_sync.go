package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing"
)

// MetricsSyncConfig representa a configuração do agendador de sincronização de métricas
type MetricsSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// MetricsSyncService gerencia o agendamento e execução da sincronização diária
// de métricas de todas as contas ativas
type MetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSyncConfig
	accountRepo         repository.AccountRepository
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetricsSyncService cria uma nova instância do serviço de sincronização de métricas
func NewMetricsSyncService(
	accountRepo repository.AccountRepository,
	syncer syncing.Syncer,
	appConfig *config.Config,
) *MetricsSyncService {
	syncConfig := MetricsSyncConfig{
		CronSchedule:      appConfig.MetricsSync.CronSchedule,
		LookbackDays:      appConfig.MetricsSync.LookbackDays,
		MaxConcurrentJobs: appConfig.MetricsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &MetricsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		accountRepo: accountRepo,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza as métricas de todas as contas ativas dentro da
// janela de lookback configurada
func (s *MetricsSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de métricas para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de métricas")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de métricas")
		return
	}

	window := s.lookbackWindow()
	logrus.WithFields(logrus.Fields{
		"start_date": window.StartDate.Format(time.DateOnly),
		"end_date":   window.EndDate.Format(time.DateOnly),
	}).Info("Janela para sincronização de métricas")

	s.processAccounts(ctx, activeAccounts, window)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
	}).Info("Sincronização de métricas concluída")

	s.lastSyncCompletedAt = time.Now()
}

func (s *MetricsSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de métricas")
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de métricas")

	return activeAccounts, nil
}

// lookbackWindow monta a janela terminando em ontem
func (s *MetricsSyncService) lookbackWindow() domain.DateWindow {
	end := time.Now().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(s.config.LookbackDays - 1))
	return domain.DateWindow{StartDate: start, EndDate: end}
}

// processAccounts sincroniza as contas com concorrência limitada por semáforo
func (s *MetricsSyncService) processAccounts(ctx context.Context, accounts []*domain.AdAccount, window domain.DateWindow) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"external_id":  acc.ExternalID,
				"account_name": acc.Name,
			}).Info("Processando sincronização de métricas para conta")

			result, err := s.syncer.SyncMetrics(ctx, acc.OwnerID, acc.ID, window)
			if err != nil {
				if errors.Is(err, syncing.ErrInsightsUnavailable) {
					logrus.WithFields(logrus.Fields{
						"account_id":  acc.ID,
						"external_id": acc.ExternalID,
					}).Warn("Insights indisponíveis para a conta, mantendo dados existentes")
					return
				}

				logrus.WithFields(logrus.Fields{
					"account_id":  acc.ID,
					"external_id": acc.ExternalID,
					"error":       err.Error(),
				}).Error("Erro ao sincronizar métricas da conta")
				return
			}

			logrus.WithFields(logrus.Fields{
				"account_id": acc.ID,
				"inserted":   result.InsertedCount,
			}).Info("Métricas da conta sincronizadas com sucesso")
		}(account)
	}

	wg.Wait()
}

// TriggerManualSync inicia manualmente uma sincronização de métricas
func (s *MetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas")
	go s.syncAllAccounts(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *MetricsSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
