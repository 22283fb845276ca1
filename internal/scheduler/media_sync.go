package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mediasync"
)

// MediaSyncConfig representa a configuração do agendador de catálogo de mídia
type MediaSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MediaSyncService agenda a sincronização diária do catálogo de mídia. As
// contas são processadas em sequência: o throttle já é por conta e a origem
// penaliza rajadas na biblioteca de mídia.
type MediaSyncService struct {
	scheduler           *gocron.Scheduler
	config              MediaSyncConfig
	accountRepo         repository.AccountRepository
	mediaSyncer         mediasync.MediaSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMediaSyncService cria uma nova instância do serviço de sincronização de mídia
func NewMediaSyncService(
	accountRepo repository.AccountRepository,
	mediaSyncer mediasync.MediaSyncer,
	appConfig *config.Config,
) *MediaSyncService {
	syncConfig := MediaSyncConfig{
		CronSchedule: appConfig.MediaSync.CronSchedule,
		SyncEnabled:  appConfig.MediaSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de catálogo de mídia carregada")

	return &MediaSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		accountRepo: accountRepo,
		mediaSyncer: mediaSyncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MediaSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de catálogo de mídia desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de catálogo de mídia")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de catálogo de mídia: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de catálogo de mídia")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza o catálogo de mídia de todas as contas ativas.
// O cooldown por conta garante que execuções frequentes não gerem tráfego
// extra: dentro do cooldown a sincronização é pulada sem chamadas de rede.
func (s *MediaSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de catálogo de mídia já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de catálogo de mídia para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de catálogo de mídia")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de catálogo de mídia")
		return
	}

	synced, skipped := 0, 0
	for _, account := range activeAccounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		result, err := s.mediaSyncer.SyncMedia(ctx, account.OwnerID, account.ID, false)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"external_id": account.ExternalID,
				"error":       err.Error(),
			}).Error("Erro ao sincronizar catálogo de mídia da conta")
			continue
		}

		if result.Skipped {
			skipped++
			continue
		}

		synced++
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"new_assets": result.NewAssetCount,
			"resolved":   result.ResolvedDerivativeCount,
		}).Info("Catálogo de mídia da conta sincronizado com sucesso")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"synced":   synced,
		"skipped":  skipped,
	}).Info("Sincronização de catálogo de mídia concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de catálogo de mídia
func (s *MediaSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de catálogo de mídia já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de catálogo de mídia")
	go s.syncAllAccounts(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *MediaSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
