package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/ads-sync-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/ads-sync-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMetricsSyncService_lookbackWindow(t *testing.T) {
	log.SetupTestLogger()

	service := &MetricsSyncService{
		config: MetricsSyncConfig{LookbackDays: 7},
	}

	window := service.lookbackWindow()

	// A janela termina em ontem e cobre exatamente LookbackDays dias
	assert.Equal(t, time.Now().AddDate(0, 0, -1).Format(time.DateOnly), window.EndDate.Format(time.DateOnly))
	assert.Equal(t, window.EndDate.Format(time.DateOnly), window.StartDate.AddDate(0, 0, 6).Format(time.DateOnly))
	assert.NoError(t, window.Validate())
}

func TestMetricsSyncService_syncAllAccounts(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockSyncer := syncmocks.NewMockSyncer(ctrl)

	service := &MetricsSyncService{
		config: MetricsSyncConfig{
			LookbackDays:      7,
			MaxConcurrentJobs: 2,
			SyncEnabled:       true,
		},
		accountRepo: mockAccountRepo,
		syncer:      mockSyncer,
	}

	accounts := []*domain.AdAccount{
		{ID: "ACC001", ExternalID: "111", Name: "Loja A", OwnerID: "owner-1", Status: domain.AdAccountStatusActive},
		{ID: "ACC002", ExternalID: "222", Name: "Loja B", OwnerID: "owner-2", Status: domain.AdAccountStatusActive},
		// Conta sem external_id é pulada antes de chegar ao sincronizador
		{ID: "ACC003", ExternalID: "", Name: "Loja C", Status: domain.AdAccountStatusActive},
	}

	mockAccountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return(accounts, nil)

	mockSyncer.EXPECT().
		SyncMetrics(gomock.Any(), "owner-1", "ACC001", gomock.Any()).
		Return(&domain.SyncMetricsResult{InsertedCount: 10}, nil)

	// Insights indisponíveis numa conta não interrompem as demais
	mockSyncer.EXPECT().
		SyncMetrics(gomock.Any(), "owner-2", "ACC002", gomock.Any()).
		Return(nil, syncing.ErrInsightsUnavailable)

	service.syncAllAccounts(context.Background())

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestMetricsSyncService_syncAllAccounts_RepoError(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockSyncer := syncmocks.NewMockSyncer(ctrl)

	service := &MetricsSyncService{
		config:      MetricsSyncConfig{LookbackDays: 7, MaxConcurrentJobs: 2},
		accountRepo: mockAccountRepo,
		syncer:      mockSyncer,
	}

	mockAccountRepo.EXPECT().
		ListAccounts(gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	// Nenhuma sincronização é disparada quando a listagem de contas falha
	service.syncAllAccounts(context.Background())

	assert.False(t, service.syncRunning)
}

func TestMetricsSyncService_GetStatus(t *testing.T) {
	log.SetupTestLogger()

	service := &MetricsSyncService{
		config: MetricsSyncConfig{
			CronSchedule:      "0 3 * * *",
			LookbackDays:      7,
			MaxConcurrentJobs: 3,
			SyncEnabled:       true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
}
