package syncing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	repomocks "github.com/vfg2006/ads-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func testWindow() domain.DateWindow {
	return domain.DateWindow{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}
}

func testAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "123",
		Name:       "Conta Teste",
		OwnerID:    "owner-1",
		Status:     domain.AdAccountStatusActive,
	}
}

func newTestService(
	meta MetaFetcher,
	accountRepo *repomocks.MockAccountRepository,
	metricRowRepo *repomocks.MockMetricRowRepository,
	notifier Notifier,
) *Service {
	return &Service{
		cfg:           &config.Config{},
		meta:          meta,
		accountRepo:   accountRepo,
		metricRowRepo: metricRowRepo,
		notifier:      notifier,
	}
}

func TestSyncMetrics_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(
		mocks.NewMockMetaFetcher(ctrl),
		repomocks.NewMockAccountRepository(ctrl),
		repomocks.NewMockMetricRowRepository(ctrl),
		mocks.NewMockNotifier(ctrl),
	)

	t.Run("Conta vazia", func(t *testing.T) {
		_, err := service.SyncMetrics(context.Background(), "owner-1", "", testWindow())
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Janela invertida", func(t *testing.T) {
		window := domain.DateWindow{
			StartDate: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		_, err := service.SyncMetrics(context.Background(), "owner-1", "ACC001", window)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestSyncMetrics_InsightsUnavailableIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaFetcher(ctrl)
	mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
	mockMetricRowRepo := repomocks.NewMockMetricRowRepository(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	mockAccountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)

	mockMeta.EXPECT().ListCampaigns("123").Return(nil, nil)
	mockMeta.EXPECT().ListAdSets("123").Return(nil, nil)
	mockMeta.EXPECT().ListAds("123").Return(nil, nil)
	mockMeta.EXPECT().ListAdInsights("123", gomock.Any()).Return(nil, errors.New("timeout na primeira página"))

	service := newTestService(mockMeta, mockAccountRepo, mockMetricRowRepo, mockNotifier)

	// Nada pode ser gravado nem notificado quando a origem de insights falha
	_, err := service.SyncMetrics(context.Background(), "owner-1", "ACC001", testWindow())
	assert.ErrorIs(t, err, ErrInsightsUnavailable)
}

func TestSyncMetrics_PersistsWindowWithBothSpellings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaFetcher(ctrl)
	mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
	mockMetricRowRepo := repomocks.NewMockMetricRowRepository(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	mockAccountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)

	campaigns := []metadomain.Campaign{{ID: "c1", Name: "Campanha", EffectiveStatus: "ACTIVE"}}
	adsets := []metadomain.AdSet{{ID: "as1", Name: "Conjunto", EffectiveStatus: "ACTIVE", CampaignID: "c1"}}
	ads := []metadomain.Ad{
		{ID: "ad1", Name: "Com atividade", EffectiveStatus: "ACTIVE", AdsetID: "as1", CampaignID: "c1"},
		{ID: "ad2", Name: "Sem atividade", EffectiveStatus: "PAUSED", AdsetID: "as1", CampaignID: "c1"},
	}
	insights := []metadomain.AdInsight{
		{
			CampaignID: "c1", CampaignName: "Campanha",
			AdsetID: "as1", AdsetName: "Conjunto",
			AdID: "ad1", AdName: "Com atividade",
			DateStart: "2024-01-03", Impressions: "100", Clicks: "7", Spend: "35.50",
		},
	}

	mockMeta.EXPECT().ListCampaigns("123").Return(campaigns, nil)
	mockMeta.EXPECT().ListAdSets("123").Return(adsets, nil)
	mockMeta.EXPECT().ListAds("123").Return(ads, nil)
	mockMeta.EXPECT().ListAdInsights("123", gomock.Any()).Return(insights, nil)

	var persistedIDs []string
	var persistedRows []*domain.MetricRow
	mockMetricRowRepo.EXPECT().
		ReplaceWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, accountIDs []string, _ domain.DateWindow, rows []*domain.MetricRow) (int, error) {
			persistedIDs = accountIDs
			persistedRows = rows
			return len(rows), nil
		})

	alertFired := make(chan struct{})
	mockNotifier.EXPECT().TriggerAlerts("owner-1").DoAndReturn(func(string) error {
		close(alertFired)
		return nil
	})

	service := newTestService(mockMeta, mockAccountRepo, mockMetricRowRepo, mockNotifier)

	result, err := service.SyncMetrics(context.Background(), "owner-1", "ACC001", testWindow())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.InsertedCount)

	// O delete da janela cobre as duas grafias históricas do id da conta
	assert.Equal(t, []string{"123", "act_123"}, persistedIDs)

	// Uma linha real mais a linha fabricada de atividade zero para ad2
	assert.Len(t, persistedRows, 2)

	var fabricated *domain.MetricRow
	for _, row := range persistedRows {
		if row.AdID == "ad2" {
			fabricated = row
		}
	}

	assert.NotNil(t, fabricated, "anúncio sem métricas na janela deve gerar linha de atividade zero")
	assert.Equal(t, testWindow().StartDate, fabricated.Date)
	assert.Zero(t, fabricated.Impressions)
	assert.Zero(t, fabricated.Clicks)
	assert.Zero(t, fabricated.Spend)
	assert.Equal(t, domain.EntityStatusPaused, fabricated.AdStatus)
	assert.Equal(t, "Sem atividade", fabricated.AdName)

	select {
	case <-alertFired:
	case <-time.After(2 * time.Second):
		t.Fatal("gatilho de alertas não foi disparado")
	}
}

// Falha do gatilho de alertas nunca derruba uma sincronização bem-sucedida
func TestSyncMetrics_AlertFailureIsNotPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMeta := mocks.NewMockMetaFetcher(ctrl)
	mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
	mockMetricRowRepo := repomocks.NewMockMetricRowRepository(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	mockAccountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)

	mockMeta.EXPECT().ListCampaigns("123").Return(nil, errors.New("indisponível"))
	mockMeta.EXPECT().ListAdSets("123").Return(nil, errors.New("indisponível"))
	mockMeta.EXPECT().ListAds("123").Return(nil, errors.New("indisponível"))
	mockMeta.EXPECT().ListAdInsights("123", gomock.Any()).Return([]metadomain.AdInsight{
		{
			CampaignID: "c1", AdsetID: "as1", AdID: "ad1",
			DateStart: "2024-01-02", Impressions: "10",
		},
	}, nil)

	mockMetricRowRepo.EXPECT().
		ReplaceWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1, nil)

	alertFired := make(chan struct{})
	mockNotifier.EXPECT().TriggerAlerts("owner-1").DoAndReturn(func(string) error {
		close(alertFired)
		return errors.New("webhook fora do ar")
	})

	service := newTestService(mockMeta, mockAccountRepo, mockMetricRowRepo, mockNotifier)

	result, err := service.SyncMetrics(context.Background(), "", "ACC001", testWindow())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.InsertedCount)

	select {
	case <-alertFired:
	case <-time.After(2 * time.Second):
		t.Fatal("gatilho de alertas não foi disparado")
	}
}

func TestSyncMetrics_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
	mockAccountRepo.EXPECT().GetAccountByID("NOPE").Return(nil, nil)

	service := newTestService(
		mocks.NewMockMetaFetcher(ctrl),
		mockAccountRepo,
		repomocks.NewMockMetricRowRepository(ctrl),
		mocks.NewMockNotifier(ctrl),
	)

	_, err := service.SyncMetrics(context.Background(), "owner-1", "NOPE", testWindow())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
