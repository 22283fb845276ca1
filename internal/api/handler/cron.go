package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/internal/scheduler"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMetrics = "metrics"
	CronJobTypeMedia   = "media"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MetricsSyncService *scheduler.MetricsSyncService
	MediaSyncService   *scheduler.MediaSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMetrics:
			if services.MetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de métricas não disponível", nil)
				return
			}
			services.MetricsSyncService.TriggerManualSync()

		case CronJobTypeMedia:
			if services.MediaSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de catálogo de mídia não disponível", nil)
				return
			}
			services.MediaSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MetricsSyncService != nil {
				services.MetricsSyncService.TriggerManualSync()
			}
			if services.MediaSyncService != nil {
				services.MediaSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: metrics, media, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"metrics": services.MetricsSyncService.GetStatus(),
			"media":   services.MediaSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
