package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mediasync"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

// SyncAccountMetrics dispara a sincronização de métricas de uma conta para a
// janela de datas informada
func SyncAccountMetrics(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAccountMetrics")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		startDateStr := r.URL.Query().Get("start_date")
		endDateStr := r.URL.Query().Get("end_date")
		if startDateStr == "" || endDateStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
			return
		}

		startDate, err := utils.ParseDate(startDateStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(endDateStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		window := domain.DateWindow{StartDate: *startDate, EndDate: *endDate}
		ownerID := r.URL.Query().Get("owner_id")

		result, err := service.SyncMetrics(r.Context(), ownerID, id, window)
		if err != nil {
			logrus.Error("Error syncing account metrics:", err)

			switch {
			case errors.Is(err, syncing.ErrAccountIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

			case errors.Is(err, syncing.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
				})

			case errors.Is(err, syncing.ErrInvalidWindow):
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Janela de datas inválida", nil)

			case errors.Is(err, syncing.ErrInsightsUnavailable):
				apiErrors.WriteError(w, apiErrors.ErrSyncSourceFailure, "A origem de métricas está indisponível, os dados existentes foram mantidos", nil)

			case errors.Is(err, syncing.ErrPersistMetrics):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao persistir as métricas sincronizadas", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar métricas", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SyncAccountMedia dispara a sincronização do catálogo de mídia de uma conta.
// Com force=true o cooldown é ignorado.
func SyncAccountMedia(service mediasync.MediaSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAccountMedia")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		force := r.URL.Query().Get("force") == "true"
		ownerID := r.URL.Query().Get("owner_id")

		result, err := service.SyncMedia(r.Context(), ownerID, id, force)
		if err != nil {
			logrus.Error("Error syncing account media:", err)

			switch {
			case errors.Is(err, mediasync.ErrAccountIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)

			case errors.Is(err, mediasync.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
				})

			case errors.Is(err, mediasync.ErrInventoryFetch):
				apiErrors.WriteError(w, apiErrors.ErrSyncSourceFailure, "Erro ao buscar a biblioteca de mídia na origem", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar catálogo de mídia", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
