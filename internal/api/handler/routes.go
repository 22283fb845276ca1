package handler

import (
	"net/http"

	"github.com/vfg2006/ads-sync-api/internal/api/handler/router"
	"github.com/vfg2006/ads-sync-api/internal/usecases/account"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mediasync"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/v1/accounts/sync",
			Method:  http.MethodGet,
			Handler: SyncAccounts(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodPut,
			Handler: UpdateAdAccount(service),
		},
	}
}

func Syncs(metricsService syncing.Syncer, mediaService mediasync.MediaSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/sync/metrics",
			Method:  http.MethodPost,
			Handler: SyncAccountMetrics(metricsService),
		},
		{
			Path:    "/v1/accounts/:id/sync/media",
			Method:  http.MethodPost,
			Handler: SyncAccountMedia(mediaService),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
