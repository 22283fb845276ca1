package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/alerting"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/api"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/scheduler"
	"github.com/vfg2006/ads-sync-api/internal/usecases/account"
	"github.com/vfg2006/ads-sync-api/internal/usecases/mediasync"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	metricRowRepo := repository.NewMetricRowRepository(pgConn, cfg.MetricsSync.InsertBatchSize)
	catalogAssetRepo := repository.NewCatalogAssetRepository(pgConn, cfg.MediaSync.UpsertBatchSize)
	syncStateRepo := repository.NewSyncStateRepository(pgConn)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	notifier := alerting.NewClient(cfg)

	accountService := account.NewService(accountRepo, metaIntegrator, cfg)
	syncService := syncing.NewService(cfg, metaIntegrator, accountRepo, metricRowRepo, notifier)
	mediaSyncService := mediasync.NewService(cfg, metaIntegrator, accountRepo, catalogAssetRepo, metricRowRepo, syncStateRepo)

	// Inicializa os agendadores de sincronização separados
	metricsSyncScheduler := scheduler.NewMetricsSyncService(accountRepo, syncService, cfg)
	mediaSyncScheduler := scheduler.NewMediaSyncService(accountRepo, mediaSyncService, cfg)

	// Inicia os agendadores em background
	if err := metricsSyncScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	if err := mediaSyncScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de catálogo de mídia")
	} else {
		logrus.Info("Agendador de catálogo de mídia iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		syncService,
		mediaSyncService,
		accountService,
		metricsSyncScheduler,
		mediaSyncScheduler,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
