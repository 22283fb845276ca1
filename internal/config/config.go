package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Alerting    Alerting    `mapstructure:",squash"`
	MetricsSync MetricsSync `mapstructure:",squash"`
	MediaSync   MediaSync   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL               string    `mapstructure:"meta_base_url"`
	URL                   string    `mapstructure:"-"`
	Version               string    `mapstructure:"meta_version"`
	AccessToken           string    `mapstructure:"meta_access_token"`
	AppID                 string    `mapstructure:"meta_app_id"`
	BusinessID            string    `mapstructure:"meta_business_id"`
	AppSecret             string    `mapstructure:"meta_app_secret"`
	LongLivedToken        string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt        time.Time `mapstructure:"-"`
	RequestTimeoutSeconds int       `mapstructure:"meta_request_timeout_seconds"`
	InsightsPageCeiling   int       `mapstructure:"meta_insights_page_ceiling"`
	EntityPageCeiling     int       `mapstructure:"meta_entity_page_ceiling"`
}

type Alerting struct {
	WebhookURL string `mapstructure:"alerting_webhook_url"`
}

type MetricsSync struct {
	CronSchedule      string `mapstructure:"metrics_sync_cron"`
	LookbackDays      int    `mapstructure:"metrics_sync_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"metrics_sync_max_concurrent_jobs"`
	InsertBatchSize   int    `mapstructure:"metrics_sync_insert_batch_size"`
	Enabled           bool   `mapstructure:"metrics_sync_enabled"`
}

type MediaSync struct {
	CronSchedule       string `mapstructure:"media_sync_cron"`
	CooldownHours      int    `mapstructure:"media_sync_cooldown_hours"`
	DetailBatchSize    int    `mapstructure:"media_sync_detail_batch_size"`
	BatchDelayMillis   int    `mapstructure:"media_sync_batch_delay_millis"`
	UpsertBatchSize    int    `mapstructure:"media_sync_upsert_batch_size"`
	DurationToleranceS int    `mapstructure:"media_sync_duration_tolerance_seconds"`
	Enabled            bool   `mapstructure:"media_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_BUSINESS_ID", "your_business_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 20)
	viper.SetDefault("META_INSIGHTS_PAGE_CEILING", 15) // páginas de insights são pesadas
	viper.SetDefault("META_ENTITY_PAGE_CEILING", 50)

	viper.SetDefault("ALERTING_WEBHOOK_URL", "")

	// Defaults para sincronização de métricas
	viper.SetDefault("METRICS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("METRICS_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("METRICS_SYNC_INSERT_BATCH_SIZE", 1000)
	viper.SetDefault("METRICS_SYNC_ENABLED", false)

	// Defaults para sincronização de mídia
	viper.SetDefault("MEDIA_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("MEDIA_SYNC_COOLDOWN_HOURS", 24)
	viper.SetDefault("MEDIA_SYNC_DETAIL_BATCH_SIZE", 50)
	viper.SetDefault("MEDIA_SYNC_BATCH_DELAY_MILLIS", 500)
	viper.SetDefault("MEDIA_SYNC_UPSERT_BATCH_SIZE", 100)
	viper.SetDefault("MEDIA_SYNC_DURATION_TOLERANCE_SECONDS", 1)
	viper.SetDefault("MEDIA_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
