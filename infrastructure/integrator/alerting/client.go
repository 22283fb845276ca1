package alerting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/internal/config"
)

// Notifier dispara a geração de alertas downstream após uma sincronização
// de métricas bem-sucedida. A chamada é fire-and-forget: falha aqui nunca
// falha a sincronização.
type Notifier interface {
	TriggerAlerts(accountOwnerID string) error
}

type alertClient struct {
	httpClient *http.Client
	webhookURL string
}

func NewClient(cfg *config.Config) Notifier {
	return &alertClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		webhookURL: cfg.Alerting.WebhookURL,
	}
}

type triggerPayload struct {
	AccountOwnerID string `json:"accountOwnerId"`
}

func (c *alertClient) TriggerAlerts(accountOwnerID string) error {
	if c.webhookURL == "" {
		logrus.Debug("alerting: webhook não configurado, ignorando gatilho")
		return nil
	}

	body, err := json.Marshal(triggerPayload{AccountOwnerID: accountOwnerID})
	if err != nil {
		return fmt.Errorf("erro ao serializar payload de alerta: %w", err)
	}

	resp, err := c.httpClient.Post(c.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao disparar gatilho de alertas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gatilho de alertas retornou status %d", resp.StatusCode)
	}

	return nil
}
