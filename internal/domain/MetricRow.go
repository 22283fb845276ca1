package domain

import (
	"time"
)

// EntityStatus representa o status efetivo de uma entidade da hierarquia
// (campanha, conjunto de anúncios ou anúncio)
type EntityStatus string

const (
	EntityStatusActive  EntityStatus = "ACTIVE"
	EntityStatusPaused  EntityStatus = "PAUSED"
	EntityStatusDeleted EntityStatus = "DELETED"
	EntityStatusUnknown EntityStatus = "UNKNOWN"
)

// MetricRow representa uma linha de métricas por campanha x conjunto x anúncio x dia.
// As linhas nunca são atualizadas individualmente: a cada sincronização a janela
// inteira da conta é apagada e reinserida.
type MetricRow struct {
	ID             int64        `json:"id"`
	OwnerID        string       `json:"owner_id"`
	AccountID      string       `json:"account_id"`
	Date           time.Time    `json:"date"`
	CampaignID     string       `json:"campaign_id"`
	CampaignName   string       `json:"campaign_name"`
	CampaignStatus EntityStatus `json:"campaign_status"`
	AdsetID        string       `json:"adset_id"`
	AdsetName      string       `json:"adset_name"`
	AdsetStatus    EntityStatus `json:"adset_status"`
	AdID           string       `json:"ad_id"`
	AdName         string       `json:"ad_name"`
	AdStatus       EntityStatus `json:"ad_status"`
	Impressions    int          `json:"impressions"`
	Clicks         int          `json:"clicks"`
	Spend          float64      `json:"spend"`
	ResultCount    int          `json:"result_count"`
	ResultType     string       `json:"result_type"`
	ResultValue    *float64     `json:"result_value"`
	DailyBudget    *float64     `json:"daily_budget"`
	LifetimeBudget *float64     `json:"lifetime_budget"`
	MediaType      string       `json:"media_type"`
	MediaHash      string       `json:"media_hash"`
	MediaURL       string       `json:"media_url"`
	CreatedAt      time.Time    `json:"created_at"`
}

// HierarchySource indica como os mapas da hierarquia foram construídos:
// a partir das listagens de entidades (autoritativo) ou reconstruídos a
// partir das próprias linhas de métricas (inferido, quando as listagens
// vieram vazias ou parciais)
type HierarchySource string

const (
	HierarchyFromListings       HierarchySource = "entity_listings"
	HierarchyFromMetricFallback HierarchySource = "metric_fallback"
)
