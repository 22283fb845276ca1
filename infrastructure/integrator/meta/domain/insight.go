package metadomain

import (
	"strconv"
)

// Action é um par tipo-de-ação/valor das listas actions e action_values
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight representa uma linha de métricas por anúncio e dia da API de
// insights. A API devolve todos os números como strings.
type AdInsight struct {
	AccountID    string   `json:"account_id"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdsetID      string   `json:"adset_id"`
	AdsetName    string   `json:"adset_name"`
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

// ImpressionsInt converte o campo de impressões para inteiro, tratando
// string vazia como zero
func (i *AdInsight) ImpressionsInt() int {
	return atoiSafe(i.Impressions)
}

func (i *AdInsight) ClicksInt() int {
	return atoiSafe(i.Clicks)
}

func (i *AdInsight) SpendFloat() float64 {
	if i.Spend == "" {
		return 0
	}
	v, err := strconv.ParseFloat(i.Spend, 64)
	if err != nil {
		return 0
	}
	return v
}

func atoiSafe(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
