package metadomain

// Campaign representa uma campanha retornada pela listagem de entidades.
// Os orçamentos chegam como strings em centavos e precisam ser divididos
// por 100 na ingestão.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
}

type AdSet struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EffectiveStatus string `json:"effective_status"`
	CampaignID      string `json:"campaign_id"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
}

type Creative struct {
	ID        string `json:"id"`
	VideoID   string `json:"video_id"`
	ImageHash string `json:"image_hash"`
}

type Ad struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	EffectiveStatus string   `json:"effective_status"`
	AdsetID         string   `json:"adset_id"`
	CampaignID      string   `json:"campaign_id"`
	Creative        Creative `json:"creative"`
}
