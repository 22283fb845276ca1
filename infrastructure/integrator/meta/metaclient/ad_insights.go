package metaclient

import (
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// ListAdInsights busca a série temporal de métricas por anúncio e dia para a
// janela informada. Usa o teto de páginas de insights, menor que o de
// listagens de entidades porque cada página é bem mais pesada.
func (c *MetaClient) ListAdInsights(accountID string, window domain.DateWindow) ([]metadomain.AdInsight, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
		window.StartDate.Format(time.DateOnly), window.EndDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "account_id,campaign_id,campaign_name,adset_id,adset_name,ad_id,ad_name,impressions,clicks,spend,actions,action_values")
	params.Add("level", "ad")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("limit", "500")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/act_%s/insights?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, c.Cfg.Meta.InsightsPageCeiling)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.AdInsight](pages), nil
}
