package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// ListCampaigns busca todas as campanhas da conta, inclusive pausadas e
// removidas, para que a resolução de hierarquia enxergue o status real
func (c *MetaClient) ListCampaigns(accountID string) ([]metadomain.Campaign, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,name,effective_status,daily_budget,lifetime_budget")
	params.Add("effective_status", `["ACTIVE","PAUSED","DELETED","ARCHIVED"]`)
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/act_%s/campaigns?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, c.Cfg.Meta.EntityPageCeiling)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.Campaign](pages), nil
}
