package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// ListAdSets busca todos os conjuntos de anúncios da conta
func (c *MetaClient) ListAdSets(accountID string) ([]metadomain.AdSet, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,name,effective_status,campaign_id,daily_budget,lifetime_budget")
	params.Add("effective_status", `["ACTIVE","PAUSED","DELETED","ARCHIVED"]`)
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/act_%s/adsets?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, c.Cfg.Meta.EntityPageCeiling)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.AdSet](pages), nil
}
