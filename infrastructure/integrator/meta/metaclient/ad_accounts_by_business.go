package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// GetAdAccountsByBusinessID lista as contas de anúncios vinculadas a um
// business manager, usadas na descoberta de contas
func (c *MetaClient) GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccountRef, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,account_id,name,account_status")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/%s/owned_ad_accounts?%s", c.Cfg.Meta.URL, businessID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, c.Cfg.Meta.EntityPageCeiling)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.AdAccountRef](pages), nil
}
