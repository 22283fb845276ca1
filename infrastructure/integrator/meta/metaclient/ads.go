package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// ListAds busca todos os anúncios da conta com o creative expandido, de onde
// saem o hash de imagem ou o id de vídeo usados no catálogo de mídia
func (c *MetaClient) ListAds(accountID string) ([]metadomain.Ad, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,name,effective_status,adset_id,campaign_id,creative{id,video_id,image_hash}")
	params.Add("effective_status", `["ACTIVE","PAUSED","DELETED","ARCHIVED"]`)
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/act_%s/ads?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, c.Cfg.Meta.EntityPageCeiling)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.Ad](pages), nil
}
