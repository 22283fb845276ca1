package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

const (
	imageFullFields  = "hash,name,url,width,height,status"
	imageLightFields = "hash"
	videoFullFields  = "id,title,length,picture,source,status,created_time"
	videoLightFields = "id"
)

// ListImages busca a biblioteca de imagens da conta. Com idsOnly usa o campo
// reduzido que o delta sync diferencia contra o catálogo já conhecido.
func (c *MetaClient) ListImages(accountID string, idsOnly bool) ([]metadomain.AdImage, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	fields := imageFullFields
	if idsOnly {
		fields = imageLightFields
	}

	params := url.Values{}
	params.Add("fields", fields)
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/act_%s/adimages?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, c.Cfg.Meta.EntityPageCeiling)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.AdImage](pages), nil
}

// ListVideos busca a biblioteca de vídeos da conta
func (c *MetaClient) ListVideos(accountID string, idsOnly bool) ([]metadomain.AdVideo, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	fields := videoFullFields
	if idsOnly {
		fields = videoLightFields
	}

	params := url.Values{}
	params.Add("fields", fields)
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/act_%s/advideos?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, c.Cfg.Meta.EntityPageCeiling)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.AdVideo](pages), nil
}

// GetImagesByHashes busca os detalhes completos de um subconjunto de imagens.
// A API aceita a lista de hashes direto no endpoint de adimages.
func (c *MetaClient) GetImagesByHashes(accountID string, hashes []string) ([]metadomain.AdImage, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	hashesJSON, err := json.Marshal(hashes)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar hashes: %w", err)
	}

	params := url.Values{}
	params.Add("fields", imageFullFields)
	params.Add("hashes", string(hashesJSON))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	seedURL := fmt.Sprintf("%s/act_%s/adimages?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	pages, err := c.fetchAllPages(seedURL, 1)
	if err != nil {
		return nil, err
	}

	return decodePage[metadomain.AdImage](pages), nil
}

// GetVideosByIDs busca título e duração de vídeos individuais através do
// endpoint de batch, usado na resolução de derivativos. Ids inexistentes
// (derivativos já expirados na plataforma) são ignorados.
func (c *MetaClient) GetVideosByIDs(ids []string) ([]metadomain.AdVideo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	requests := make([]metadomain.BatchRequest, 0, len(ids))
	for _, id := range ids {
		requests = append(requests, metadomain.BatchRequest{
			Method:      "GET",
			RelativeURL: fmt.Sprintf("%s?fields=%s", id, url.QueryEscape(videoFullFields)),
		})
	}

	responses, err := c.Batch(requests)
	if err != nil {
		return nil, err
	}

	videos := make([]metadomain.AdVideo, 0, len(responses))
	for i, r := range responses {
		if r.Code != 200 {
			logrus.WithFields(logrus.Fields{
				"video_id": ids[i],
				"code":     r.Code,
			}).Debug("Vídeo não encontrado na busca em lote, ignorando")
			continue
		}

		var video metadomain.AdVideo
		if err := json.Unmarshal([]byte(r.Body), &video); err != nil {
			logrus.WithError(err).WithField("video_id", ids[i]).Debug("Corpo de vídeo malformado, ignorando")
			continue
		}
		videos = append(videos, video)
	}

	return videos, nil
}
