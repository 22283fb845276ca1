package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// Batch envia um conjunto de sub-requisições para o endpoint de batch da API
// Graph e retorna os resultados na mesma ordem
func (c *MetaClient) Batch(requests []metadomain.BatchRequest) ([]metadomain.BatchResponse, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	batchJSON, err := json.Marshal(requests)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisições de batch: %w", err)
	}

	form := url.Values{}
	form.Add("batch", string(batchJSON))
	form.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequest(http.MethodPost, c.Cfg.Meta.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de batch: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar requisição de batch")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var responses []metadomain.BatchResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, fmt.Errorf("erro ao decodificar respostas de batch: %w", err)
	}

	return responses, nil
}
