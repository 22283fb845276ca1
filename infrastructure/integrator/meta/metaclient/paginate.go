package metaclient

import (
	stdjson "encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// Os payloads de página são grandes e decodificados com frequência
var jsonFast = jsoniter.ConfigCompatibleWithStandardLibrary

// fetchAllPages caminha pela paginação por cursor da API Graph acumulando os
// itens de "data" até o cursor "next" sumir, um erro aparecer no envelope ou o
// teto de páginas ser atingido.
//
// Resultados parciais são um desfecho válido: timeout ou erro de transporte no
// meio da caminhada encerra o loop e devolve o que já foi acumulado. O erro
// retornado só é não-nulo quando a PRIMEIRA página falha por completo — é o
// chamador quem decide se a listagem era obrigatória.
func (c *MetaClient) fetchAllPages(seedURL string, maxPages int) ([]stdjson.RawMessage, error) {
	items := make([]stdjson.RawMessage, 0)

	pageURL := seedURL
	for page := 0; page < maxPages && pageURL != ""; page++ {
		resp, err := c.httpClient.Get(pageURL)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"page":  page,
				"error": err.Error(),
			}).Warn("Erro de transporte durante a paginação, interrompendo caminhada")

			if page == 0 {
				return items, fmt.Errorf("erro ao buscar a primeira página: %w", err)
			}
			return items, nil
		}

		body, err := c.HandleResponse(resp)
		resp.Body.Close()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"page":  page,
				"error": err.Error(),
			}).Warn("Resposta inválida durante a paginação, interrompendo caminhada")

			if page == 0 {
				return items, fmt.Errorf("erro na primeira página: %w", err)
			}
			return items, nil
		}

		var envelope metadomain.Envelope
		if err := jsonFast.Unmarshal(body, &envelope); err != nil {
			logrus.WithError(err).Warn("Erro ao decodificar envelope de paginação")

			if page == 0 {
				return items, fmt.Errorf("erro ao decodificar a primeira página: %w", err)
			}
			return items, nil
		}

		if envelope.Error != nil {
			logrus.WithFields(logrus.Fields{
				"page":    page,
				"code":    envelope.Error.Code,
				"message": envelope.Error.Message,
			}).Warn("API retornou erro no envelope, interrompendo caminhada")

			if page == 0 {
				return items, fmt.Errorf("erro da API na primeira página: %s (código %d)",
					envelope.Error.Message, envelope.Error.Code)
			}
			return items, nil
		}

		items = append(items, envelope.Data...)
		pageURL = envelope.Paging.Next
	}

	return items, nil
}

// decodePage converte os itens brutos acumulados pela paginação para o tipo
// de destino, descartando itens malformados individualmente
func decodePage[T any](items []stdjson.RawMessage) []T {
	out := make([]T, 0, len(items))
	for _, raw := range items {
		var item T
		if err := jsonFast.Unmarshal(raw, &item); err != nil {
			logrus.WithError(err).Debug("Item de página malformado, ignorando")
			continue
		}
		out = append(out, item)
	}
	return out
}
