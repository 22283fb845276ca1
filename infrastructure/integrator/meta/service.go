package meta

import (
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// MetaIntegrator é a fachada sobre o cliente da API Graph usada pelos
// casos de uso de sincronização
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ListCampaigns(accountID string) ([]metadomain.Campaign, error) {
	return s.Client.ListCampaigns(accountID)
}

func (s *MetaIntegrator) ListAdSets(accountID string) ([]metadomain.AdSet, error) {
	return s.Client.ListAdSets(accountID)
}

func (s *MetaIntegrator) ListAds(accountID string) ([]metadomain.Ad, error) {
	return s.Client.ListAds(accountID)
}

func (s *MetaIntegrator) ListAdInsights(accountID string, window domain.DateWindow) ([]metadomain.AdInsight, error) {
	return s.Client.ListAdInsights(accountID, window)
}

func (s *MetaIntegrator) ListImages(accountID string, idsOnly bool) ([]metadomain.AdImage, error) {
	return s.Client.ListImages(accountID, idsOnly)
}

func (s *MetaIntegrator) ListVideos(accountID string, idsOnly bool) ([]metadomain.AdVideo, error) {
	return s.Client.ListVideos(accountID, idsOnly)
}

func (s *MetaIntegrator) GetImagesByHashes(accountID string, hashes []string) ([]metadomain.AdImage, error) {
	return s.Client.GetImagesByHashes(accountID, hashes)
}

func (s *MetaIntegrator) GetVideosByIDs(ids []string) ([]metadomain.AdVideo, error) {
	return s.Client.GetVideosByIDs(ids)
}

// ListBusinessAccounts descobre as contas de anúncios de um business manager
// já convertidas para o domínio interno
func (s *MetaIntegrator) ListBusinessAccounts(businessID string) ([]*domain.AdAccount, error) {
	refs, err := s.Client.GetAdAccountsByBusinessID(businessID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id": businessID,
			"error":       err.Error(),
		}).Error("accounts: falha ao listar contas do business manager")
		return nil, err
	}

	accounts := make([]*domain.AdAccount, 0, len(refs))
	for _, ref := range refs {
		status := domain.AdAccountStatusInactive
		if ref.IsActive() {
			status = domain.AdAccountStatusActive
		}

		accounts = append(accounts, &domain.AdAccount{
			// A API retorna o id com o prefixo "act_"; o id externo guardado
			// é sempre o numérico puro
			ExternalID:        strings.TrimPrefix(ref.ID, "act_"),
			Name:              ref.Name,
			Origin:            "meta",
			Status:            status,
			BusinessManagerID: businessID,
		})
	}

	return accounts, nil
}
