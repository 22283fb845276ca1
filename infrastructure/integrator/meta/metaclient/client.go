package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

type Client interface {
	ListCampaigns(accountID string) ([]metadomain.Campaign, error)
	ListAdSets(accountID string) ([]metadomain.AdSet, error)
	ListAds(accountID string) ([]metadomain.Ad, error)
	ListAdInsights(accountID string, window domain.DateWindow) ([]metadomain.AdInsight, error)
	ListImages(accountID string, idsOnly bool) ([]metadomain.AdImage, error)
	ListVideos(accountID string, idsOnly bool) ([]metadomain.AdVideo, error)
	GetImagesByHashes(accountID string, hashes []string) ([]metadomain.AdImage, error)
	GetVideosByIDs(ids []string) ([]metadomain.AdVideo, error)
	GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccountRef, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			// Cada requisição individual é limitada por timeout; o estouro
			// encerra a caminhada de páginas sem invalidar o que já foi lido
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second,
		},
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
