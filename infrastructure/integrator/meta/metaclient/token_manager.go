package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/config"
)

// TokenManager gerencia o token de acesso de longa duração da API do Meta
type TokenManager struct {
	cfg         *config.Config
	mu          sync.Mutex
	stopRefresh chan struct{}
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

// StartAutoRefresh renova o token periodicamente em background. O token de
// longa duração do Meta dura ~60 dias, mas renovamos diariamente para manter
// a janela de expiração sempre distante.
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.InitiateToken(); err != nil {
		logrus.Errorf("Erro ao iniciar o token: %v", err)
	}

	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				// Em caso de falha, tenta de novo num intervalo mais curto
				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// InitiateToken obtém um token de longa duração a partir do token de curta duração
func (tm *TokenManager) InitiateToken() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.cfg.Meta.LongLivedToken != "" {
		return nil
	}

	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.URL,
	)
	if err != nil {
		return fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	logrus.Infof("Token de longa duração inicializado com sucesso. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// RefreshToken obtém um novo token de longa duração
func (tm *TokenManager) RefreshToken() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !tm.cfg.Meta.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Meta.TokenExpiresAt) < 1*time.Hour {
		logrus.Warn("Token muito próximo da expiração ou já expirado - pode ser necessária reautorização manual")
	}

	logrus.Info("Iniciando renovação do token...")
	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.URL,
	)
	if err != nil {
		logrus.Errorf("Erro ao renovar token: %v", err)
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.Meta.AccessToken == "" {
		logrus.Info("Token não inicializado. Inicializando...")
		return tm.InitiateToken()
	}

	// Renova com antecedência de 24h para nunca operar com token vencido
	if !tm.cfg.Meta.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Meta.TokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token próximo da expiração. Renovando...")
		return tm.RefreshToken()
	}

	return nil
}

// HandleResponse lê o corpo da resposta e verifica erros da API, em especial
// token expirado (código 190), que dispara renovação imediata
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err != nil {
		return nil, fmt.Errorf("resposta com status %d: %s", resp.StatusCode, string(body))
	}

	if errorResponse.IsTokenExpired() {
		logrus.Warn("Token expirado detectado na resposta. Renovando...")
		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}
		return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
	}

	if errorResponse.IsRateLimited() {
		return nil, fmt.Errorf("limite de requisições atingido: %s (código %d)",
			errorResponse.Error.Message, errorResponse.Error.Code)
	}

	return nil, fmt.Errorf("erro da API do Meta: %s (código %d)",
		errorResponse.Error.Message, errorResponse.Error.Code)
}
