package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// TokenResponse é a resposta do endpoint oauth/access_token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetLongLivedToken troca um token de acesso por um token de longa duração
func GetLongLivedToken(accessToken, appID, appSecret, apiURL string) (*TokenResponse, error) {
	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", appID)
	params.Add("client_secret", appSecret)
	params.Add("fb_exchange_token", accessToken)

	resp, err := http.Get(fmt.Sprintf("%s/oauth/access_token?%s", apiURL, params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro na requisição de troca de token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("troca de token retornou status %d", resp.StatusCode)
	}

	var tokenResponse TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return nil, fmt.Errorf("resposta de token sem access_token")
	}

	return &tokenResponse, nil
}

// CalculateTokenExpiration converte o expires_in (segundos) para uma data
// absoluta. Quando a API não informa, assume os 60 dias padrão do token de
// longa duração.
func CalculateTokenExpiration(expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return time.Now().Add(60 * 24 * time.Hour)
	}
	return time.Now().Add(time.Duration(expiresIn) * time.Second)
}
