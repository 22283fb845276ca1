package domain

type BusinessManager struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExternalID string `json:"external_id"`
	Origin     string `json:"origin"`
}

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type AdAccount struct {
	BusinessManagerID   string             `json:"business_id"`
	BusinessManagerName string             `json:"business_name"`
	ExternalID          string             `json:"external_id"`
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Nickname            *string            `json:"nickname"`
	Origin              string             `json:"origin"`
	OwnerID             string             `json:"owner_id"`
	Status              AdAccountStatus    `json:"status"`
	EventValues         map[string]float64 `json:"event_values"`
}

type AdAccountResponse struct {
	ExternalID string          `json:"external_id"`
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Status     AdAccountStatus `json:"status"`
}

type UpdateAdAccountRequest struct {
	ID          string              `json:"id"`
	Nickname    *string             `json:"nickname,omitempty"`
	Status      *string             `json:"status,omitempty"`
	EventValues *map[string]float64 `json:"event_values,omitempty"`
}

type UpdateAdAccountResponse struct {
	ID          string              `json:"id"`
	Nickname    *string             `json:"nickname,omitempty"`
	Status      *string             `json:"status,omitempty"`
	EventValues *map[string]float64 `json:"event_values,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
