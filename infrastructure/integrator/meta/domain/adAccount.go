package metadomain

// AdAccountRef representa uma conta de anúncios retornada pela listagem
// de contas de um business manager
type AdAccountRef struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}

// IsActive verifica o status da conta na API (1 = ativa)
func (a *AdAccountRef) IsActive() bool {
	return a.AccountStatus == 1
}
