package account

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

type AccountService interface {
	UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error)
	ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	SyncAccounts() (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	metaService       *meta.MetaIntegrator
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	metaService *meta.MetaIntegrator,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		metaService:       metaService,
		cfg:               cfg,
	}
}

func (s *Service) ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:         account.ID,
			ExternalID: account.ExternalID,
			Name:       account.Name,
			Nickname:   account.Nickname,
			Status:     account.Status,
		})
	}

	return adAccountsResponse, nil
}

// SyncAccounts descobre as contas de anúncios do business manager configurado
// e registra as que ainda não existem no banco
func (s *Service) SyncAccounts() (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	accounts, err := s.metaService.ListBusinessAccounts(s.cfg.Meta.BusinessID)
	if err != nil {
		logrus.Error("Error getting ad accounts from integrator meta:", err)
		return response, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Meta")
	}

	existingAccounts, err := s.accountRepository.ListAccountsMap()
	if err != nil {
		logrus.WithField("error", err).Error("Error getting ad accounts from database")
		return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
	}

	bms := make([]*domain.BusinessManager, 0)
	accountsToCreate := make([]*domain.AdAccount, 0)
	seenBMs := make(map[string]struct{})
	for _, acc := range accounts {
		if _, exists := existingAccounts[acc.ExternalID]; exists {
			continue
		}

		accountID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
		}

		acc.ID = accountID
		accountsToCreate = append(accountsToCreate, acc)

		if _, seen := seenBMs[acc.BusinessManagerID]; seen {
			continue
		}
		seenBMs[acc.BusinessManagerID] = struct{}{}

		bmID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para business manager")
		}

		bms = append(bms, &domain.BusinessManager{
			ID:         bmID,
			ExternalID: acc.BusinessManagerID,
			Name:       acc.BusinessManagerName,
			Origin:     acc.Origin,
		})
	}

	businessManagerIDs, err := s.accountRepository.SaveOrUpdateBusinessManager(bms)
	if err != nil {
		return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar business managers")
	}

	// Agora tenta salvar as contas com os business managers resolvidos
	if len(accountsToCreate) > 0 {
		err = s.accountRepository.SaveOrUpdate(accountsToCreate, businessManagerIDs)
		if err != nil {
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
		}
	}

	quantity := len(accountsToCreate)

	logrus.Infof("%d accounts were successfully synced", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	// Valores de evento negativos não fazem sentido como multiplicador
	if request.EventValues != nil {
		for event, value := range *request.EventValues {
			if value < 0 {
				return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrInvalidRequest, request.ID,
					fmt.Sprintf("Valor de evento negativo para %q", event))
			}
		}
	}

	// Atualiza a conta no repositório
	err = s.accountRepository.UpdateAccount(request)
	if err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return &domain.UpdateAdAccountResponse{
		ID:          request.ID,
		Nickname:    request.Nickname,
		Status:      request.Status,
		EventValues: request.EventValues,
	}, nil
}
