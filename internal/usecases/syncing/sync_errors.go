package syncing

import (
	"errors"
)

// Erros específicos para o contexto de sincronização de métricas
var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidWindow     = errors.New("invalid date window")

	// ErrInsightsUnavailable indica que a primeira página da listagem de
	// insights falhou: sem ela a sincronização não grava nada
	ErrInsightsUnavailable = errors.New("insights listing unavailable")

	ErrPersistMetrics = errors.New("error persisting metric rows")
)
