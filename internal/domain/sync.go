package domain

import (
	"fmt"
	"time"
)

// DateWindow delimita o intervalo de datas (inclusivo) de uma sincronização
// de métricas
type DateWindow struct {
	StartDate time.Time
	EndDate   time.Time
}

// Validate garante que a janela está preenchida e ordenada
func (w DateWindow) Validate() error {
	if w.StartDate.IsZero() || w.EndDate.IsZero() {
		return fmt.Errorf("janela de datas incompleta")
	}

	if w.EndDate.Before(w.StartDate) {
		return fmt.Errorf("data final %s anterior à data inicial %s",
			w.EndDate.Format(time.DateOnly), w.StartDate.Format(time.DateOnly))
	}

	return nil
}

type SyncMetricsResult struct {
	InsertedCount int `json:"inserted_count"`
}

type SyncMediaResult struct {
	NewAssetCount           int  `json:"new_asset_count"`
	ResolvedDerivativeCount int  `json:"resolved_derivative_count"`
	Skipped                 bool `json:"skipped,omitempty"`
}
