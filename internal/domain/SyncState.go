package domain

import (
	"time"
)

// SyncState guarda o estado da última sincronização de mídia por conta.
// Controla o cooldown do delta sync automático.
type SyncState struct {
	AccountID    string    `json:"account_id"`
	LastSyncedAt time.Time `json:"last_synced_at"`
	ImageCount   int       `json:"image_count"`
	VideoCount   int       `json:"video_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CooldownElapsed verifica se o período de cooldown já passou desde a última
// sincronização registrada
func (s *SyncState) CooldownElapsed(cooldown time.Duration, now time.Time) bool {
	if s == nil || s.LastSyncedAt.IsZero() {
		return true
	}
	return now.Sub(s.LastSyncedAt) >= cooldown
}
