package domain

import (
	"time"
)

// MediaType identifica o tipo de um ativo do catálogo de mídia
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// CatalogAsset representa um item canônico da biblioteca de mídia de uma conta
// (hash de imagem ou id de vídeo). Único por (conta, hash); o motor de
// sincronização apenas insere e atualiza, nunca remove.
type CatalogAsset struct {
	ID           int64     `json:"id"`
	OwnerID      string    `json:"owner_id"`
	AccountID    string    `json:"account_id"`
	Hash         string    `json:"hash"`
	Type         MediaType `json:"type"`
	Name         string    `json:"name"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Duration     float64   `json:"duration"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	SyncedAt     time.Time `json:"synced_at"`
}
