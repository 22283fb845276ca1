package mediasync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

func catalogVideo(hash, name string, duration float64) *domain.CatalogAsset {
	return &domain.CatalogAsset{
		Hash:     hash,
		Name:     name,
		Type:     domain.MediaTypeVideo,
		Duration: duration,
	}
}

func TestNormalizeTitle(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "Minúsculas e bordas",
			title:    "  Meu Video  ",
			expected: "meu video",
		},
		{
			name:     "Extensão de arquivo removida",
			title:    "Summer_Promo_v2.mp4",
			expected: "summer_promo_v2",
		},
		{
			name:     "Prefixo de variante automática removido",
			title:    "1234567890_campanha_verao",
			expected: "campanha_verao",
		},
		{
			name:     "Prefixo curto não é variante",
			title:    "12345_campanha",
			expected: "12345_campanha",
		},
		{
			name:     "Extensão e prefixo juntos",
			title:    "9876543210_Lancamento.MOV",
			expected: "lancamento",
		},
		{
			name:     "Título vazio",
			title:    "   ",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizeTitle(tc.title))
		})
	}
}

func TestMatch_RawTitle(t *testing.T) {
	idx := newVideoIndex([]*domain.CatalogAsset{
		catalogVideo("hash-a", "Campanha Verao", 30.0),
		catalogVideo("hash-b", "Outro Video", 12.0),
	})

	result := idx.match("campanha verao", 30.2, 1.0)

	assert.True(t, result.Matched)
	assert.Equal(t, "hash-a", result.CatalogID)
	assert.Equal(t, MatchTierRawTitle, result.Tier)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestMatch_NormalizedTitle(t *testing.T) {
	idx := newVideoIndex([]*domain.CatalogAsset{
		catalogVideo("hash-promo", "summer_promo_v2", 15.0),
	})

	// Re-encode com extensão de arquivo e duração levemente divergente
	result := idx.match("Summer_Promo_v2.mp4", 14.8, 1.0)

	assert.True(t, result.Matched)
	assert.Equal(t, "hash-promo", result.CatalogID)
	assert.Equal(t, MatchTierNormalizedTitle, result.Tier)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestMatch_Substring(t *testing.T) {
	idx := newVideoIndex([]*domain.CatalogAsset{
		catalogVideo("hash-longo", "black friday oferta relampago", 20.0),
	})

	result := idx.match("oferta relampago", 20.5, 1.0)

	assert.True(t, result.Matched)
	assert.Equal(t, "hash-longo", result.CatalogID)
	assert.Equal(t, MatchTierSubstring, result.Tier)
	assert.Equal(t, 0.7, result.Confidence)
}

func TestMatch_DurationDisambiguation(t *testing.T) {
	t.Run("Duração escolhe entre homônimos", func(t *testing.T) {
		idx := newVideoIndex([]*domain.CatalogAsset{
			catalogVideo("hash-curto", "institucional", 15.0),
			catalogVideo("hash-longo", "institucional", 60.0),
		})

		result := idx.match("institucional", 59.4, 1.0)

		assert.True(t, result.Matched)
		assert.Equal(t, "hash-longo", result.CatalogID)
	})

	t.Run("Homônimos sem duração são ambíguos", func(t *testing.T) {
		idx := newVideoIndex([]*domain.CatalogAsset{
			catalogVideo("hash-curto", "institucional", 15.0),
			catalogVideo("hash-longo", "institucional", 60.0),
		})

		result := idx.match("institucional", 0, 1.0)

		assert.False(t, result.Matched)
	})

	t.Run("Candidato único fora da tolerância", func(t *testing.T) {
		idx := newVideoIndex([]*domain.CatalogAsset{
			catalogVideo("hash-a", "campanha", 30.0),
		})

		result := idx.match("campanha", 45.0, 1.0)

		assert.False(t, result.Matched)
	})

	t.Run("Candidato único sem sinal de duração é aceito", func(t *testing.T) {
		idx := newVideoIndex([]*domain.CatalogAsset{
			catalogVideo("hash-a", "campanha", 0),
		})

		result := idx.match("campanha", 45.0, 1.0)

		assert.True(t, result.Matched)
		assert.Equal(t, "hash-a", result.CatalogID)
	})
}

func TestMatch_Unmatched(t *testing.T) {
	idx := newVideoIndex([]*domain.CatalogAsset{
		catalogVideo("hash-a", "campanha verao", 30.0),
	})

	t.Run("Título sem correspondência", func(t *testing.T) {
		result := idx.match("video inexistente", 30.0, 1.0)
		assert.False(t, result.Matched)
		assert.Equal(t, MatchTierNone, result.Tier)
		assert.Zero(t, result.Confidence)
	})

	t.Run("Título vazio", func(t *testing.T) {
		result := idx.match("   ", 30.0, 1.0)
		assert.False(t, result.Matched)
	})
}

func TestMatch_Deterministic(t *testing.T) {
	idx := newVideoIndex([]*domain.CatalogAsset{
		catalogVideo("hash-a", "oferta", 10.0),
		catalogVideo("hash-b", "oferta", 20.0),
		catalogVideo("hash-c", "oferta especial", 20.0),
	})

	first := idx.match("oferta", 19.8, 1.0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, idx.match("oferta", 19.8, 1.0))
	}
	assert.Equal(t, "hash-b", first.CatalogID)
}
