package mediasync

import (
	"math"
	"regexp"
	"strings"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// MatchTier identifica o nível da heurística que produziu o casamento de um
// derivativo com o vídeo canônico do catálogo
type MatchTier int

const (
	MatchTierNone MatchTier = iota
	// Título cru idêntico
	MatchTierRawTitle
	// Título normalizado idêntico
	MatchTierNormalizedTitle
	// Contenção de substring entre títulos normalizados
	MatchTierSubstring
)

func (t MatchTier) String() string {
	switch t {
	case MatchTierRawTitle:
		return "raw_title"
	case MatchTierNormalizedTitle:
		return "normalized_title"
	case MatchTierSubstring:
		return "substring"
	default:
		return "none"
	}
}

// MatchResult carrega o desfecho da resolução de um derivativo. O nível e a
// confiança ficam expostos para que casamentos de baixa confiança possam ser
// logados e revisados em vez de sumirem num booleano.
type MatchResult struct {
	Matched    bool
	CatalogID  string
	Tier       MatchTier
	Confidence float64
}

var unmatched = MatchResult{}

// knownVideoExtensions são as extensões de arquivo removidas na normalização
var knownVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v"}

// autoVariantPrefix é o prefixo numérico que a plataforma prepende ao título
// dos re-encodes gerados por posicionamento (ex.: "1234567890_meu_video")
var autoVariantPrefix = regexp.MustCompile(`^\d{6,}_`)

// normalizeTitle reduz um título de vídeo à forma comparável: minúsculas, sem
// espaços nas bordas, sem extensão de arquivo e sem o prefixo de variante
// automática
func normalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))

	for _, ext := range knownVideoExtensions {
		if strings.HasSuffix(t, ext) {
			t = strings.TrimSuffix(t, ext)
			break
		}
	}

	t = autoVariantPrefix.ReplaceAllString(t, "")

	return strings.TrimSpace(t)
}

// videoIndex são os dois índices de consulta sobre os vídeos do catálogo:
// título cru minúsculo e título normalizado, cada um apontando para os
// candidatos que o compartilham
type videoIndex struct {
	byRawTitle        map[string][]*domain.CatalogAsset
	byNormalizedTitle map[string][]*domain.CatalogAsset
}

func newVideoIndex(videos []*domain.CatalogAsset) *videoIndex {
	idx := &videoIndex{
		byRawTitle:        make(map[string][]*domain.CatalogAsset, len(videos)),
		byNormalizedTitle: make(map[string][]*domain.CatalogAsset, len(videos)),
	}

	for _, v := range videos {
		if v.Name == "" {
			continue
		}

		raw := strings.ToLower(strings.TrimSpace(v.Name))
		idx.byRawTitle[raw] = append(idx.byRawTitle[raw], v)

		normalized := normalizeTitle(v.Name)
		if normalized != "" {
			idx.byNormalizedTitle[normalized] = append(idx.byNormalizedTitle[normalized], v)
		}
	}

	return idx
}

// match tenta casar um derivativo (título + duração) com um vídeo do
// catálogo, do nível mais confiável para o menos: título cru, título
// normalizado, contenção de substring. Duração desempata candidatos dentro da
// tolerância em todos os níveis. Sem casamento o derivativo permanece
// irresoluto — nunca é erro.
func (idx *videoIndex) match(title string, duration, toleranceSeconds float64) MatchResult {
	if strings.TrimSpace(title) == "" {
		return unmatched
	}

	raw := strings.ToLower(strings.TrimSpace(title))
	if candidates, ok := idx.byRawTitle[raw]; ok {
		if chosen := disambiguateByDuration(candidates, duration, toleranceSeconds); chosen != nil {
			return MatchResult{Matched: true, CatalogID: chosen.Hash, Tier: MatchTierRawTitle, Confidence: 1.0}
		}
	}

	normalized := normalizeTitle(title)
	if normalized == "" {
		return unmatched
	}

	if candidates, ok := idx.byNormalizedTitle[normalized]; ok {
		if chosen := disambiguateByDuration(candidates, duration, toleranceSeconds); chosen != nil {
			return MatchResult{Matched: true, CatalogID: chosen.Hash, Tier: MatchTierNormalizedTitle, Confidence: 0.9}
		}
	}

	containing := make([]*domain.CatalogAsset, 0)
	for catalogTitle, candidates := range idx.byNormalizedTitle {
		if strings.Contains(catalogTitle, normalized) || strings.Contains(normalized, catalogTitle) {
			containing = append(containing, candidates...)
		}
	}
	if chosen := disambiguateByDuration(containing, duration, toleranceSeconds); chosen != nil {
		return MatchResult{Matched: true, CatalogID: chosen.Hash, Tier: MatchTierSubstring, Confidence: 0.7}
	}

	return unmatched
}

// disambiguateByDuration escolhe entre os candidatos pelo delta de duração.
// Candidato único sem sinal de duração é aceito; múltiplos candidatos sem
// duração para desempatar são ambíguos demais e ninguém é escolhido.
func disambiguateByDuration(candidates []*domain.CatalogAsset, duration, toleranceSeconds float64) *domain.CatalogAsset {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		only := candidates[0]
		if duration <= 0 || only.Duration <= 0 {
			return only
		}
		if math.Abs(only.Duration-duration) <= toleranceSeconds {
			return only
		}
		return nil
	}

	if duration <= 0 {
		return nil
	}

	var best *domain.CatalogAsset
	bestDelta := toleranceSeconds
	for _, c := range candidates {
		delta := math.Abs(c.Duration - duration)
		if delta <= bestDelta {
			best = c
			bestDelta = delta
		}
	}

	return best
}
