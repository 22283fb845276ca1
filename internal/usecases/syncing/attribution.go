package syncing

import (
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

// Tipos de resultado simplificados exibidos nas linhas de métricas
const (
	ResultTypePurchase     = "purchase"
	ResultTypeLead         = "lead"
	ResultTypeRegistration = "registration"
	ResultTypeInstall      = "install"
)

// customConversionPrefix é o prefixo das conversões personalizadas criadas
// pelo anunciante na própria plataforma
const customConversionPrefix = "offsite_conversion.custom."

// standardConversionPriority é a ordem fixa de varredura das conversões
// padrão: famílias de maior intenção primeiro, engajamento por último
var standardConversionPriority = []string{
	"offsite_conversion.fb_pixel_purchase",
	"purchase",
	"omni_purchase",
	"lead",
	"onsite_conversion.lead_grouped",
	"offsite_conversion.fb_pixel_lead",
	"complete_registration",
	"omni_complete_registration",
	"offsite_conversion.fb_pixel_complete_registration",
	"mobile_app_install",
	"omni_app_install",
	"app_install",
	"landing_page_view",
	"link_click",
	"post_engagement",
	"video_view",
}

// simplifiedResultType reduz o tipo de ação da plataforma para o rótulo
// exibido. Ações fora do mapa mantêm o tipo cru.
var simplifiedResultType = map[string]string{
	"offsite_conversion.fb_pixel_purchase":              ResultTypePurchase,
	"purchase":                                          ResultTypePurchase,
	"omni_purchase":                                     ResultTypePurchase,
	"lead":                                              ResultTypeLead,
	"onsite_conversion.lead_grouped":                    ResultTypeLead,
	"offsite_conversion.fb_pixel_lead":                  ResultTypeLead,
	"complete_registration":                             ResultTypeRegistration,
	"omni_complete_registration":                        ResultTypeRegistration,
	"offsite_conversion.fb_pixel_complete_registration": ResultTypeRegistration,
	"mobile_app_install":                                ResultTypeInstall,
	"omni_app_install":                                  ResultTypeInstall,
	"app_install":                                       ResultTypeInstall,
}

// purchaseFamily identifica as ações cujo valor monetário a plataforma
// reporta diretamente em action_values
var purchaseFamily = map[string]struct{}{
	"offsite_conversion.fb_pixel_purchase": {},
	"purchase":                             {},
	"omni_purchase":                        {},
}

// eventValueKeys lista as grafias aceitas ao procurar o multiplicador
// configurado para um tipo de resultado. A primeira presente vence.
var eventValueKeys = map[string][]string{
	ResultTypePurchase:     {"purchase"},
	ResultTypeLead:         {"lead", "lead_form"},
	ResultTypeRegistration: {"registration", "complete_registration"},
	ResultTypeInstall:      {"install", "app_install"},
}

// resolveAttribution seleciona a conversão mais relevante de uma linha de
// métricas e calcula o valor monetário do resultado.
//
// A função é pura: mesmo (actions, actionValues, eventValues) produz sempre o
// mesmo (count, type, value). O valor nunca é fabricado como zero — nil
// significa "desconhecido", não "sem valor".
func resolveAttribution(
	actions []metadomain.Action,
	actionValues []metadomain.Action,
	eventValues map[string]float64,
) (resultCount int, resultType string, resultValue *float64) {
	counts := make(map[string]float64, len(actions))
	for _, a := range actions {
		if v, err := strconv.ParseFloat(a.Value, 64); err == nil {
			counts[a.ActionType] = v
		}
	}

	matchedTag := ""
	for _, tag := range standardConversionPriority {
		if counts[tag] > 0 {
			matchedTag = tag
			break
		}
	}

	if matchedTag == "" {
		// Nenhuma conversão padrão: procurar uma conversão personalizada da conta
		for _, a := range actions {
			if strings.HasPrefix(a.ActionType, customConversionPrefix) && counts[a.ActionType] > 0 {
				matchedTag = a.ActionType
				break
			}
		}
	}

	if matchedTag == "" {
		return 0, "", nil
	}

	resultCount = int(counts[matchedTag])

	resultType = matchedTag
	if simplified, ok := simplifiedResultType[matchedTag]; ok {
		resultType = simplified
	}

	resultValue = resolveResultValue(matchedTag, resultType, resultCount, actionValues, eventValues)
	return resultCount, resultType, resultValue
}

func resolveResultValue(
	matchedTag, resultType string,
	resultCount int,
	actionValues []metadomain.Action,
	eventValues map[string]float64,
) *float64 {
	// O valor reportado pela plataforma tem precedência para a família de
	// compra: é dinheiro medido, não estimado
	if _, ok := purchaseFamily[matchedTag]; ok {
		for _, av := range actionValues {
			if _, isPurchase := purchaseFamily[av.ActionType]; !isPurchase {
				continue
			}
			if v, err := strconv.ParseFloat(av.Value, 64); err == nil && v > 0 {
				return &v
			}
		}
	}

	if resultCount <= 0 || len(eventValues) == 0 {
		return nil
	}

	keys, ok := eventValueKeys[resultType]
	if !ok {
		// Conversão personalizada: aceitar o tipo cru ou o sufixo sem prefixo
		keys = []string{resultType, strings.TrimPrefix(matchedTag, customConversionPrefix)}
	}

	for _, key := range keys {
		if unitValue, ok := eventValues[key]; ok && unitValue > 0 {
			// Valor monetário: arredondar evita ruído de ponto flutuante do produto
			total := utils.RoundWithTwoDecimalPlace(float64(resultCount) * unitValue)
			return &total
		}
	}

	return nil
}
