package syncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

func TestResolveAttribution(t *testing.T) {
	tests := []struct {
		name          string
		actions       []metadomain.Action
		actionValues  []metadomain.Action
		eventValues   map[string]float64
		expectedCount int
		expectedType  string
		expectedValue *float64
	}{
		{
			name:          "Sem ações - nenhum resultado atribuído",
			actions:       nil,
			actionValues:  nil,
			eventValues:   nil,
			expectedCount: 0,
			expectedType:  "",
			expectedValue: nil,
		},
		{
			name: "Compra tem prioridade sobre lead mesmo aparecendo depois",
			actions: []metadomain.Action{
				{ActionType: "lead", Value: "10"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "3"},
			},
			expectedCount: 3,
			expectedType:  ResultTypePurchase,
			expectedValue: nil,
		},
		{
			name: "Valor da plataforma tem precedência para compras",
			actions: []metadomain.Action{
				{ActionType: "omni_purchase", Value: "2"},
			},
			actionValues: []metadomain.Action{
				{ActionType: "omni_purchase", Value: "350.75"},
			},
			eventValues:   map[string]float64{"purchase": 100},
			expectedCount: 2,
			expectedType:  ResultTypePurchase,
			expectedValue: floatPtr(350.75),
		},
		{
			name: "Compra sem valor da plataforma usa o multiplicador configurado",
			actions: []metadomain.Action{
				{ActionType: "purchase", Value: "2"},
			},
			eventValues:   map[string]float64{"purchase": 80.5},
			expectedCount: 2,
			expectedType:  ResultTypePurchase,
			expectedValue: floatPtr(161),
		},
		{
			name: "Lead com grafia alternativa lead_form no multiplicador",
			actions: []metadomain.Action{
				{ActionType: "onsite_conversion.lead_grouped", Value: "4"},
			},
			eventValues:   map[string]float64{"lead_form": 25},
			expectedCount: 4,
			expectedType:  ResultTypeLead,
			expectedValue: floatPtr(100),
		},
		{
			name: "Registro com grafia complete_registration no multiplicador",
			actions: []metadomain.Action{
				{ActionType: "complete_registration", Value: "5"},
			},
			eventValues:   map[string]float64{"complete_registration": 10},
			expectedCount: 5,
			expectedType:  ResultTypeRegistration,
			expectedValue: floatPtr(50),
		},
		{
			name: "Sem multiplicador configurado o valor fica desconhecido, nunca zero",
			actions: []metadomain.Action{
				{ActionType: "lead", Value: "7"},
			},
			eventValues:   map[string]float64{"purchase": 50},
			expectedCount: 7,
			expectedType:  ResultTypeLead,
			expectedValue: nil,
		},
		{
			name: "Conversão personalizada é usada quando nenhuma padrão está presente",
			actions: []metadomain.Action{
				{ActionType: "offsite_conversion.custom.123456", Value: "6"},
			},
			expectedCount: 6,
			expectedType:  "offsite_conversion.custom.123456",
			expectedValue: nil,
		},
		{
			name: "Conversão padrão vence a personalizada",
			actions: []metadomain.Action{
				{ActionType: "offsite_conversion.custom.123456", Value: "9"},
				{ActionType: "link_click", Value: "15"},
			},
			expectedCount: 15,
			expectedType:  "link_click",
			expectedValue: nil,
		},
		{
			name: "Ação com contagem zero é ignorada na varredura",
			actions: []metadomain.Action{
				{ActionType: "purchase", Value: "0"},
				{ActionType: "video_view", Value: "120"},
			},
			expectedCount: 120,
			expectedType:  "video_view",
			expectedValue: nil,
		},
		{
			name: "Engajamento só é atribuído na ausência de conversões reais",
			actions: []metadomain.Action{
				{ActionType: "post_engagement", Value: "300"},
				{ActionType: "mobile_app_install", Value: "2"},
			},
			eventValues:   map[string]float64{"install": 5},
			expectedCount: 2,
			expectedType:  ResultTypeInstall,
			expectedValue: floatPtr(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, resultType, value := resolveAttribution(tt.actions, tt.actionValues, tt.eventValues)

			assert.Equal(t, tt.expectedCount, count)
			assert.Equal(t, tt.expectedType, resultType)

			if tt.expectedValue == nil {
				assert.Nil(t, value)
			} else {
				assert.NotNil(t, value)
				assert.InDelta(t, *tt.expectedValue, *value, 0.001)
			}
		})
	}
}

// A resolução de atribuição é pura: a mesma entrada produz sempre a mesma
// saída, independente da ordem de chamada
func TestResolveAttribution_Deterministic(t *testing.T) {
	actions := []metadomain.Action{
		{ActionType: "lead", Value: "3"},
		{ActionType: "link_click", Value: "50"},
	}
	eventValues := map[string]float64{"lead": 30}

	firstCount, firstType, firstValue := resolveAttribution(actions, nil, eventValues)

	for i := 0; i < 10; i++ {
		count, resultType, value := resolveAttribution(actions, nil, eventValues)
		assert.Equal(t, firstCount, count)
		assert.Equal(t, firstType, resultType)
		assert.Equal(t, *firstValue, *value)
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
