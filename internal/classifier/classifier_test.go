package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parcel-intake/internal/classifier"
	"github.com/pkordes/parcel-intake/internal/domain"
)

func TestClassify_UppercaseLabel(t *testing.T) {
	got := classifier.Classify([]string{
		"MARIA SANTOS OLIVEIRA",
		"AVENIDA BRASIL, 456 - BLOCO B - COPACABANA - RIO DE JANEIRO/RJ",
	})

	assert.Equal(t, "Maria Santos Oliveira", got.Name)
	assert.Contains(t, got.Address, "Avenida Brasil, 456")
	assert.Contains(t, got.Address, "Bloco B")
	assert.Contains(t, got.Address, "Copacabana")
	assert.NotContains(t, got.Address, "/RJ")
	assert.Equal(t, domain.ConfidenceResolved, got.Confidence)
}

func TestClassify_EmptyInput(t *testing.T) {
	for name, lines := range map[string][]string{
		"nil":        nil,
		"empty":      {},
		"blank":      {"", "   ", "\t"},
		"noise only": {"42", "XY"},
	} {
		t.Run(name, func(t *testing.T) {
			got := classifier.Classify(lines)

			assert.Equal(t, domain.UnidentifiedName, got.Name)
			assert.Equal(t, domain.UnidentifiedAddress, got.Address)
			assert.Equal(t, domain.ConfidenceFallback, got.Confidence)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  domain.ClassificationResult
	}{
		{
			name:  "honorific and CEP",
			lines: []string{"Sra. Ana Paula Costa", "Rua das Flores, 120", "Apto 32", "CEP 01310-100"},
			want: domain.ClassificationResult{
				Name:       "Ana Paula Costa",
				Address:    "Rua das Flores, 120, Apto 32",
				Confidence: domain.ConfidenceResolved,
			},
		},
		{
			name:  "address wins over name",
			lines: []string{"JARDIM PAULISTA", "MARIA SOUZA"},
			want: domain.ClassificationResult{
				Name:       "Maria Souza",
				Address:    "Jardim Paulista",
				Confidence: domain.ConfidenceResolved,
			},
		},
		{
			name:  "state pair and CEP in the middle",
			lines: []string{"Carlos Mendes", "Travessa Ouro Preto 45", "CEP: 18087-149", "Sorocaba SP/SP"},
			want: domain.ClassificationResult{
				Name:       "Carlos Mendes",
				Address:    "Travessa Ouro Preto 45, Sorocaba",
				Confidence: domain.ConfidenceResolved,
			},
		},
		{
			name:  "uppercase label with a state pair line",
			lines: []string{"MARIA SANTOS", "RUA DAS FLORES 10", "SP / RJ"},
			want: domain.ClassificationResult{
				Name:       "Maria Santos",
				Address:    "Rua Das Flores 10",
				Confidence: domain.ConfidenceResolved,
			},
		},
		{
			name:  "trailing dash state suffix",
			lines: []string{"ANA LIMA", "Rua Exemplo, 123 - Centro - São Paulo - SP"},
			want: domain.ClassificationResult{
				Name:       "Ana Lima",
				Address:    "Rua Exemplo, 123 - Centro - São Paulo",
				Confidence: domain.ConfidenceResolved,
			},
		},
		{
			name:  "loose name by word count",
			lines: []string{"joão da silva", "Av. Paulista, 1000"},
			want: domain.ClassificationResult{
				Name:       "João Da Silva",
				Address:    "Av. Paulista, 1000",
				Confidence: domain.ConfidenceResolved,
			},
		},
		{
			name:  "noise lines are ignored",
			lines: []string{"1", "PEDRO ALVES", "SP", "Alameda Santos 200", "0042 1337"},
			want: domain.ClassificationResult{
				Name:       "Pedro Alves",
				Address:    "Alameda Santos 200",
				Confidence: domain.ConfidenceResolved,
			},
		},
		{
			name:  "no name falls back to first line",
			lines: []string{"entregar com urgência antes das dez horas", "Rua A, 10"},
			want: domain.ClassificationResult{
				Name:       "Entregar Com Urgência Antes Das Dez Horas",
				Address:    "Rua A, 10",
				Confidence: domain.ConfidenceFallback,
			},
		},
		{
			name:  "no address falls back to following lines",
			lines: []string{"JOAO PEREIRA", "entregar na recepção do prédio principal hoje"},
			want: domain.ClassificationResult{
				Name:       "Joao Pereira",
				Address:    "entregar na recepção do prédio principal hoje",
				Confidence: domain.ConfidenceFallback,
			},
		},
		{
			name:  "single name line",
			lines: []string{"  MARIA   DAS  DORES  "},
			want: domain.ClassificationResult{
				Name:       "Maria Das Dores",
				Address:    domain.UnidentifiedAddress,
				Confidence: domain.ConfidenceFallback,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.lines))
		})
	}
}

func TestAnalyze_ReportsKindsAndRules(t *testing.T) {
	got := classifier.Analyze([]string{"42", "JARDIM PAULISTA", "Dr. Paulo Reis", "volume 2 de 3 caixas grandes"})

	require.Len(t, got, 3)

	assert.Equal(t, "JARDIM PAULISTA", got[0].Text)
	assert.Equal(t, classifier.KindAddress, got[0].Kind)
	assert.Equal(t, []string{"district"}, got[0].Rules)

	assert.Equal(t, classifier.KindName, got[1].Kind)
	assert.Contains(t, got[1].Rules, "honorific")

	assert.Equal(t, classifier.KindOther, got[2].Kind)
	assert.Empty(t, got[2].Rules)
}

func TestAnalyze_LooseRuleOnlyForShortLines(t *testing.T) {
	got := classifier.Analyze([]string{"ver portaria", "um dois três quatro cinco"})

	require.Len(t, got, 2)
	assert.Equal(t, classifier.KindName, got[0].Kind)
	assert.Equal(t, []string{"loose"}, got[0].Rules)
	assert.Equal(t, classifier.KindOther, got[1].Kind)
}
