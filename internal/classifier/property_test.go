package classifier_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/pkordes/parcel-intake/internal/classifier"
	"github.com/pkordes/parcel-intake/internal/domain"
)

var labelFragments = []string{
	"MARIA SANTOS OLIVEIRA",
	"Sr. José Almeida",
	"Ana Paula Costa",
	"joão da silva",
	"AVENIDA BRASIL, 456 - BLOCO B",
	"Rua das Flores, 120",
	"Apto 32",
	"Jardim Europa",
	"SP / RJ",
	"CEP 01310-100",
	"10 Rua Sete",
	"COPACABANA - RIO DE JANEIRO/RJ",
	"fragil",
	"volume 2 de 3 caixas grandes",
	"",
	"   ",
}

var noiseFragments = []string{"", "  ", "7", "0042 1337", "RJ", "SP"}

func labelLines() *rapid.Generator[[]string] {
	return rapid.SliceOfN(rapid.OneOf(
		rapid.SampledFrom(labelFragments),
		rapid.String(),
	), 0, 8)
}

// TestProperty_Deterministic verifies that classifying the same text twice
// gives the same result.
func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := labelLines().Draw(t, "lines")

		first := classifier.Classify(lines)
		second := classifier.Classify(append([]string(nil), lines...))

		if first != second {
			t.Fatalf("non-deterministic: %+v vs %+v", first, second)
		}
	})
}

// TestProperty_AlwaysUsable verifies the result never carries empty or
// padded strings and always has a known confidence.
func TestProperty_AlwaysUsable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		got := classifier.Classify(labelLines().Draw(t, "lines"))

		if got.Name == "" || got.Address == "" {
			t.Fatalf("empty field in %+v", got)
		}
		if got.Name != strings.TrimSpace(got.Name) || got.Address != strings.TrimSpace(got.Address) {
			t.Fatalf("untrimmed field in %+v", got)
		}
		if got.Confidence != domain.ConfidenceResolved && got.Confidence != domain.ConfidenceFallback {
			t.Fatalf("unknown confidence %q", got.Confidence)
		}
		if got.Confidence == domain.ConfidenceResolved &&
			(got.Name == domain.UnidentifiedName || got.Address == domain.UnidentifiedAddress) {
			t.Fatalf("resolved result with placeholder: %+v", got)
		}
	})
}

// TestProperty_NoiseInvariant verifies that interleaving noise lines does not
// change the result.
func TestProperty_NoiseInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.SampledFrom(labelFragments), 0, 6).Draw(t, "lines")

		var noisy []string
		for _, l := range lines {
			noise := rapid.SliceOfN(rapid.SampledFrom(noiseFragments), 0, 2).Draw(t, "noise")
			noisy = append(noisy, noise...)
			noisy = append(noisy, l)
		}

		if a, b := classifier.Classify(lines), classifier.Classify(noisy); a != b {
			t.Fatalf("noise changed result: %+v vs %+v", a, b)
		}
	})
}
