// Package classifier turns the raw text lines recognized on a package label
// into a recipient name and address.
//
// It is a heuristic over Brazilian label conventions: street and unit
// keywords, CEP postal codes and two-letter state codes mark address lines,
// capitalized runs mark names. Classification never fails. When the lines
// cannot be separated confidently the result is built from line positions
// and marked domain.ConfidenceFallback; when nothing usable is left the
// sentinel placeholders are returned.
package classifier

import (
	"strings"

	"github.com/pkordes/parcel-intake/internal/domain"
)

// Kind is the bucket a usable line was sorted into.
type Kind string

const (
	KindName    Kind = "name"
	KindAddress Kind = "address"
	KindOther   Kind = "other"
)

// Line is the classification of one usable (non-noise) input line.
type Line struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
	// Rules lists the pattern families that matched. A name-only match that
	// lost to an address match is not listed. "loose" marks a name accepted
	// by word count alone.
	Rules []string `json:"rules,omitempty"`
}

// Analyze trims and filters lines and classifies each survivor.
// Noise lines (empty, purely numeric, exactly two capitals) are dropped.
func Analyze(lines []string) []Line {
	out := make([]Line, 0, len(lines))
	for _, raw := range lines {
		text := strings.TrimSpace(raw)
		if isNoise(text) {
			continue
		}
		out = append(out, classifyLine(text))
	}
	return out
}

// Classify returns the best reading of the label text.
// It is pure and deterministic, and safe for concurrent use.
func Classify(lines []string) domain.ClassificationResult {
	analyzed := Analyze(lines)
	if len(analyzed) == 0 {
		return unidentified()
	}

	confidence := domain.ConfidenceResolved

	nameIdx := -1
	var addrLines []string
	for i, l := range analyzed {
		switch l.Kind {
		case KindName:
			if nameIdx < 0 {
				nameIdx = i
			}
		case KindAddress:
			addrLines = append(addrLines, l.Text)
		}
	}

	if nameIdx < 0 {
		nameIdx = 0
		confidence = domain.ConfidenceFallback
	}
	name := normalizeName(analyzed[nameIdx].Text)

	if len(addrLines) == 0 {
		confidence = domain.ConfidenceFallback
		for _, l := range analyzed[nameIdx+1:] {
			addrLines = append(addrLines, l.Text)
		}
	}
	address := normalizeAddress(addrLines)

	if name == "" {
		name = domain.UnidentifiedName
		confidence = domain.ConfidenceFallback
	}
	if address == "" {
		address = domain.UnidentifiedAddress
		confidence = domain.ConfidenceFallback
	}

	return domain.ClassificationResult{Name: name, Address: address, Confidence: confidence}
}

func unidentified() domain.ClassificationResult {
	return domain.ClassificationResult{
		Name:       domain.UnidentifiedName,
		Address:    domain.UnidentifiedAddress,
		Confidence: domain.ConfidenceFallback,
	}
}

func isNoise(text string) bool {
	return text == "" || numericLine.MatchString(text) || bareState.MatchString(text)
}

// classifyLine applies the tie-break: an address match always wins over a
// name match, since label address lines often contain capitalized runs.
func classifyLine(text string) Line {
	if rules := matching(addressRules, text); len(rules) > 0 {
		return Line{Text: text, Kind: KindAddress, Rules: rules}
	}
	if rules := matching(nameRules, text); len(rules) > 0 {
		return Line{Text: text, Kind: KindName, Rules: rules}
	}
	if n := len(strings.Fields(text)); n >= 2 && n <= 4 {
		return Line{Text: text, Kind: KindName, Rules: []string{"loose"}}
	}
	return Line{Text: text, Kind: KindOther}
}
