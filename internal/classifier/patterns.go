package classifier

import "regexp"

// rule is a named pattern family. Names show up in Line.Rules so callers can
// see why a line was classified the way it was.
type rule struct {
	name string
	re   *regexp.Regexp
}

// Noise filters. Lines matching any of these carry no recipient data:
// page numbers, barcode fragments, bare state codes.
var (
	numericLine = regexp.MustCompile(`^[\d\s]+$`)
	bareState   = regexp.MustCompile(`^\p{Lu}{2}$`)
)

var nameRules = []rule{
	{"uppercase", regexp.MustCompile(`^\p{Lu}[\p{Lu}\s]{4,}$`)},
	{"honorific", regexp.MustCompile(`^(?i:srta|sra|sr|dra|dr)\.?\s+\p{L}[\p{L}\s]*$`)},
	{"title-case", regexp.MustCompile(`^\p{Lu}\p{Ll}+(?:\s+\p{Lu}\p{Ll}+){1,3}$`)},
}

var addressRules = []rule{
	{"street", regexp.MustCompile(`(?i)\b(?:rua|avenida|av|alameda|al|travessa|tv|rodovia|rod|estrada|est)\b.*\d`)},
	{"numbered", regexp.MustCompile(`^\d+[^\p{L}\d]*\p{L}`)},
	{"unit", regexp.MustCompile(`(?i)\b(?:apto|apartamento|bloco|bl|casa|lote|conjunto|cj|sala|andar)(?:\.\s*|\s+)[\p{L}\d]+`)},
	{"district", regexp.MustCompile(`(?i:\b(?:centro|vila|jardim|parque|distrito|bairro|zona))\s+\p{Lu}`)},
	{"state-pair", regexp.MustCompile(`(?:^|[^\p{L}])\p{Lu}{2}\s*/\s*\p{Lu}{2}(?:$|[^\p{L}])`)},
	{"postal-code", postalCode},
}

// Cleanup patterns used when building the final strings.
var (
	postalCode     = regexp.MustCompile(`(?i)\bcep\b[\s:.]*\d{5}-?\d{3}`)
	honorific      = regexp.MustCompile(`^(?i:srta|sra|sr|dra|dr)\.?\s+`)
	repeatedCommas = regexp.MustCompile(`,(?:\s*,)+`)
	spaceBefore    = regexp.MustCompile(`\s+,`)
	stateSuffix    = regexp.MustCompile(`\s*[-/]\s*\p{Lu}{2}$`)
	statePair      = regexp.MustCompile(`(?:^|[\s,-]+)\p{Lu}{2}\s*/\s*\p{Lu}{2}$`)
)

func matching(rules []rule, s string) []string {
	var names []string
	for _, r := range rules {
		if r.re.MatchString(s) {
			names = append(names, r.name)
		}
	}
	return names
}
