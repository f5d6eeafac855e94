package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// collapseSpace trims s and replaces every run of whitespace with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleCase capitalizes the first letter of every word and lowercases the rest.
// A cases.Caser is stateful, so one is built per call to keep Classify reentrant.
func titleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// isAllUpper reports whether s has letters and none of them is lowercase.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// normalizeName turns a raw name line into "Given Family" form.
func normalizeName(line string) string {
	name := honorific.ReplaceAllString(collapseSpace(line), "")
	return titleCase(collapseSpace(name))
}

// normalizeAddress joins address lines and cleans up label artifacts:
// the CEP token, doubled commas and a trailing state abbreviation or
// "SP / RJ" style state pair.
// Addresses printed entirely in capitals are converted to Title Case.
func normalizeAddress(lines []string) string {
	addr := strings.Join(lines, ", ")
	addr = postalCode.ReplaceAllString(addr, "")
	addr = collapseSpace(addr)
	addr = spaceBefore.ReplaceAllString(addr, ",")
	addr = repeatedCommas.ReplaceAllString(addr, ",")
	addr = strings.Trim(addr, " ,-/")
	addr = statePair.ReplaceAllString(addr, "")
	addr = stateSuffix.ReplaceAllString(addr, "")
	addr = strings.Trim(addr, " ,-/")
	if isAllUpper(addr) {
		addr = titleCase(addr)
	}
	return addr
}
