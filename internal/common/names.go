package common

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// UnknownPlace is the canonical value stored when a city or country is not known.
const UnknownPlace = "Unknown"

// countryAliases maps lower-cased abbreviations to the names used by the
// country boundary layer.
var countryAliases = map[string]string{
	"usa": "united states of america",
	"us":  "united states of america",
	"uk":  "united kingdom",
	"uae": "united arab emirates",
}

// NormalizeCountryName converts a country string into the canonical form
// stored on airports: lower-cased, then each whitespace-delimited token
// starts with an upper-case letter. "of", hyphens and apostrophes are not
// special-cased.
func NormalizeCountryName(raw string) string {
	return titleCaseTokens(raw)
}

// NormalizeCityName applies the same canonicalisation as NormalizeCountryName.
func NormalizeCityName(raw string) string {
	return titleCaseTokens(raw)
}

// NormalizeCountryNamePtr treats a nil value as missing.
func NormalizeCountryNamePtr(raw *string) string {
	if raw == nil {
		return UnknownPlace
	}
	return NormalizeCountryName(*raw)
}

// NormalizeCityNamePtr treats a nil value as missing.
func NormalizeCityNamePtr(raw *string) string {
	if raw == nil {
		return UnknownPlace
	}
	return NormalizeCityName(*raw)
}

// NormalizeCountryAlias produces the key used to match a country against
// boundary data. It is not the stored form and must not replace
// NormalizeCountryName.
func NormalizeCountryAlias(raw string) string {
	lowered := strings.ToLower(raw)
	if alias, ok := countryAliases[lowered]; ok {
		return alias
	}
	return lowered
}

func titleCaseTokens(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return UnknownPlace
	}

	lowered := cases.Lower(language.Und).String(norm.NFC.String(raw))

	var b strings.Builder
	b.Grow(len(lowered))
	atTokenStart := true
	for len(lowered) > 0 {
		r, size := utf8.DecodeRuneInString(lowered)
		lowered = lowered[size:]

		if unicode.IsSpace(r) {
			atTokenStart = true
			b.WriteRune(r)
			continue
		}
		if atTokenStart {
			r = unicode.ToUpper(r)
			atTokenStart = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
