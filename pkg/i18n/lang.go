package i18n

import (
	"slices"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when negotiation finds no supported language.
const DefaultLanguage = "en"

// Oversized headers are truncated rather than rejected.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best language for header among fallback and
// supported. The fallback is always a candidate, so a client preferring it
// over a supported language gets it. Regional tags match their base
// language ("ja-JP" selects "ja"). The returned value is the candidate as
// written in supported.
func ParseAcceptLanguage(header string, supported []string, fallback string) string {
	if header == "" {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	names := make([]string, 0, len(supported)+1)
	tags := make([]language.Tag, 0, len(supported)+1)
	for _, name := range append([]string{fallback}, supported...) {
		if name == "" || slices.Contains(names, name) {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		names = append(names, name)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return fallback
	}
	return names[idx]
}
