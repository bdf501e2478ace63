package forms

import (
	"embed"

	"github.com/ClusterLabs/striker-testinput/pkg/i18n"
	"github.com/ClusterLabs/striker-testinput/pkg/testinput"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translations loads the bundled failure message translations. English
// messages come from the builders and need no catalogue.
func Translations() (*i18n.Translator, error) {
	return i18n.LoadFS(locales, "locales")
}

// Localize rewrites failure messages of res into lang. Messages without a
// translation keep their original text.
func Localize(tr *i18n.Translator, lang string, res *testinput.Result) {
	if tr == nil || res == nil {
		return
	}
	for i := range res.Batches {
		b := &res.Batches[i]
		params := map[string]string{
			"field": b.Label,
			"min":   testinput.DisplayBound(b.Args.DisplayMin, b.Args.Min),
			"max":   testinput.DisplayBound(b.Args.DisplayMax, b.Args.Max),
		}
		localizeTests(tr, lang, params, b.Tests)
		localizeTests(tr, lang, params, b.Optional)
	}
}

func localizeTests(tr *i18n.Translator, lang string, params map[string]string, tests []testinput.TestResult) {
	for i := range tests {
		t := &tests[i]
		if t.Passed || t.TranslationKey == "" {
			continue
		}
		if msg, ok := tr.Lookup(lang, t.TranslationKey, params); ok {
			t.Message = msg
		}
	}
}
