package i18n

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// Translator holds flattened templates per language.
type Translator struct {
	defaultLang string
	messages    map[string]map[string]string
}

type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation fails and
// the fallback for missing keys.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// New builds a Translator from language-keyed nested maps.
func New(data map[string]map[string]any, opts ...Option) (*Translator, error) {
	t := &Translator{
		defaultLang: DefaultLanguage,
		messages:    make(map[string]map[string]string, len(data)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for lang, tree := range data {
		flat := make(map[string]string)
		if err := flatten("", tree, flat); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParseTranslation, lang, err)
		}
		t.messages[lang] = flat
	}
	if len(t.messages) == 0 {
		return nil, ErrNoTranslations
	}
	return t, nil
}

// Parse decodes one YAML translation document.
func Parse(r io.Reader) (map[string]map[string]any, error) {
	data := make(map[string]map[string]any)
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParseTranslation, err)
	}
	return data, nil
}

// LoadFS reads every *.yaml file in dir and merges them by language.
func LoadFS(fsys fs.FS, dir string, opts ...Option) (*Translator, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, errors.Join(ErrParseTranslation, err)
	}

	merged := make(map[string]map[string]any)
	for _, name := range names {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, errors.Join(ErrParseTranslation, err)
		}
		data, err := Parse(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, tree := range data {
			if merged[lang] == nil {
				merged[lang] = make(map[string]any)
			}
			maps.Copy(merged[lang], tree)
		}
	}
	return New(merged, opts...)
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: expected string or map, got %T", key, v)
		}
	}
	return nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Languages returns the loaded languages, sorted.
func (t *Translator) Languages() []string {
	return slices.Sorted(maps.Keys(t.messages))
}

// Negotiate picks a language for an Accept-Language header. The default
// language competes with the loaded ones even without a catalogue of its
// own, since untranslated messages are already written in it.
func (t *Translator) Negotiate(acceptLanguage string) string {
	return ParseAcceptLanguage(acceptLanguage, t.Languages(), t.defaultLang)
}

// Lookup renders key in lang without any fallback.
func (t *Translator) Lookup(lang, key string, params map[string]string) (string, bool) {
	tmpl, ok := t.messages[lang][key]
	if !ok {
		return "", false
	}
	return render(tmpl, params), true
}

// T renders key in lang, then in the default language, then returns key.
func (t *Translator) T(lang, key string, params map[string]string) string {
	if msg, ok := t.Lookup(lang, key, params); ok {
		return msg
	}
	if msg, ok := t.Lookup(t.defaultLang, key, params); ok {
		return msg
	}
	return key
}

func render(tmpl string, params map[string]string) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
