package i18n

import "errors"

var (
	ErrNoTranslations   = errors.New("no translations loaded")
	ErrParseTranslation = errors.New("failed to parse translations")
)
