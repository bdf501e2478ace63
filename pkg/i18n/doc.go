// Package i18n translates message keys such as "validation.required" into
// the language negotiated from an Accept-Language header.
//
// Translations are YAML documents keyed by language, with nested maps
// flattened into dotted keys:
//
//	ja:
//	  validation:
//	    required: "%{field}は必須です。"
//
// Templates use named %{param} placeholders. Unknown placeholders are left
// as written. A Translator is immutable once built and safe for concurrent
// use.
package i18n
