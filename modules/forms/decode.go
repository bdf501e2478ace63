package forms

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeInputs reads a YAML mapping of form id to field values:
//
//	server:
//	  name: srv01-web
//	  cpuCores: 4
//
// An empty document yields an empty map.
func DecodeInputs(r io.Reader) (map[string]map[string]any, error) {
	docs := make(map[string]map[string]any)
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrDecodeInputs, err)
	}
	return docs, nil
}
