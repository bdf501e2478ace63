package testinput

import "regexp"

// Input overrides the defaults of one batch for a single run.
// Zero fields fall back to the batch defaults.
type Input struct {
	Value      any      `json:"value,omitempty" yaml:"value,omitempty"`
	Min        *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max        *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Compare    []any    `json:"compare,omitempty" yaml:"compare,omitempty"`
	DisplayMin string   `json:"displayMin,omitempty" yaml:"displayMin,omitempty"`
	DisplayMax string   `json:"displayMax,omitempty" yaml:"displayMax,omitempty"`

	// IsIgnoreOnCallbacks silences hooks for this batch only.
	IsIgnoreOnCallbacks bool `json:"isIgnoreOnCallbacks,omitempty" yaml:"isIgnoreOnCallbacks,omitempty"`
}

// Request describes one validation run.
//
// With no Inputs (or IsTestAll) every registered batch runs; otherwise only
// the batches named in Inputs run. Exclusions are applied afterwards.
type Request struct {
	Inputs                map[string]Input
	ExcludeTestIDs        []string
	ExcludeTestIDsPattern *regexp.Regexp
	IsContinueOnFailure   bool
	IsIgnoreOnCallbacks   bool
	IsTestAll             bool
}

// Value is shorthand for a request overriding only the value of one batch.
func Value(id string, v any) Request {
	return Request{Inputs: map[string]Input{id: {Value: v}}}
}

func (r Request) selects(id string) bool {
	if len(r.Inputs) > 0 && !r.IsTestAll {
		if _, ok := r.Inputs[id]; !ok {
			return false
		}
	}
	for _, ex := range r.ExcludeTestIDs {
		if ex == id {
			return false
		}
	}
	if r.ExcludeTestIDsPattern != nil && r.ExcludeTestIDsPattern.MatchString(id) {
		return false
	}
	return true
}
