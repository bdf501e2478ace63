package testinput

import (
	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

// TestResult is the outcome of one executed test.
type TestResult struct {
	ID             string `json:"id"`
	Passed         bool   `json:"passed"`
	Message        string `json:"message,omitempty"`
	TranslationKey string `json:"translationKey,omitempty"`
}

// BatchResult is the outcome of one executed batch. Required tests after
// the first failure are absent unless the run continued on failure.
type BatchResult struct {
	ID           string         `json:"id"`
	Label        string         `json:"label,omitempty"`
	OK           bool           `json:"ok"`
	SkippedBlank bool           `json:"skippedBlank,omitempty"`
	Tests        []TestResult   `json:"tests"`
	Optional     []TestResult   `json:"optional,omitempty"`
	Args         validator.Args `json:"-"`

	ignoreHooks bool
}

// Failed returns the failing required tests of the batch.
func (b BatchResult) Failed() []TestResult {
	var failed []TestResult
	for _, t := range b.Tests {
		if !t.Passed {
			failed = append(failed, t)
		}
	}
	return failed
}

// Result is the outcome of a run. OK is true iff every required test of
// every executed batch passed.
type Result struct {
	OK      bool          `json:"ok"`
	Batches []BatchResult `json:"batches"`
}

// Batch returns the result of the batch with the given id.
func (r Result) Batch(id string) (BatchResult, bool) {
	for _, b := range r.Batches {
		if b.ID == id {
			return b, true
		}
	}
	return BatchResult{}, false
}

// IDs returns the executed batch ids in run order.
func (r Result) IDs() []string {
	ids := make([]string, 0, len(r.Batches))
	for _, b := range r.Batches {
		ids = append(ids, b.ID)
	}
	return ids
}

// Failures lists every failing required test in run order.
func (r Result) Failures() []Failure {
	var out []Failure
	for _, b := range r.Batches {
		for _, t := range b.Failed() {
			out = append(out, newFailure(b, t, false))
		}
	}
	return out
}

// Messages maps each failing batch id to its first failure message.
func (r Result) Messages() map[string]string {
	msgs := make(map[string]string)
	for _, b := range r.Batches {
		if failed := b.Failed(); len(failed) > 0 {
			msgs[b.ID] = failed[0].Message
		}
	}
	return msgs
}

// Err converts the failures into validator.ValidationErrors, or returns nil
// when the run passed.
func (r Result) Err() error {
	if r.OK {
		return nil
	}

	var errs validator.ValidationErrors
	for _, f := range r.Failures() {
		values := map[string]any{"field": f.Label}
		if f.Args.Min != nil {
			values["min"] = *f.Args.Min
		}
		if f.Args.Max != nil {
			values["max"] = *f.Args.Max
		}
		errs.Add(validator.ValidationError{
			Field:             f.BatchID,
			Message:           f.Message,
			TranslationKey:    f.TranslationKey,
			TranslationValues: values,
		})
	}
	if errs.IsEmpty() {
		return validator.ErrValidationFailed
	}
	return errs
}
