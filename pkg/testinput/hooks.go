package testinput

import "github.com/ClusterLabs/striker-testinput/pkg/validator"

// Failure describes a failed test as reported to Hooks.OnFailure.
type Failure struct {
	BatchID        string
	Label          string
	TestID         string
	Message        string
	TranslationKey string
	Args           validator.Args
	Optional       bool
}

func newFailure(b BatchResult, t TestResult, optional bool) Failure {
	return Failure{
		BatchID:        b.ID,
		Label:          b.Label,
		TestID:         t.ID,
		Message:        t.Message,
		TranslationKey: t.TranslationKey,
		Args:           b.Args,
		Optional:       optional,
	}
}

// Hooks receive the outcome of a run. Any field may be nil.
//
// For each executed batch, in order: optional tests, then required tests,
// each producing OnFailure or OnSuccess, then one OnFinishBatch.
type Hooks struct {
	OnFailure     func(Failure)
	OnSuccess     func(batchID, testID string)
	OnFinishBatch func(batchID, label string, ok bool)
}

// Notify replays r into h. Batches whose input asked to ignore callbacks are
// skipped.
func (r Result) Notify(h Hooks) {
	for _, b := range r.Batches {
		if b.ignoreHooks {
			continue
		}
		for _, t := range b.Optional {
			h.report(b, t, true)
		}
		for _, t := range b.Tests {
			h.report(b, t, false)
		}
		if h.OnFinishBatch != nil {
			h.OnFinishBatch(b.ID, b.Label, b.OK)
		}
	}
}

func (h Hooks) report(b BatchResult, t TestResult, optional bool) {
	if t.Passed {
		if h.OnSuccess != nil {
			h.OnSuccess(b.ID, t.ID)
		}
		return
	}
	if h.OnFailure != nil {
		h.OnFailure(newFailure(b, t, optional))
	}
}
