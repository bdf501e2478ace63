package forms

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ClusterLabs/striker-testinput/pkg/testinput"
)

// Form is a named set of input batches.
type Form struct {
	ID    string
	Title string
	Build func() *testinput.Batches
}

// Field describes one input of a form.
type Field struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Fields lists the form inputs in evaluation order.
func (f Form) Fields() []Field {
	batches := f.Build()
	fields := make([]Field, 0, batches.Len())
	for _, id := range batches.IDs() {
		b, _ := batches.Get(id)
		fields = append(fields, Field{ID: id, Label: b.Label, Required: b.IsRequired()})
	}
	return fields
}

// Registry is a concurrency-safe set of forms keyed by id.
type Registry struct {
	mu    sync.RWMutex
	forms map[string]Form
}

// NewRegistry registers forms and panics on an invalid or duplicate form.
func NewRegistry(forms ...Form) *Registry {
	r := &Registry{forms: make(map[string]Form, len(forms))}
	for _, f := range forms {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Register(f Form) error {
	if f.ID == "" || f.Build == nil {
		return fmt.Errorf("%w: id and build function are required", ErrInvalidForm)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.forms[f.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateForm, f.ID)
	}
	r.forms[f.ID] = f
	return nil
}

func (r *Registry) Get(id string) (Form, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.forms[id]
	return f, ok
}

// List returns the forms ordered by id.
func (r *Registry) List() []Form {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.SortedFunc(maps.Values(r.forms), func(a, b Form) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// Validate runs the form's batches against values. Every batch of the form
// runs, so missing required inputs fail.
func (r *Registry) Validate(formID string, values map[string]any, opts ...testinput.Option) (testinput.Result, error) {
	f, ok := r.Get(formID)
	if !ok {
		return testinput.Result{}, fmt.Errorf("%w: %s", ErrUnknownForm, formID)
	}

	req := testinput.Request{
		Inputs:              make(map[string]testinput.Input, len(values)),
		IsContinueOnFailure: true,
		IsTestAll:           true,
	}
	for id, v := range values {
		req.Inputs[id] = testinput.Input{Value: v}
	}
	return testinput.Run(f.Build(), req, opts...), nil
}

// IsUnknownForm reports whether err was caused by a missing form.
func IsUnknownForm(err error) bool {
	return errors.Is(err, ErrUnknownForm)
}
