package testinput

import (
	"slices"

	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

// Test is one primitive plus the description reported when it fails.
type Test struct {
	ID             string
	Check          validator.Primitive
	Message        string
	TranslationKey string

	// Describe, when set, builds the failure message from the resolved
	// arguments and takes precedence over Message.
	Describe func(validator.Args) string
}

func (t Test) run(args validator.Args) TestResult {
	// A test without a check constrains nothing.
	passed := t.Check == nil || t.Check(args)
	res := TestResult{ID: t.ID, Passed: passed}
	if !passed {
		res.Message = t.describe(args)
		res.TranslationKey = t.TranslationKey
	}
	return res
}

func (t Test) describe(args validator.Args) string {
	if t.Describe != nil {
		return t.Describe(args)
	}
	return t.Message
}

// Defaults are the values a batch falls back to when a run request does
// not override them. GetValue and GetCompare win over Value and Compare.
type Defaults struct {
	Value      any
	GetValue   func() any
	Min        *float64
	Max        *float64
	Compare    []any
	GetCompare func() []any
	DisplayMin string
	DisplayMax string
}

// Batch is an ordered list of tests for one logical input.
type Batch struct {
	Label string

	// IsOptional marks an input that may be left blank. When the resolved
	// value is blank the required tests of an optional batch are skipped
	// and the batch passes; optional tests still run.
	IsOptional bool

	Defaults      Defaults
	Tests         []Test
	OptionalTests []Test
}

// IsRequired reports whether the input must be filled in.
func (b *Batch) IsRequired() bool {
	return !b.IsOptional
}

func (b *Batch) resolve(in Input) validator.Args {
	d := b.Defaults
	args := validator.Args{
		Value:      d.Value,
		Min:        d.Min,
		Max:        d.Max,
		Compare:    d.Compare,
		DisplayMin: d.DisplayMin,
		DisplayMax: d.DisplayMax,
	}
	if d.GetValue != nil {
		args.Value = d.GetValue()
	}
	if d.GetCompare != nil {
		args.Compare = d.GetCompare()
	}

	if in.Value != nil {
		args.Value = in.Value
	}
	if in.Min != nil {
		args.Min = in.Min
		args.DisplayMin = in.DisplayMin
	}
	if in.Max != nil {
		args.Max = in.Max
		args.DisplayMax = in.DisplayMax
	}
	if in.Compare != nil {
		args.Compare = in.Compare
	}
	return args
}

// Batches is a collection of batches keyed by id that remembers insertion
// order. Evaluation and notification follow that order.
type Batches struct {
	ids   []string
	items map[string]*Batch
}

// NewBatches returns an empty collection.
func NewBatches() *Batches {
	return &Batches{items: make(map[string]*Batch)}
}

// Set registers batch under id. Replacing an existing id keeps its position.
func (b *Batches) Set(id string, batch *Batch) *Batches {
	if b.items == nil {
		b.items = make(map[string]*Batch)
	}
	if _, ok := b.items[id]; !ok {
		b.ids = append(b.ids, id)
	}
	b.items[id] = batch
	return b
}

func (b *Batches) Get(id string) (*Batch, bool) {
	if b == nil {
		return nil, false
	}
	batch, ok := b.items[id]
	return batch, ok
}

func (b *Batches) Delete(id string) {
	if _, ok := b.items[id]; !ok {
		return
	}
	delete(b.items, id)
	b.ids = slices.DeleteFunc(b.ids, func(v string) bool { return v == id })
}

// IDs returns the registered ids in insertion order.
func (b *Batches) IDs() []string {
	if b == nil {
		return nil
	}
	return slices.Clone(b.ids)
}

func (b *Batches) Len() int {
	if b == nil {
		return 0
	}
	return len(b.ids)
}
