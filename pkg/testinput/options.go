package testinput

// BatchOption customizes a batch produced by a builder. Options run after
// the builder has declared its tests.
type BatchOption func(*Batch)

// WithRequired marks the input as required (the default) or optional.
func WithRequired(required bool) BatchOption {
	return func(b *Batch) { b.IsOptional = !required }
}

func WithValue(v any) BatchOption {
	return func(b *Batch) { b.Defaults.Value = v }
}

// WithGetValue reads the value from the form state at run time.
func WithGetValue(fn func() any) BatchOption {
	return func(b *Batch) { b.Defaults.GetValue = fn }
}

func WithMin(min float64) BatchOption {
	return func(b *Batch) { b.Defaults.Min = &min }
}

func WithMax(max float64) BatchOption {
	return func(b *Batch) { b.Defaults.Max = &max }
}

// WithDisplayRange sets how the bounds are shown in failure messages.
func WithDisplayRange(min, max string) BatchOption {
	return func(b *Batch) {
		b.Defaults.DisplayMin = min
		b.Defaults.DisplayMax = max
	}
}

func WithCompare(values ...any) BatchOption {
	return func(b *Batch) { b.Defaults.Compare = values }
}

func WithGetCompare(fn func() []any) BatchOption {
	return func(b *Batch) { b.Defaults.GetCompare = fn }
}

// WithMessage replaces the failure message of the test with the given id.
func WithMessage(testID, message string) BatchOption {
	return func(b *Batch) {
		for i := range b.Tests {
			if b.Tests[i].ID == testID {
				b.Tests[i].Message = message
				b.Tests[i].Describe = nil
			}
		}
		for i := range b.OptionalTests {
			if b.OptionalTests[i].ID == testID {
				b.OptionalTests[i].Message = message
				b.OptionalTests[i].Describe = nil
			}
		}
	}
}

// WithTest appends a required test.
func WithTest(t Test) BatchOption {
	return func(b *Batch) { b.Tests = append(b.Tests, t) }
}

// WithOptionalTest appends an optional test.
func WithOptionalTest(t Test) BatchOption {
	return func(b *Batch) { b.OptionalTests = append(b.OptionalTests, t) }
}
