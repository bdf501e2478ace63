package testinput_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClusterLabs/striker-testinput/pkg/testinput"
	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

// recorder collects hook calls as readable strings.
type recorder struct {
	calls []string
}

func (r *recorder) hooks() testinput.Hooks {
	return testinput.Hooks{
		OnFailure: func(f testinput.Failure) {
			r.calls = append(r.calls, fmt.Sprintf("failure %s/%s: %s", f.BatchID, f.TestID, f.Message))
		},
		OnSuccess: func(batchID, testID string) {
			r.calls = append(r.calls, fmt.Sprintf("success %s/%s", batchID, testID))
		},
		OnFinishBatch: func(batchID, _ string, ok bool) {
			r.calls = append(r.calls, fmt.Sprintf("finish %s %t", batchID, ok))
		},
	}
}

func (r *recorder) failures() []string {
	var out []string
	for _, c := range r.calls {
		if strings.HasPrefix(c, "failure ") {
			out = append(out, c)
		}
	}
	return out
}

func alwaysFails(id string) testinput.Test {
	return testinput.Test{
		ID:      id,
		Check:   func(validator.Args) bool { return false },
		Message: id + " failed",
	}
}

func TestTestInput_IPv4Gateway(t *testing.T) {
	t.Parallel()

	newBatches := func() *testinput.Batches {
		return testinput.NewBatches().Set("ip", testinput.BuildIPv4Batch("Gateway"))
	}

	t.Run("valid address passes without failures", func(t *testing.T) {
		rec := &recorder{}
		ok := testinput.TestInput(newBatches(), testinput.Request{
			Inputs: map[string]testinput.Input{"ip": {Value: "10.0.0.1"}},
		}, testinput.WithHooks(rec.hooks()))

		assert.True(t, ok)
		assert.Empty(t, rec.failures())
		assert.Equal(t, []string{
			"success ip/not-blank",
			"success ip/pattern",
			"finish ip true",
		}, rec.calls)
	})

	t.Run("invalid address fails once mentioning the label", func(t *testing.T) {
		rec := &recorder{}
		var got []testinput.Failure
		hooks := rec.hooks()
		onFailure := hooks.OnFailure
		hooks.OnFailure = func(f testinput.Failure) {
			got = append(got, f)
			onFailure(f)
		}

		ok := testinput.TestInput(newBatches(), testinput.Value("ip", "not-an-ip"), testinput.WithHooks(hooks))

		assert.False(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, testinput.TestPattern, got[0].TestID)
		assert.Contains(t, got[0].Message, "Gateway")
		assert.Equal(t, "not-an-ip", got[0].Args.Value)
		assert.Equal(t, "validation.ipv4", got[0].TranslationKey)
	})
}

func TestTestInput_IndependentBatches(t *testing.T) {
	t.Parallel()

	batches := testinput.NewBatches().
		Set("name", testinput.BuildNotBlankBatch("Name")).
		Set("age", testinput.BuildNumberBatch("Age", 0, 120))

	rec := &recorder{}
	ok := testinput.TestInput(batches, testinput.Request{
		Inputs: map[string]testinput.Input{
			"name": {Value: ""},
			"age":  {Value: 200},
		},
	}, testinput.WithHooks(rec.hooks()))

	assert.False(t, ok)
	assert.Equal(t, []string{
		"failure name/not-blank: Name is required.",
		"failure age/range: Age is expected to be between 0 and 120.",
	}, rec.failures())
	assert.Equal(t, "finish age false", rec.calls[len(rec.calls)-1])
}

func TestTestInput_ContinueOnFailure(t *testing.T) {
	t.Parallel()

	newBatches := func() *testinput.Batches {
		return testinput.NewBatches().Set("field", &testinput.Batch{
			Label: "Field",
			Tests: []testinput.Test{alwaysFails("a"), alwaysFails("b")},
		})
	}

	t.Run("stops at first failure by default", func(t *testing.T) {
		rec := &recorder{}
		ok := testinput.TestInput(newBatches(), testinput.Request{}, testinput.WithHooks(rec.hooks()))
		assert.False(t, ok)
		assert.Equal(t, []string{"failure field/a: a failed"}, rec.failures())
	})

	t.Run("runs every test when asked to continue", func(t *testing.T) {
		rec := &recorder{}
		ok := testinput.TestInput(newBatches(), testinput.Request{IsContinueOnFailure: true}, testinput.WithHooks(rec.hooks()))
		assert.False(t, ok)
		assert.Equal(t, []string{"failure field/a: a failed", "failure field/b: b failed"}, rec.failures())
	})
}

func TestTestInput_Exclusion(t *testing.T) {
	t.Parallel()

	for _, xValue := range []string{"valid", ""} {
		t.Run(fmt.Sprintf("x=%q", xValue), func(t *testing.T) {
			batches := testinput.NewBatches().
				Set("x", testinput.BuildNotBlankBatch("X", testinput.WithValue(xValue))).
				Set("y", testinput.BuildNotBlankBatch("Y", testinput.WithValue("valid")))

			rec := &recorder{}
			res := testinput.Run(batches, testinput.Request{ExcludeTestIDs: []string{"x"}}, testinput.WithHooks(rec.hooks()))

			assert.True(t, res.OK)
			assert.Equal(t, []string{"y"}, res.IDs())
			assert.Equal(t, []string{"success y/not-blank", "finish y true"}, rec.calls)
		})
	}

	t.Run("by pattern", func(t *testing.T) {
		batches := testinput.NewBatches().
			Set("dns1", testinput.BuildIPv4Batch("DNS 1")).
			Set("dns2", testinput.BuildIPv4Batch("DNS 2")).
			Set("gateway", testinput.BuildIPv4Batch("Gateway", testinput.WithValue("10.0.0.1")))

		res := testinput.Evaluate(batches, testinput.Request{ExcludeTestIDsPattern: regexp.MustCompile(`^dns`)})
		assert.True(t, res.OK)
		assert.Equal(t, []string{"gateway"}, res.IDs())
	})
}

func TestTestInput_Selection(t *testing.T) {
	t.Parallel()

	batches := testinput.NewBatches().
		Set("a", testinput.BuildNotBlankBatch("A")).
		Set("b", testinput.BuildNotBlankBatch("B")).
		Set("c", testinput.BuildNotBlankBatch("C"))

	t.Run("no inputs runs every batch in insertion order", func(t *testing.T) {
		res := testinput.Evaluate(batches, testinput.Request{})
		assert.Equal(t, []string{"a", "b", "c"}, res.IDs())
		assert.False(t, res.OK)
	})

	t.Run("inputs restrict the run", func(t *testing.T) {
		res := testinput.Evaluate(batches, testinput.Request{Inputs: map[string]testinput.Input{
			"c": {Value: "x"},
			"a": {Value: "x"},
		}})
		assert.Equal(t, []string{"a", "c"}, res.IDs())
		assert.True(t, res.OK)
	})

	t.Run("test all keeps overrides", func(t *testing.T) {
		res := testinput.Evaluate(batches, testinput.Request{
			Inputs:    map[string]testinput.Input{"b": {Value: "x"}},
			IsTestAll: true,
		})
		assert.Equal(t, []string{"a", "b", "c"}, res.IDs())
		b, ok := res.Batch("b")
		require.True(t, ok)
		assert.True(t, b.OK)
	})

	t.Run("unknown input ids are ignored", func(t *testing.T) {
		res := testinput.Evaluate(batches, testinput.Value("zzz", "x"))
		assert.Empty(t, res.IDs())
		assert.True(t, res.OK)
	})

	t.Run("nil collection passes", func(t *testing.T) {
		assert.True(t, testinput.TestInput(nil, testinput.Request{}))
	})
}

func TestTestInput_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("get value wins over value", func(t *testing.T) {
		current := "an-a01n01"
		batch := testinput.BuildHostnameBatch("Host name",
			testinput.WithValue("bad host"),
			testinput.WithGetValue(func() any { return current }),
		)
		batches := testinput.NewBatches().Set("hostName", batch)

		assert.True(t, testinput.TestInput(batches, testinput.Request{}))
		current = "bad host"
		assert.False(t, testinput.TestInput(batches, testinput.Request{}))
	})

	t.Run("request overrides bounds", func(t *testing.T) {
		batches := testinput.NewBatches().Set("cores", testinput.BuildNumberBatch("CPU cores", 1, 4))

		res := testinput.Evaluate(batches, testinput.Value("cores", 8))
		require.False(t, res.OK)
		assert.Equal(t, "CPU cores is expected to be between 1 and 4.", res.Messages()["cores"])

		res = testinput.Evaluate(batches, testinput.Request{Inputs: map[string]testinput.Input{
			"cores": {Value: 8, Max: validator.Bound(16), DisplayMax: "16 (host limit)"},
		}})
		assert.True(t, res.OK)

		res = testinput.Evaluate(batches, testinput.Request{Inputs: map[string]testinput.Input{
			"cores": {Value: 32, Max: validator.Bound(16), DisplayMax: "16 (host limit)"},
		}})
		assert.Equal(t, "CPU cores is expected to be between 1 and 16 (host limit).", res.Messages()["cores"])
	})

	t.Run("compare values come from the form", func(t *testing.T) {
		names := []any{"bcn1", "ifn1"}
		batches := testinput.NewBatches().Set("networkName", testinput.BuildUniqueBatch("Network name",
			testinput.WithGetCompare(func() []any { return names }),
		))

		assert.True(t, testinput.TestInput(batches, testinput.Value("networkName", "bcn1")))
		names = append(names, "bcn1")
		assert.False(t, testinput.TestInput(batches, testinput.Value("networkName", "bcn1")))
	})
}

func TestTestInput_OptionalTests(t *testing.T) {
	t.Parallel()

	batches := testinput.NewBatches().Set("ntp", testinput.BuildIPv4CSVBatch("NTP",
		testinput.WithOptionalTest(alwaysFails("hint")),
	))

	rec := &recorder{}
	res := testinput.Run(batches, testinput.Value("ntp", "10.0.0.1,10.0.0.2"), testinput.WithHooks(rec.hooks()))

	assert.True(t, res.OK, "optional tests never block")
	assert.Equal(t, []string{
		"failure ntp/hint: hint failed",
		"success ntp/not-blank",
		"success ntp/pattern",
		"finish ntp true",
	}, rec.calls)
	assert.Empty(t, res.Failures())
	assert.NoError(t, res.Err())
}

func TestTestInput_OptionalBatch(t *testing.T) {
	t.Parallel()

	batches := testinput.NewBatches().Set("mac", testinput.BuildMACBatch("MAC address", testinput.WithRequired(false)))

	t.Run("blank value skips required tests", func(t *testing.T) {
		res := testinput.Evaluate(batches, testinput.Request{})
		assert.True(t, res.OK)
		b, _ := res.Batch("mac")
		assert.True(t, b.SkippedBlank)
		assert.Empty(t, b.Tests)
	})

	t.Run("filled value is still checked", func(t *testing.T) {
		res := testinput.Evaluate(batches, testinput.Value("mac", "52:54:00"))
		assert.False(t, res.OK)
		assert.Equal(t, "MAC address must be a valid MAC address.", res.Messages()["mac"])
	})

	t.Run("is required reflects the option", func(t *testing.T) {
		b, _ := batches.Get("mac")
		assert.False(t, b.IsRequired())
		assert.True(t, testinput.BuildMACBatch("MAC").IsRequired())
	})
}

func TestTestInput_IgnoreCallbacks(t *testing.T) {
	t.Parallel()

	batches := testinput.NewBatches().
		Set("gateway", testinput.BuildIPv4Batch("Gateway")).
		Set("dns", testinput.BuildIPv4CSVBatch("DNS"))
	req := testinput.Request{
		Inputs: map[string]testinput.Input{
			"gateway": {Value: "10.0.0.999"},
			"dns":     {Value: "8.8.8.8"},
		},
		IsIgnoreOnCallbacks: true,
	}

	rec := &recorder{}
	first := testinput.TestInput(batches, req, testinput.WithHooks(rec.hooks()))
	second := testinput.TestInput(batches, req, testinput.WithHooks(rec.hooks()))

	assert.False(t, first)
	assert.Equal(t, first, second)
	assert.Empty(t, rec.calls)

	t.Run("per input", func(t *testing.T) {
		rec := &recorder{}
		req := testinput.Request{Inputs: map[string]testinput.Input{
			"gateway": {Value: "10.0.0.999", IsIgnoreOnCallbacks: true},
			"dns":     {Value: "8.8.8.8"},
		}}
		assert.False(t, testinput.TestInput(batches, req, testinput.WithHooks(rec.hooks())))
		assert.Equal(t, []string{"success dns/not-blank", "success dns/pattern", "finish dns true"}, rec.calls)
	})
}

func TestTestInput_Idempotent(t *testing.T) {
	t.Parallel()

	batches := testinput.NewBatches().
		Set("prefix", testinput.BuildOrganizationPrefixBatch("Prefix")).
		Set("sequence", testinput.BuildNumberBatch("Sequence", 1, 99))
	req := testinput.Request{Inputs: map[string]testinput.Input{
		"prefix":   {Value: "TOOLONG"},
		"sequence": {Value: "7"},
	}}

	first, second := &recorder{}, &recorder{}
	r1 := testinput.Run(batches, req, testinput.WithHooks(first.hooks()))
	r2 := testinput.Run(batches, req, testinput.WithHooks(second.hooks()))

	assert.Equal(t, first.calls, second.calls)
	if diff := cmp.Diff(r1, r2, cmpopts.IgnoreUnexported(testinput.BatchResult{})); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
}

func TestNewTestInputFunction(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	test := testinput.NewTestInputFunction(
		testinput.NewBatches().Set("uuid", testinput.BuildUUIDBatch("Storage group")),
		testinput.WithHooks(rec.hooks()),
	)

	assert.True(t, test(testinput.Value("uuid", "2f3b4e91-6d2a-4c8f-9b1e-7a5d0c3e8f21")))
	assert.False(t, test(testinput.Value("uuid", "2f3b4e91")))
	assert.Equal(t, []string{"failure uuid/uuid: Storage group must be a valid UUID."}, rec.failures())
}

func TestRun_Logger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	testinput.Run(
		testinput.NewBatches().Set("gateway", testinput.BuildIPv4Batch("Gateway")),
		testinput.Value("gateway", "nope"),
		testinput.WithLogger(log),
		testinput.WithLogger(nil),
	)

	out := buf.String()
	assert.Contains(t, out, "input test batch finished")
	assert.Contains(t, out, "batch_id=gateway")
	assert.Contains(t, out, "ok=false")
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	batches := testinput.NewBatches().
		Set("hostNumber", testinput.BuildNumberBatch("Host number", 1, 99)).
		Set("domainName", testinput.BuildDomainBatch("Domain name"))

	res := testinput.Evaluate(batches, testinput.Request{Inputs: map[string]testinput.Input{
		"hostNumber": {Value: "100"},
		"domainName": {Value: "alteeve.com"},
	}})

	err := res.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, validator.ValidationError{
		Field:          "hostNumber",
		Message:        "Host number is expected to be between 1 and 99.",
		TranslationKey: "validation.range",
		TranslationValues: map[string]any{
			"field": "Host number",
			"min":   1.0,
			"max":   99.0,
		},
	}, verrs[0])

	assert.Equal(t, map[string]string{"hostNumber": "Host number is expected to be between 1 and 99."}, res.Messages())
}
