package testinput

import (
	"fmt"
	"regexp"

	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

// Test ids used by the builders; pass them to WithMessage.
const (
	TestNotBlank = "not-blank"
	TestPattern  = "pattern"
	TestNumber   = "number"
	TestRange    = "range"
	TestUUID     = "uuid"
	TestUnique   = "unique"
)

func newBatch(label string, tests []Test, opts []BatchOption) *Batch {
	b := &Batch{Label: label, Tests: tests}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func notBlankTest(label string) Test {
	return Test{
		ID:             TestNotBlank,
		Check:          validator.NotBlank,
		Message:        fmt.Sprintf("%s is required.", label),
		TranslationKey: "validation.required",
	}
}

func patternTest(re *regexp.Regexp, key, message string) Test {
	return Test{
		ID:             TestPattern,
		Check:          validator.Match(re),
		Message:        message,
		TranslationKey: key,
	}
}

func patternBatch(label string, re *regexp.Regexp, key, message string, opts []BatchOption) *Batch {
	return newBatch(label, []Test{
		notBlankTest(label),
		patternTest(re, key, message),
	}, opts)
}

// BuildNotBlankBatch requires the input to be filled in.
func BuildNotBlankBatch(label string, opts ...BatchOption) *Batch {
	return newBatch(label, []Test{notBlankTest(label)}, opts)
}

// BuildPeacefulStringBatch requires a value free of quotes, angle brackets
// and backticks.
func BuildPeacefulStringBatch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.PeacefulStringPattern, "validation.peaceful_string",
		fmt.Sprintf("%s cannot contain single-quote, double-quote, angle brackets or backticks.", label), opts)
}

// BuildNumberBatch requires a number within [min, max].
func BuildNumberBatch(label string, min, max float64, opts ...BatchOption) *Batch {
	tests := []Test{
		notBlankTest(label),
		{
			ID:             TestNumber,
			Check:          validator.Number,
			Message:        fmt.Sprintf("%s must be a number.", label),
			TranslationKey: "validation.number",
		},
		{
			ID:             TestRange,
			Check:          validator.Range,
			TranslationKey: "validation.range",
			Describe: func(a validator.Args) string {
				return fmt.Sprintf("%s is expected to be between %s and %s.",
					label, DisplayBound(a.DisplayMin, a.Min), DisplayBound(a.DisplayMax, a.Max))
			},
		},
	}
	return newBatch(label, tests, append([]BatchOption{WithMin(min), WithMax(max)}, opts...))
}

// BuildIPv4Batch requires a dotted-quad IPv4 address.
func BuildIPv4Batch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.IPv4Pattern, "validation.ipv4",
		fmt.Sprintf("%s should be a valid IPv4 address.", label), opts)
}

// BuildIPv4CSVBatch requires a comma separated list of IPv4 addresses.
func BuildIPv4CSVBatch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.IPv4CSVPattern, "validation.ipv4_csv",
		fmt.Sprintf("%s should be a comma-separated list of IPv4 addresses.", label), opts)
}

// BuildUUIDBatch requires a canonical UUID.
func BuildUUIDBatch(label string, opts ...BatchOption) *Batch {
	return newBatch(label, []Test{
		notBlankTest(label),
		{
			ID:             TestUUID,
			Check:          validator.UUID,
			Message:        fmt.Sprintf("%s must be a valid UUID.", label),
			TranslationKey: "validation.uuid",
		},
	}, opts)
}

// BuildMACBatch requires a MAC address.
func BuildMACBatch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.MACPattern, "validation.mac",
		fmt.Sprintf("%s must be a valid MAC address.", label), opts)
}

// BuildDomainBatch requires a domain name.
func BuildDomainBatch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.DomainPattern, "validation.domain",
		fmt.Sprintf("%s should be a valid domain name.", label), opts)
}

// BuildHostnameBatch requires a short or fully qualified host name.
func BuildHostnameBatch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.HostnamePattern, "validation.hostname",
		fmt.Sprintf("%s should be a valid hostname.", label), opts)
}

// BuildOrganizationPrefixBatch requires 1 to 5 lowercase alphanumerics.
func BuildOrganizationPrefixBatch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.OrganizationPrefixPattern, "validation.organization_prefix",
		fmt.Sprintf("%s can only contain 1 to 5 lowercase alphanumeric characters.", label), opts)
}

// BuildEmailBatch requires an e-mail address.
func BuildEmailBatch(label string, opts ...BatchOption) *Batch {
	return patternBatch(label, validator.EmailPattern, "validation.email",
		fmt.Sprintf("%s must be a valid email address.", label), opts)
}

// BuildUniqueBatch requires a value that appears at most once among the
// compare values, e.g. a network name among all configured networks.
func BuildUniqueBatch(label string, opts ...BatchOption) *Batch {
	return newBatch(label, []Test{
		notBlankTest(label),
		{
			ID:             TestUnique,
			Check:          validator.Unique,
			Message:        fmt.Sprintf("%s must be unique.", label),
			TranslationKey: "validation.unique",
		},
	}, opts)
}

// DisplayBound renders a range bound for messages: the display text when
// set, else the formatted number, else "any".
func DisplayBound(display string, bound *float64) string {
	if display != "" {
		return display
	}
	if bound == nil {
		return "any"
	}
	return validator.FormatBound(bound)
}
