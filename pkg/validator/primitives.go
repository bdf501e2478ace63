package validator

import (
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
)

// NotBlank passes when the value is truthy and renders to a non-empty string.
func NotBlank(a Args) bool {
	if !Truthy(a.Value) {
		return false
	}
	return len(String(a.Value)) > 0
}

// Range passes when the value is truthy, numeric and within [Min, Max].
// A nil bound does not constrain its side.
func Range(a Args) bool {
	if !Truthy(a.Value) {
		return false
	}
	n, ok := ToNumber(a.Value)
	if !ok {
		return false
	}
	return inBounds(n, a.Min, a.Max)
}

// Length passes when the rune count of the value is within [Min, Max].
//
// Deprecated: kept for older forms; prefer Range on a numeric value or a
// dedicated pattern.
func Length(a Args) bool {
	return inBounds(float64(utf8.RuneCountInString(String(a.Value))), a.Min, a.Max)
}

// Min passes when the numeric value is at least Min; a nil Min passes.
func Min(a Args) bool {
	if a.Min == nil {
		return true
	}
	n, ok := ToNumber(a.Value)
	return ok && n >= *a.Min
}

// Max passes when the numeric value is at most Max; a nil Max passes.
func Max(a Args) bool {
	if a.Max == nil {
		return true
	}
	n, ok := ToNumber(a.Value)
	return ok && n <= *a.Max
}

// Number passes when the value coerces to a number.
func Number(a Args) bool {
	_, ok := ToNumber(a.Value)
	return ok
}

// Unique passes when the value occurs at most once in Compare.
// Compare may include the value under test itself.
func Unique(a Args) bool {
	s := String(a.Value)
	seen := 0
	for _, c := range a.Compare {
		if String(c) == s {
			seen++
			if seen > 1 {
				return false
			}
		}
	}
	return true
}

// UUID passes for a canonical UUID string.
func UUID(a Args) bool {
	s := String(a.Value)

	// Fast rejection before parsing.
	if !UUIDPattern.MatchString(s) {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

// Match returns a primitive that passes when the value's string form matches re.
func Match(re *regexp.Regexp) Primitive {
	return func(a Args) bool {
		return re.MatchString(String(a.Value))
	}
}

func inBounds(n float64, min, max *float64) bool {
	if min != nil && n < *min {
		return false
	}
	if max != nil && n > *max {
		return false
	}
	return true
}
