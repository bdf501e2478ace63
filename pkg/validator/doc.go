// Package validator provides the pure test primitives used by the striker
// input-test engine, the compiled patterns they share, and the error types
// used when a validation outcome has to travel as a Go error.
//
// A primitive is a plain function over Args that returns a boolean:
//
//	type Primitive func(Args) bool
//
// Args carries the current input value, optional numeric bounds, an optional
// list of values to compare against, and display strings for the bounds.
// Primitives are total: they never panic and never return an error, and a
// missing bound means "no constraint" on that side.
//
// # Truthiness
//
// The console submits most values as strings, but callers may also hand in
// numbers or booleans. NotBlank and Range treat nil, false, numeric zero, NaN
// and the empty string as falsy, matching how the form layer already judges
// empty inputs.
//
// # Patterns
//
// Regular expressions for IPv4 addresses, IPv4 lists, MAC addresses, UUIDs,
// domain names, hostnames, organization prefixes, e-mail addresses and
// "peaceful" strings are compiled once at package initialisation and exported
// so builders and callers reuse the same instances.
//
// # Usage
//
//	ok := validator.Range(validator.Args{
//	    Value: "42",
//	    Min:   validator.Bound(1),
//	    Max:   validator.Bound(99),
//	})
//
//	isGateway := validator.Match(validator.IPv4Pattern)
//	isGateway(validator.Args{Value: "10.0.0.1"}) // true
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is, so edge layers (HTTP handlers, CLIs) can bubble several field
// failures up in a single return value.
package validator
