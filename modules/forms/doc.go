// Package forms holds the striker form catalogue and serves it over HTTP.
//
// Each Form builds a fresh testinput.Batches on demand, so concurrent
// validations never share state. Default returns the registry with the
// console forms: host network init, server, user, UPS, fence device and
// mail server.
//
// Service mounts the catalogue on a chi router:
//
//	GET  /                    list forms with their fields
//	POST /{formID}/validate   run the form's batches against posted inputs
//
// DecodeInputs reads the YAML documents accepted by the check command.
package forms
