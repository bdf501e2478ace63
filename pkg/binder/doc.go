// Package binder fills request structs from an HTTP request.
//
// JSON decodes the body strictly: unknown fields, trailing data and bodies
// over the size limit are rejected. Path copies router parameters into
// fields tagged `path:"name"`. Both return sentinel errors from errors.go
// wrapped with details, so the handler layer can map them to status codes.
//
//	type validateRequest struct {
//	    FormID string                     `path:"formID" json:"-"`
//	    Inputs map[string]testinput.Input `json:"inputs"`
//	}
//
//	r.Post("/{formID}/validate", handler.Wrap(validate,
//	    handler.WithBinders[validateRequest](binder.Path(chi.URLParam), binder.JSON()),
//	))
//
// Binders return ErrBinderNotApplicable when the request carries nothing
// for them; handler.Wrap skips those.
package binder
