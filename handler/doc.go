// Package handler turns typed request handlers into http.HandlerFunc.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// and returns a Response. Wrap runs the binders, calls the handler and
// renders the response; binding and rendering errors go to an ErrorHandler.
//
//	type validateRequest struct {
//		FormID string `path:"formID" json:"-"`
//		Inputs map[string]testinput.Input `json:"inputs"`
//	}
//
//	func validate(ctx handler.Context, req validateRequest) handler.Response {
//		res := testinput.Evaluate(batches, testinput.Request{Inputs: req.Inputs})
//		return handler.JSON(res)
//	}
//
//	r.Post("/{formID}/validate", handler.Wrap(validate,
//		handler.WithBinders[validateRequest](binder.Path(chi.URLParam), binder.JSON()),
//		handler.WithErrorHandler[validateRequest](handler.NewErrorHandler(log)),
//	))
//
// # JSON envelope
//
// JSON and JSONError write {"data": ..., "meta": ..., "error": {"code",
// "message", "details"}}. validator.ValidationErrors become a 422 with the
// messages grouped per field in details; HTTPError values keep their status
// and use their key as the error code.
package handler
