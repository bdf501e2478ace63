package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ClusterLabs/striker-testinput/pkg/binder"
	"github.com/ClusterLabs/striker-testinput/pkg/logger"
	"github.com/ClusterLabs/striker-testinput/pkg/requestid"
	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

// classify maps binder and validation errors to an HTTPError. Unknown
// errors become 500.
func classify(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case validator.IsValidationError(err):
		return ErrUnprocessableEntity
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidPath):
		return ErrBadRequest
	}
	return ErrInternalServerError
}

// NewErrorHandler returns an ErrorHandler that logs the error with the
// request id and writes a JSON error envelope. Client errors log at warn,
// server errors at error. Internal error messages are not sent to the client.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		httpErr := classify(err)

		level := slog.LevelWarn
		if httpErr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Component("handler"),
			slog.Int("status", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		var resp Response
		if validator.IsValidationError(err) {
			resp = JSONError(err)
		} else {
			detail := &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
			if httpErr.Code < http.StatusInternalServerError && !errors.As(err, new(HTTPError)) {
				detail.Message = err.Error()
			}
			resp = jsonResponse{status: httpErr.Code, body: JSONResponse{Error: detail}}
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("handler"),
			)
		}
	}
}
