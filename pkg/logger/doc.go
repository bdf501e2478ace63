// Package logger builds the *slog.Logger used by the striker validation
// service and, optionally, by the input-test runner.
//
// New takes functional options selecting the output format (text or json),
// the minimum level, static attributes and ContextExtractor callbacks that
// copy request-scoped values, such as the chi request id, into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(config.Production, "striker-validate"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.InfoContext(ctx, "form validated", logger.FormID("server"), logger.Duration(d))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
