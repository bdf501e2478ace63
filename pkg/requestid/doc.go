// Package requestid tags every HTTP request with a correlation id.
//
// The middleware reuses a well-formed X-Request-ID header sent by the
// console, or generates a UUID, stores it in the request context and echoes
// it back. LoggerExtractor lets pkg/logger add the id to each record logged
// with that context, so a validation call can be traced from the browser to
// the log line.
package requestid
