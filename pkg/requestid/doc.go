// Package requestid correlates log records of a single HTTP request.
//
// Middleware keeps a well-formed X-Request-ID sent by the caller (or an
// upstream proxy) and otherwise generates a UUIDv4. The ID is echoed in the
// response header and stored in the request context, where FromContext and
// LoggerExtractor read it:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	handler := requestid.Middleware(router)
package requestid
