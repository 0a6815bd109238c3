// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation on the X-API-Key header.
//   - rayid: a per-request id stored in the context and echoed in the
//     X-Ray-ID response header for tracing.
//
// Both are registered globally by the serve command, rayid first.
package middleware
