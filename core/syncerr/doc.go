// Package syncerr defines the closed set of failures a sync run can end with.
//
// Every failure surfaced by the marketplace clients, the reconciler and the chunker
// carries one of the kinds below, so callers can decide per kind what to do
// (for example, which process exit code to use) instead of parsing messages.
//
// # Kinds
//
//   - Transport: the request never produced an HTTP response (timeout, refused connection).
//   - HTTPStatus: the marketplace answered with a non-2xx status; StatusCode is set.
//   - DataFormat: a value could not be interpreted (feed quantity, price, response body); Field is set.
//   - InvalidArgument: a caller passed a value outside the domain of an operation.
//   - PageLimit: a paginated listing did not signal exhaustion within the page ceiling.
//
// # Usage
//
//	if syncerr.KindOf(err) == syncerr.KindHTTPStatus {
//	    var e *syncerr.Error
//	    errors.As(err, &e)
//	    fmt.Println(e.StatusCode)
//	}
package syncerr
