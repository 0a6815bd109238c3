package syncerr

import (
	"errors"
	"fmt"
)

// Kind classifies a sync failure.
type Kind int

const (
	// KindUnknown is reported for errors that do not carry a kind.
	KindUnknown Kind = iota
	KindTransport
	KindHTTPStatus
	KindDataFormat
	KindInvalidArgument
	KindPageLimit
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindDataFormat:
		return "data_format"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindPageLimit:
		return "page_limit"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the sync packages.
type Error struct {
	Kind Kind
	// Op names the operation that failed (e.g. "ozon list products").
	Op string
	// StatusCode is set for KindHTTPStatus.
	StatusCode int
	// Field is set for KindDataFormat.
	Field string
	// Value holds the offending input for KindDataFormat, or the response body for KindHTTPStatus.
	Value string
	Err   error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindHTTPStatus:
		msg = fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
		if e.Value != "" {
			msg += ": " + e.Value
		}
	case KindDataFormat:
		msg = fmt.Sprintf("%s: invalid %s %q", e.Op, e.Field, e.Value)
	default:
		msg = e.Op
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transport wraps a network-level failure.
func Transport(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}

// HTTPStatus reports a non-2xx response. body is kept for diagnostics and truncated.
func HTTPStatus(op string, code int, body []byte) *Error {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &Error{Kind: KindHTTPStatus, Op: op, StatusCode: code, Value: string(body)}
}

// DataFormat reports a value that could not be interpreted.
func DataFormat(op, field, value string, err error) *Error {
	return &Error{Kind: KindDataFormat, Op: op, Field: field, Value: value, Err: err}
}

// InvalidArgument reports a caller error.
func InvalidArgument(op string, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Err: fmt.Errorf(format, args...)}
}

// PageLimit reports a listing that exceeded its page ceiling.
func PageLimit(op string, pages int) *Error {
	return &Error{Kind: KindPageLimit, Op: op, Err: fmt.Errorf("no end of listing after %d pages", pages)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps an error to a process exit status. nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindInvalidArgument:
		return 2
	case KindTransport:
		return 3
	case KindHTTPStatus:
		return 4
	case KindDataFormat:
		return 5
	case KindPageLimit:
		return 6
	default:
		return 1
	}
}
