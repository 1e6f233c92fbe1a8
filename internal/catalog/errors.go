package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorKind tags the failure classes the UI switches on. The presentation
// layer never probes optional fields; it only looks at Kind.
type ErrorKind int

const (
	KindValidation      ErrorKind = iota // local structural check failed, no request was sent
	KindTimeout                          // request did not complete in time
	KindPayloadTooLarge                  // server rejected the body size (413)
	KindServerMessage                    // non-2xx with a server-provided message
	KindNetwork                          // transport failed (DNS, refused connection, ...)
)

// String returns a short label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTimeout:
		return "timeout"
	case KindPayloadTooLarge:
		return "payload-too-large"
	case KindServerMessage:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is the tagged error variant surfaced for every failed catalog call.
type Error struct {
	Kind   ErrorKind
	Detail string // server message or low-level error text
	Status int    // HTTP status when one was received, else 0
}

// Error renders the user-facing message for the failure class.
func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		return e.Detail
	case KindTimeout:
		return "request timed out - the server did not respond in time"
	case KindPayloadTooLarge:
		return "upload too large - the server rejected the request body"
	case KindServerMessage:
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("server rejected the request (status %d)", e.Status)
	case KindNetwork:
		return "could not reach the catalog server - check your connection and API URL"
	default:
		return "request failed"
	}
}

// validationError wraps a local validation failure. No network call was made.
func validationError(detail string) *Error {
	return &Error{Kind: KindValidation, Detail: detail}
}

// classifyTransport maps a transport-level error (no HTTP response) to a
// tagged Error. Timeouts are distinguished from other network failures.
func classifyTransport(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Detail: err.Error()}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Detail: err.Error()}
	}
	return &Error{Kind: KindNetwork, Detail: err.Error()}
}

// classifyStatus maps a non-2xx HTTP response to a tagged Error. The server
// message, when present, is surfaced verbatim.
func classifyStatus(status int, serverMessage string) *Error {
	if status == http.StatusRequestEntityTooLarge {
		return &Error{Kind: KindPayloadTooLarge, Detail: serverMessage, Status: status}
	}
	return &Error{Kind: KindServerMessage, Detail: serverMessage, Status: status}
}
