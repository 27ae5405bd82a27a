package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure
type Kind int

const (
	// KindTransport covers connection, DNS, TLS and timeout failures
	KindTransport Kind = iota
	// KindHTTPStatus is a response with a non-success status code
	KindHTTPStatus
	// KindMimeMismatch is a response whose content type is not HTML
	KindMimeMismatch
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindMimeMismatch:
		return "mime_mismatch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by a Fetcher when a page cannot be turned into a Document
type Error struct {
	Kind        Kind
	URL         string
	StatusCode  int
	ContentType string
	Err         error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	case KindMimeMismatch:
		return fmt.Sprintf("fetch %s: unsupported content type %q", e.URL, e.ContentType)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err and whether err is a fetch error
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// IsPageUnavailable reports whether err is a status or mime failure.
// Those are recoverable for a single page.
func IsPageUnavailable(err error) bool {
	kind, ok := KindOf(err)
	return ok && (kind == KindHTTPStatus || kind == KindMimeMismatch)
}

// IsTransport reports whether err is a transport-level failure
func IsTransport(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindTransport
}
