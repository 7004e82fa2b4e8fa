package api

import "fmt"

// ErrorKind classifies client failures so callers can react without
// matching on message text.
type ErrorKind int

const (
	// ErrValidation marks missing or malformed caller input (absent
	// consumer credentials, empty verifier, bad option combinations).
	ErrValidation ErrorKind = iota

	// ErrAuth marks a failed step of the OAuth handshake.
	ErrAuth

	// ErrTransport marks a network-level failure: the HTTP request never
	// completed. Non-2xx responses are not transport errors; they are
	// normalized into a Response carrying the status code.
	ErrTransport

	// ErrLocalIO marks a failure reading a local file for upload.
	ErrLocalIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrValidation:
		return "validation"
	case ErrAuth:
		return "auth"
	case ErrTransport:
		return "transport"
	case ErrLocalIO:
		return "local io"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every public method of this package.
type Error struct {
	Kind ErrorKind
	Op   string // operation name, e.g. "login" or "Metadata"
	Msg  string
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }
