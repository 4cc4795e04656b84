package catalog

import "fmt"

// ErrorKind identifies one member of the closed fetch error taxonomy.
type ErrorKind string

const (
	ErrorNetwork  ErrorKind = "network"
	ErrorDecoding ErrorKind = "decoding"
	ErrorUnknown  ErrorKind = "unknown"
)

// FetchError is a fetch failure carried as data. It travels inside the
// screen state rather than being thrown across the reducer boundary.
type FetchError struct {
	Kind    ErrorKind
	Message string // only set for ErrorNetwork
}

// NetworkError builds a network failure with a transport-level message.
func NetworkError(message string) *FetchError {
	return &FetchError{Kind: ErrorNetwork, Message: message}
}

// DecodingError builds a failure for a response that could not be decoded.
func DecodingError() *FetchError {
	return &FetchError{Kind: ErrorDecoding}
}

// UnknownError builds the catch-all failure.
func UnknownError() *FetchError {
	return &FetchError{Kind: ErrorUnknown}
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case ErrorNetwork:
		return fmt.Sprintf("network error: %s", e.Message)
	case ErrorDecoding:
		return "decoding error"
	default:
		return "unknown error"
	}
}

// UserMessage returns the text shown in place of the product list.
func (e *FetchError) UserMessage() string {
	switch e.Kind {
	case ErrorNetwork:
		if e.Message != "" {
			return fmt.Sprintf("Connection problem: %s", e.Message)
		}
		return "Connection problem"
	case ErrorDecoding:
		return "The catalog could not be read"
	default:
		return "Something went wrong"
	}
}

// Equal compares two possibly-nil fetch errors structurally.
func (e *FetchError) Equal(o *FetchError) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Kind == o.Kind && e.Message == o.Message
}
