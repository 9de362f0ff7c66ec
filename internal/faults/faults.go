// Package faults defines the closed set of error kinds shared across the
// application: authentication, network, validation, and data processing.
// Every fallible operation in the pipeline fails with exactly one of these
// kinds; the interactive surface is the only place they are converted to
// user-facing text.
package faults

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a fault.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors outside the taxonomy.
	KindUnknown Kind = iota
	// KindAuthentication covers missing or rejected API credentials.
	KindAuthentication
	// KindNetwork covers transport failures, timeouts, and unexpected
	// HTTP statuses.
	KindNetwork
	// KindValidation covers malformed or semantically invalid user input,
	// including unknown variable IDs.
	KindValidation
	// KindDataProcessing covers malformed response payloads and statistics
	// requested over empty data.
	KindDataProcessing
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindDataProcessing:
		return "data processing"
	default:
		return "unknown"
	}
}

// Fault is an error tagged with a Kind and an optional underlying cause.
// Faults carry no retry state; every fault is terminal for the current
// request.
type Fault struct {
	kind  Kind
	msg   string
	cause error
}

func (f *Fault) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %v", f.msg, f.cause)
	}
	return f.msg
}

// Kind returns the fault's category.
func (f *Fault) Kind() Kind {
	return f.kind
}

// Message returns the fault's message without the cause chain.
func (f *Fault) Message() string {
	return f.msg
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (f *Fault) Unwrap() error {
	return f.cause
}

// Authentication creates an authentication fault.
func Authentication(format string, args ...interface{}) error {
	return &Fault{kind: KindAuthentication, msg: fmt.Sprintf(format, args...)}
}

// Network creates a network fault.
func Network(format string, args ...interface{}) error {
	return &Fault{kind: KindNetwork, msg: fmt.Sprintf(format, args...)}
}

// Validation creates a validation fault.
func Validation(format string, args ...interface{}) error {
	return &Fault{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

// DataProcessing creates a data processing fault.
func DataProcessing(format string, args ...interface{}) error {
	return &Fault{kind: KindDataProcessing, msg: fmt.Sprintf(format, args...)}
}

// NetworkWrap creates a network fault with an underlying cause.
func NetworkWrap(cause error, format string, args ...interface{}) error {
	return &Fault{kind: KindNetwork, msg: fmt.Sprintf(format, args...), cause: cause}
}

// DataProcessingWrap creates a data processing fault with an underlying cause.
func DataProcessingWrap(cause error, format string, args ...interface{}) error {
	return &Fault{kind: KindDataProcessing, msg: fmt.Sprintf(format, args...), cause: cause}
}

// ValidationWrap creates a validation fault with an underlying cause.
func ValidationWrap(cause error, format string, args ...interface{}) error {
	return &Fault{kind: KindValidation, msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the fault kind from an error chain. Errors outside the
// taxonomy report KindUnknown.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
