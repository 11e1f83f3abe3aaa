// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so failures from the assistant service can be
// categorized (transport, application, malformed payload) and absorbed into an
// error session rather than crashing the client.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures appropriately.
package errors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// TransportFailed indicates a network or protocol failure before any
	// payload was obtained.
	TransportFailed Kind = "transport_failed"
	// ApplicationFailed indicates the service returned a payload that
	// explicitly reports failure.
	ApplicationFailed Kind = "application_failed"
	// MalformedPayload indicates a response body that did not match the
	// expected structure.
	MalformedPayload Kind = "malformed_payload"
	// UploadRejected indicates the service refused a database upload.
	UploadRejected Kind = "upload_rejected"
	// ConfigInvalid indicates unusable client configuration.
	ConfigInvalid Kind = "config_invalid"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of err when it is or wraps an *E, or the empty Kind.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
