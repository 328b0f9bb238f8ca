// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package apperr defines the error taxonomy shared by the content repository,
// the access guard and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers and for the HTTP status mapping.
type Kind string

// Error kinds.
const (
	KindUnauthenticated  Kind = "unauthenticated"
	KindPermissionDenied Kind = "permission_denied"
	KindNotFound         Kind = "not_found"
	KindInvalid          Kind = "invalid"
	KindInternal         Kind = "internal"
)

// Sentinels usable with errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrUnauthenticated  = &Error{Kind: KindUnauthenticated, Message: "authentication required"}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied, Message: "insufficient permissions"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInvalid          = &Error{Kind: KindInvalid, Message: "invalid input"}
	ErrInternal         = &Error{Kind: KindInternal, Message: "internal error"}
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field validation messages for KindInvalid.
	Fields map[string]string
	// Err is the underlying cause. It is never exposed to API clients.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Unauthenticated returns a KindUnauthenticated error.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// PermissionDenied returns a KindPermissionDenied error.
func PermissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

// NotFound returns a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Invalid returns a KindInvalid error with optional field messages.
func Invalid(message string, fields map[string]string) *Error {
	return &Error{Kind: KindInvalid, Message: message, Fields: fields}
}

// InvalidField is shorthand for a single-field validation failure.
func InvalidField(field, message string) *Error {
	return &Error{Kind: KindInvalid, Message: message, Fields: map[string]string{field: message}}
}

// Internal wraps an unexpected failure. The message is safe to show to clients.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err. Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As extracts the *Error from err, wrapping unclassified errors as internal.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal error", err)
}
