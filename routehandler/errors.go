// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routehandler

import (
	"errors"
	"fmt"
	"strings"
)

// Registration errors returned by [RouteHandler.Register].
var (
	// ErrDuplicateMethod is matched by every [DuplicateMethodError] via
	// [errors.Is].
	ErrDuplicateMethod = errors.New("handler for method already set")

	// ErrUnsupportedMethod is returned when a handler is registered for a
	// Method value outside the supported set.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrNilHandler is returned when a nil handler function is registered.
	ErrNilHandler = errors.New("nil handler")
)

// DuplicateMethodError is returned when a second handler is registered for a
// method that already has one on the same [RouteHandler].
//
// Registering twice is a programming error, not a runtime condition.
type DuplicateMethodError struct {
	// Method is the method that was registered twice.
	Method Method

	// Registered lists the method names that were already registered when
	// the duplicate was detected, in registration order.
	Registered []string
}

func (e *DuplicateMethodError) Error() string {
	return fmt.Sprintf("handler for %s already set (registered: %s)",
		e.Method, strings.Join(e.Registered, ", "))
}

// Is reports ErrDuplicateMethod as a match so callers can use errors.Is.
func (e *DuplicateMethodError) Is(target error) bool {
	return target == ErrDuplicateMethod
}

// Methods returns a copy of the method names registered before the
// duplicate.
func (e *DuplicateMethodError) Methods() []string {
	return append([]string(nil), e.Registered...)
}

// PanicError carries a value recovered from a panicking handler or
// authenticate step. It is what [Config.OnError] receives in that case.
type PanicError struct {
	// Value is the recovered panic value.
	Value any

	// Stack is the goroutine stack captured at recovery time.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
