// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routehandler

import (
	"fmt"
	"net/http"
	"reflect"
	"slices"

	"dario.cat/mergo"
)

// Default fallback messages used when a [Config] does not provide its own.
const (
	DefaultMethodNotAllowedMessage    = "Method not allowed"
	DefaultUnauthorizedMessage        = "Unauthorized"
	DefaultInternalServerErrorMessage = "Internal server error"
)

// HandlerFunc handles one HTTP method of an endpoint.
//
// session is nil unless the method is listed in [Config.AuthenticatedMethods]
// and [Config.Authenticate] authorized the request. A returned error is
// passed to [Config.OnError].
type HandlerFunc[S any] func(w http.ResponseWriter, r *http.Request, session *S) error

// FallbackFunc answers a request that did not reach a method handler.
type FallbackFunc func(w http.ResponseWriter, r *http.Request)

// ErrorFunc answers a request whose handler (or authenticate step) failed.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// AuthResult is the outcome of an [AuthenticateFunc].
// Data is only meaningful when Authorized is true.
type AuthResult[S any] struct {
	Authorized bool
	Data       S
}

// Authorized returns a successful AuthResult carrying session data.
func Authorized[S any](data S) AuthResult[S] {
	return AuthResult[S]{Authorized: true, Data: data}
}

// Denied returns a rejected AuthResult.
func Denied[S any]() AuthResult[S] {
	return AuthResult[S]{}
}

// AuthenticateFunc decides whether a request may reach its method handler.
//
// Returning a non-nil error is treated like a handler failure and routed to
// [Config.OnError]; a rejection should be reported with [Denied] instead.
type AuthenticateFunc[S any] func(w http.ResponseWriter, r *http.Request) (AuthResult[S], error)

// Config holds the optional callbacks of a [RouteHandler].
//
// Every field may be left zero. Missing fallbacks are replaced with the
// package defaults when the handler is built; a missing Authenticate (or an
// empty AuthenticatedMethods) disables gating entirely.
type Config[S any] struct {
	// OnUnmatchedMethod answers requests whose method has no handler.
	// The Allow header is already set when it runs.
	OnUnmatchedMethod FallbackFunc

	// OnUnauthorized answers requests rejected by Authenticate.
	OnUnauthorized FallbackFunc

	// OnError receives errors returned by, or panics raised in, the method
	// handler and the Authenticate step.
	OnError ErrorFunc

	// Authenticate runs before handlers of AuthenticatedMethods.
	Authenticate AuthenticateFunc[S]

	// AuthenticatedMethods lists the methods that require Authenticate.
	// A non-nil empty slice is a valid value meaning "no method".
	AuthenticatedMethods []Method

	// MethodNotAllowedMessage is the body written by the default
	// OnUnmatchedMethod.
	MethodNotAllowedMessage string

	// UnauthorizedMessage is the body written by the default OnUnauthorized.
	UnauthorizedMessage string

	// InternalServerErrorMessage is the body written by the default OnError.
	InternalServerErrorMessage string
}

// DefaultConfig returns a Config carrying only the default messages.
// Fallback functions are resolved from these messages at build time.
func DefaultConfig[S any]() Config[S] {
	return Config[S]{
		MethodNotAllowedMessage:    DefaultMethodNotAllowedMessage,
		UnauthorizedMessage:        DefaultUnauthorizedMessage,
		InternalServerErrorMessage: DefaultInternalServerErrorMessage,
	}
}

// MergeConfigs returns base with every field set in the overrides applied on
// top, in order. A field counts as set when it is a non-nil function, a
// non-nil AuthenticatedMethods slice or a non-empty message.
//
// The merge is shallow and never modifies base or the overrides.
func MergeConfigs[S any](base Config[S], overrides ...Config[S]) Config[S] {
	merged := base
	for _, override := range overrides {
		if err := mergo.Merge(&merged, override,
			mergo.WithOverride,
			mergo.WithTransformers(methodSetTransformer{}),
		); err != nil {
			// mergo only fails on mismatched argument types
			panic(fmt.Sprintf("routehandler: merging configs: %v", err))
		}
	}
	merged.AuthenticatedMethods = slices.Clone(merged.AuthenticatedMethods)

	return merged
}

var methodSetType = reflect.TypeFor[[]Method]()

// methodSetTransformer makes a non-nil AuthenticatedMethods override win even
// when it is empty.
type methodSetTransformer struct{}

func (methodSetTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t != methodSetType {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if !src.IsNil() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

// compile resolves the fallbacks so that none of them is nil.
func (c Config[S]) compile() Config[S] {
	cfg := MergeConfigs(DefaultConfig[S](), c)

	if cfg.OnUnmatchedMethod == nil {
		cfg.OnUnmatchedMethod = MethodNotAllowed(cfg.MethodNotAllowedMessage)
	}
	if cfg.OnUnauthorized == nil {
		cfg.OnUnauthorized = Unauthorized(cfg.UnauthorizedMessage)
	}
	if cfg.OnError == nil {
		cfg.OnError = InternalServerError(cfg.InternalServerErrorMessage)
	}

	return cfg
}
