// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routehandler

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
)

// RouteHandler accumulates at most one handler per HTTP method for a single
// endpoint and compiles them into an [http.HandlerFunc] with [RouteHandler.Build].
//
// A RouteHandler is not safe for concurrent registration. The functions it
// builds are safe for concurrent use.
type RouteHandler[S any] struct {
	config   Config[S]
	handlers [methodCount]HandlerFunc[S]
	order    []Method
}

// New creates an empty RouteHandler. The given configs are merged in order
// with [MergeConfigs]; with none, every fallback uses its default.
func New[S any](configs ...Config[S]) *RouteHandler[S] {
	return &RouteHandler[S]{
		config: MergeConfigs(Config[S]{}, configs...),
	}
}

// Register adds fn as the handler for method.
//
// It returns [ErrUnsupportedMethod] for a method outside the supported set,
// [ErrNilHandler] for a nil fn and a [*DuplicateMethodError] if method already
// has a handler. On error the registry is left unchanged.
func (h *RouteHandler[S]) Register(method Method, fn HandlerFunc[S]) error {
	if !method.valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedMethod, method)
	}
	if fn == nil {
		return fmt.Errorf("%w for %s", ErrNilHandler, method)
	}
	if h.handlers[method] != nil {
		return &DuplicateMethodError{
			Method:     method,
			Registered: methodNames(h.order),
		}
	}

	h.handlers[method] = fn
	h.order = append(h.order, method)

	return nil
}

// Handle is the chainable form of [RouteHandler.Register]. It panics with the
// registration error, the same way [http.ServeMux] treats conflicting
// patterns.
func (h *RouteHandler[S]) Handle(method Method, fn HandlerFunc[S]) *RouteHandler[S] {
	if err := h.Register(method, fn); err != nil {
		panic(err)
	}
	return h
}

// Get registers fn for GET requests.
func (h *RouteHandler[S]) Get(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodGet, fn)
}

// Post registers fn for POST requests.
func (h *RouteHandler[S]) Post(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodPost, fn)
}

// Put registers fn for PUT requests.
func (h *RouteHandler[S]) Put(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodPut, fn)
}

// Patch registers fn for PATCH requests.
func (h *RouteHandler[S]) Patch(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodPatch, fn)
}

// Delete registers fn for DELETE requests.
func (h *RouteHandler[S]) Delete(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodDelete, fn)
}

// Head registers fn for HEAD requests.
func (h *RouteHandler[S]) Head(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodHead, fn)
}

// Options registers fn for OPTIONS requests.
func (h *RouteHandler[S]) Options(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodOptions, fn)
}

// Connect registers fn for CONNECT requests.
func (h *RouteHandler[S]) Connect(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodConnect, fn)
}

// Trace registers fn for TRACE requests.
func (h *RouteHandler[S]) Trace(fn HandlerFunc[S]) *RouteHandler[S] {
	return h.Handle(MethodTrace, fn)
}

// Methods returns the registered methods in registration order.
func (h *RouteHandler[S]) Methods() []Method {
	return append([]Method(nil), h.order...)
}

// Config returns a copy of the configuration the handler was created with.
func (h *RouteHandler[S]) Config() Config[S] {
	return MergeConfigs(h.config)
}

// Build compiles the registered handlers into a dispatch function.
//
// The returned function works on a snapshot: handlers registered after Build
// only show up in functions returned by later Build calls.
//
// For every request the dispatch function:
//  1. answers methods without a handler with an Allow header listing the
//     registered methods and OnUnmatchedMethod;
//  2. runs Authenticate first when the method is listed in
//     AuthenticatedMethods, answering rejected requests with OnUnauthorized;
//  3. calls the method handler, passing the session if one was produced;
//  4. hands errors and panics from Authenticate and the handler to OnError.
//
// Panics raised inside the fallbacks themselves are not recovered.
func (h *RouteHandler[S]) Build() http.HandlerFunc {
	d := &dispatcher[S]{
		handlers: h.handlers,
		allow:    strings.Join(methodNames(h.order), ", "),
		config:   h.config.compile(),
	}
	if d.config.Authenticate != nil {
		for _, m := range d.config.AuthenticatedMethods {
			if m.valid() {
				d.authenticated[m] = true
			}
		}
	}

	return d.serveHTTP
}

// dispatcher is the immutable state captured by Build.
type dispatcher[S any] struct {
	handlers      [methodCount]HandlerFunc[S]
	authenticated [methodCount]bool
	allow         string
	config        Config[S]
}

func (d *dispatcher[S]) serveHTTP(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w)
	log := zerolog.Ctx(r.Context())

	method, ok := ParseMethod(r.Method)
	var fn HandlerFunc[S]
	if ok {
		fn = d.handlers[method]
	}

	if fn == nil {
		log.Debug().
			Str("method", r.Method).
			Str("allow", d.allow).
			Msg("no handler registered for method")

		rw.Header().Set("Allow", d.allow)
		d.config.OnUnmatchedMethod(rw, r)
		return
	}

	if !d.authenticated[method] {
		if err := recoverCall(func() error { return fn(rw, r, nil) }); err != nil {
			d.config.OnError(rw, r, err)
		}
		return
	}

	var result AuthResult[S]
	err := recoverCall(func() (err error) {
		result, err = d.config.Authenticate(rw, r)
		return err
	})
	if err != nil {
		d.config.OnError(rw, r, err)
		return
	}

	if !result.Authorized {
		log.Debug().Str("method", r.Method).Msg("request is not authorized")
		d.config.OnUnauthorized(rw, r)
		return
	}

	session := result.Data
	r = r.WithContext(withSession(r.Context(), &session))
	if err := recoverCall(func() error { return fn(rw, r, &session) }); err != nil {
		d.config.OnError(rw, r, err)
	}
}

// recoverCall runs fn and converts a panic into a [*PanicError].
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func recoverCall(fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if e, ok := v.(error); ok && errors.Is(e, http.ErrAbortHandler) {
			panic(v)
		}
		err = &PanicError{Value: v, Stack: debug.Stack()}
	}()

	return fn()
}

func methodNames(methods []Method) []string {
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.String())
	}
	return names
}
