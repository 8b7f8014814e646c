// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package routehandler builds a single [net/http] handler for one endpoint
// out of per-method handler functions.
//
// A [RouteHandler] accepts at most one handler per HTTP method and compiles
// them with [RouteHandler.Build] into an [http.HandlerFunc] that:
//   - answers unsupported methods with a 405 response and an Allow header
//     listing the registered methods;
//   - optionally runs an authenticate step before the handlers of selected
//     methods and passes the resulting session to the handler;
//   - turns errors returned by handlers, and panics raised in them, into a
//     500 response.
//
// Each of these outcomes is produced by a callback of [Config] that can be
// replaced. Configs are merged field by field with [MergeConfigs], and a
// [Factory] mints independently configured handlers from one base config.
//
// Usage:
//
//	type Session struct{ UserID int64 }
//
//	routes := routehandler.NewFactory(routehandler.Config[Session]{
//	    Authenticate: func(w http.ResponseWriter, r *http.Request) (routehandler.AuthResult[Session], error) {
//	        id, ok := userFromToken(r.Header.Get("Authorization"))
//	        if !ok {
//	            return routehandler.Denied[Session](), nil
//	        }
//	        return routehandler.Authorized(Session{UserID: id}), nil
//	    },
//	    AuthenticatedMethods: []routehandler.Method{routehandler.MethodPost},
//	})
//
//	mux.Handle("/api/notes", routes.Create().
//	    Get(listNotes).
//	    Post(createNote).
//	    Build())
//
// Request-scoped logging uses the zerolog logger stored in the request
// context (see [github.com/rs/zerolog.Ctx]); without one nothing is logged.
package routehandler
