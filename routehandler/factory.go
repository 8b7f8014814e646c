// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routehandler

// Factory holds a base [Config] shared by many endpoints and mints
// independent [RouteHandler] instances from it.
//
//	routes := routehandler.NewFactory(routehandler.Config[Session]{
//	    Authenticate: authenticate,
//	    OnError:      writeError,
//	})
//
//	notes := routes.Create(routehandler.Config[Session]{
//	    AuthenticatedMethods: []routehandler.Method{routehandler.MethodPost},
//	}).Get(listNotes).Post(createNote).Build()
type Factory[S any] struct {
	config Config[S]
}

// NewFactory returns a Factory using config as the base of every handler it
// creates. The factory keeps its own copy of config.
func NewFactory[S any](config Config[S]) *Factory[S] {
	return &Factory[S]{config: MergeConfigs(config)}
}

// Create returns a new, empty RouteHandler whose configuration is the
// factory's base config with overrides merged on top. Without overrides the
// handler gets the base config unchanged.
//
// Handlers returned by different Create calls share no mutable state with
// each other or with the factory.
func (f *Factory[S]) Create(overrides ...Config[S]) *RouteHandler[S] {
	return &RouteHandler[S]{
		config: MergeConfigs(f.config, overrides...),
	}
}

// Config returns a copy of the factory's base configuration.
func (f *Factory[S]) Config() Config[S] {
	return MergeConfigs(f.config)
}
