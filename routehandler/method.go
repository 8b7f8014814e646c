// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routehandler

import "net/http"

// Method is an HTTP request method supported by [RouteHandler].
//
// The set is closed: requests carrying any other method string are always
// treated as unmatched.
type Method uint8

// Supported HTTP methods.
const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodPatch
	MethodDelete
	MethodHead
	MethodOptions
	MethodConnect
	MethodTrace

	methodCount
)

var methodStrings = [methodCount]string{
	MethodGet:     http.MethodGet,
	MethodPost:    http.MethodPost,
	MethodPut:     http.MethodPut,
	MethodPatch:   http.MethodPatch,
	MethodDelete:  http.MethodDelete,
	MethodHead:    http.MethodHead,
	MethodOptions: http.MethodOptions,
	MethodConnect: http.MethodConnect,
	MethodTrace:   http.MethodTrace,
}

// String returns the wire name of the method (e.g. "GET").
// Unknown values render as an empty string.
func (m Method) String() string {
	if !m.valid() {
		return ""
	}
	return methodStrings[m]
}

func (m Method) valid() bool {
	return m < methodCount
}

// ParseMethod maps a request method string to a [Method].
// Matching is exact and case-sensitive: "get" is not "GET".
func ParseMethod(s string) (Method, bool) {
	switch s {
	case http.MethodGet:
		return MethodGet, true
	case http.MethodPost:
		return MethodPost, true
	case http.MethodPut:
		return MethodPut, true
	case http.MethodPatch:
		return MethodPatch, true
	case http.MethodDelete:
		return MethodDelete, true
	case http.MethodHead:
		return MethodHead, true
	case http.MethodOptions:
		return MethodOptions, true
	case http.MethodConnect:
		return MethodConnect, true
	case http.MethodTrace:
		return MethodTrace, true
	}
	return 0, false
}

// Methods returns every supported method in declaration order.
func Methods() []Method {
	methods := make([]Method, 0, methodCount)
	for m := range methodCount {
		methods = append(methods, m)
	}
	return methods
}
