// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler. A
// known path requested with an unregistered method gets 404 instead of chi's
// 405, so the daemon does not reveal which routes exist.
//
// Only exact pattern matches are considered. Routes nested with
// [chi.Router.Route] are found through their sub-router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !methodRegistered(router.Routes(), "", r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		router.ServeHTTP(w, r)
	}
}

func methodRegistered(routes []chi.Route, base, path, method string) bool {
	for _, route := range routes {
		pattern := base + route.Pattern
		if route.SubRoutes != nil {
			prefix := pattern[:len(pattern)-len("/*")]
			if methodRegistered(route.SubRoutes.Routes(), prefix, path, method) {
				return true
			}
			continue
		}
		if pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
