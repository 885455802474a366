// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pdf-desk/internal/app"
	"github.com/MKhiriev/go-pdf-desk/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// For a path that is registered with other methods it answers 405 with an
// "Allow" header and the JSON body {"error": "method not allowed"}, the same
// failure shape every operation endpoint uses. A method that is in fact
// registered for the matched pattern is forwarded to the router.
//
// Only exact pattern matches against [http.Request.URL.Path] are considered.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; ok {
			router.ServeHTTP(w, r)
			return
		}

		allowed := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			allowed = append(allowed, method)
		}
		sort.Strings(allowed)
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		_, _ = utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
