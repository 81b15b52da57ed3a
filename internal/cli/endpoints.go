// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// discoverEndpoints enumerates the route patterns of an application when it
// exposes them (a chi router does). Documentation and static-asset paths are
// excluded, same as they would be pointless to invoke synthetically. A nil
// return means the app's routes cannot be enumerated and --endpoint is left
// unrestricted.
func discoverEndpoints(app http.Handler) []string {
	routes, ok := app.(chi.Routes)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var endpoints []string
	_ = chi.Walk(routes, func(_ string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/apidoc") || strings.HasPrefix(route, "/static") {
			return nil
		}
		if _, dup := seen[route]; !dup {
			seen[route] = struct{}{}
			endpoints = append(endpoints, route)
		}
		return nil
	})

	sort.Strings(endpoints)
	return endpoints
}

// containsEndpoint reports whether endpoint is in the discovered set.
func containsEndpoint(endpoints []string, endpoint string) bool {
	for _, e := range endpoints {
		if e == endpoint {
			return true
		}
	}
	return false
}
