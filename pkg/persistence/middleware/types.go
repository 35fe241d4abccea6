// Package middleware wraps a ports.Store to transform responses on their way
// to and from the backend.
package middleware

import "github.com/aretw0/canova/pkg/ports"

// Middleware allows wrapping a Store to add behavior.
type Middleware func(ports.Store) ports.Store

// Chain wraps store with every middleware in order. The last one sees calls first.
func Chain(store ports.Store, mws ...Middleware) ports.Store {
	for _, mw := range mws {
		if mw != nil {
			store = mw(store)
		}
	}
	return store
}
