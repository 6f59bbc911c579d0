// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes where a module's routes live.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one mountable feature area.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
