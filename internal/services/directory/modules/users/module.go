// Package users serves the user directory page and its HTMX fragments.
package users

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/userdirectory/internal/services/directory/module"
	"github.com/louisbranch/userdirectory/internal/services/directory/routepath"
)

// Module provides the directory routes.
type Module struct{}

// New returns a users module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "users" }

// Mount wires the directory route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Directory == nil {
		return module.Mount{}, errors.New("users module requires a directory")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
