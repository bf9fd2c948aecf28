// Package module defines the contract between the directory server and its
// route modules.
package module

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/userdirectory/internal/services/directory/state"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

// Directory is the application state a module reads and drives.
type Directory interface {
	Snapshot() state.Snapshot
	Search(query string) []users.User
	Reload(ctx context.Context)
}

// Dependencies carries the runtime collaborators shared by modules.
type Dependencies struct {
	Directory Directory
	Logger    *log.Logger
	Now       func() time.Time
}

// Mount is a module's handler and the path prefix it serves.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one mountable group of routes.
type Module interface {
	ID() string
	Mount(deps Dependencies) (Mount, error)
}
