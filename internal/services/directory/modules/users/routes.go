package users

import (
	"net/http"

	"github.com/louisbranch/userdirectory/internal/services/directory/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.State, h.handleState)
	mux.HandleFunc(http.MethodGet+" "+routepath.Users, h.handleUsers)
	mux.HandleFunc(http.MethodPost+" "+routepath.Reload, h.handleReload)
	mux.HandleFunc(http.MethodPost+" "+routepath.Retry, h.handleReload)
}
