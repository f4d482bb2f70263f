package server

import (
	"net/http"

	"github.com/medreport/docapi/internal/store"
)

// newTestServer creates a server with the fixture store and default
// extraction parameters for handler tests.
func newTestServer() *Server {
	return NewServerWithStore(Config{
		CORSOrigin:     "*",
		YThreshold:     0.01,
		FeminineTitles: false,
	}, store.New())
}

// newTestMux returns the server together with a fully routed mux so
// tests exercise path-parameter matching the same way production does.
func newTestMux() (*Server, *http.ServeMux) {
	s := newTestServer()
	mux := http.NewServeMux()
	s.SetupRoutes(mux)
	return s, mux
}
