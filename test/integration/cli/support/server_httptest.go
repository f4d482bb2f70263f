package support

import (
	"net/http"
	"net/http/httptest"

	"github.com/medreport/docapi/internal/server"
)

// HTTPTestServerWrapper wraps httptest.Server for integration tests.
type HTTPTestServerWrapper struct {
	Server     *httptest.Server
	TestServer *server.Server
}

// createTestHTTPServer starts the real document API server on an
// httptest listener, backed by the built-in fixture store.
func (testCtx *TestContext) createTestHTTPServer() error {
	docServer := server.NewServer(server.Config{
		CORSOrigin: "*",
		YThreshold: 0.01,
	})

	mux := http.NewServeMux()
	docServer.SetupRoutes(mux)

	testCtx.HTTPTestServer = &HTTPTestServerWrapper{
		Server:     httptest.NewServer(mux),
		TestServer: docServer,
	}
	return nil
}

// stopTestHTTPServer stops the httptest server.
func (testCtx *TestContext) stopTestHTTPServer() error {
	if testCtx.HTTPTestServer != nil && testCtx.HTTPTestServer.Server != nil {
		testCtx.HTTPTestServer.Server.Close()
		testCtx.HTTPTestServer = nil
	}
	return nil
}

// GetServerURL returns the base URL of the running test server.
func (testCtx *TestContext) GetServerURL() string {
	if testCtx.HTTPTestServer == nil || testCtx.HTTPTestServer.Server == nil {
		return ""
	}
	return testCtx.HTTPTestServer.Server.URL
}
