package support

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// RegisterServerSteps wires up the HTTP API step definitions.
func (testCtx *TestContext) RegisterServerSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the document API server is running$`, testCtx.theServerIsRunning)
	sc.Step(`^I GET "([^"]*)"$`, testCtx.iGET)
	sc.Step(`^the response status should be (\d+)$`, testCtx.theResponseStatusShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, testCtx.theResponseFieldShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, testCtx.theResponseShouldContain)
	sc.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, testCtx.theResponseHeaderShouldBe)
}

// theServerIsRunning starts the in-process test server if needed.
func (testCtx *TestContext) theServerIsRunning() error {
	if testCtx.HTTPTestServer == nil {
		return testCtx.createTestHTTPServer()
	}
	return nil
}

// iGET performs a GET request against the running test server.
func (testCtx *TestContext) iGET(path string) error {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(testCtx.GetServerURL() + path)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing response body: %v\n", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	testCtx.LastHTTPStatusCode = resp.StatusCode
	testCtx.LastHTTPResponse = string(body)
	testCtx.LastHTTPHeaders = map[string]string{}
	for name := range resp.Header {
		testCtx.LastHTTPHeaders[name] = resp.Header.Get(name)
	}
	return nil
}

func (testCtx *TestContext) theResponseStatusShouldBe(expected int) error {
	if testCtx.LastHTTPStatusCode != expected {
		return fmt.Errorf("expected status %d, got %d\nbody:\n%s",
			expected, testCtx.LastHTTPStatusCode, testCtx.LastHTTPResponse)
	}
	return nil
}

// theResponseFieldShouldBe checks a top-level string field of the JSON
// response body.
func (testCtx *TestContext) theResponseFieldShouldBe(field, expected string) error {
	var body map[string]interface{}
	if err := json.Unmarshal([]byte(testCtx.LastHTTPResponse), &body); err != nil {
		return fmt.Errorf("response is not valid JSON: %w\nbody:\n%s", err, testCtx.LastHTTPResponse)
	}

	value, exists := body[field]
	if !exists {
		return fmt.Errorf("response has no field %q\nbody:\n%s", field, testCtx.LastHTTPResponse)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, actual)
	}
	return nil
}

func (testCtx *TestContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(testCtx.LastHTTPResponse, expected) {
		return fmt.Errorf("expected response to contain %q\nbody:\n%s", expected, testCtx.LastHTTPResponse)
	}
	return nil
}

func (testCtx *TestContext) theResponseHeaderShouldBe(name, expected string) error {
	actual, exists := testCtx.LastHTTPHeaders[http.CanonicalHeaderKey(name)]
	if !exists {
		return fmt.Errorf("response has no header %q", name)
	}
	if actual != expected {
		return fmt.Errorf("expected header %q to be %q, got %q", name, expected, actual)
	}
	return nil
}
