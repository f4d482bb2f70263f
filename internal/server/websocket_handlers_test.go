package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestWebSocket starts a test server and opens a WebSocket connection
// to the extraction endpoint.
func dialTestWebSocket(t *testing.T) *websocket.Conn {
	t.Helper()

	_, mux := newTestMux()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/extract"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readExtractResponse(t *testing.T, conn *websocket.Conn) ExtractResponse {
	t.Helper()

	var resp ExtractResponse
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestExtractWebSocket_SuccessfulExtraction(t *testing.T) {
	conn := dialTestWebSocket(t)

	require.NoError(t, conn.WriteJSON(ExtractRequest{DocumentID: "foo"}))

	processing := readExtractResponse(t, conn)
	assert.Equal(t, "extraction", processing.Type)
	assert.Equal(t, "processing", processing.Status)
	assert.Equal(t, "foo", processing.DocumentID)

	completed := readExtractResponse(t, conn)
	assert.Equal(t, "completed", completed.Status)
	assert.Equal(t, "foo", completed.DocumentID)
	assert.Equal(t, "Jean DUPONT", completed.ExtractedName)
	assert.Equal(t, 18, completed.WordCount)
}

func TestExtractWebSocket_UnknownDocument(t *testing.T) {
	conn := dialTestWebSocket(t)

	require.NoError(t, conn.WriteJSON(ExtractRequest{DocumentID: "missing"}))

	processing := readExtractResponse(t, conn)
	assert.Equal(t, "processing", processing.Status)

	errResp := readExtractResponse(t, conn)
	assert.Equal(t, "error", errResp.Status)
	assert.Contains(t, errResp.Error, `"missing"`)
}

func TestExtractWebSocket_MissingDocumentID(t *testing.T) {
	conn := dialTestWebSocket(t)

	require.NoError(t, conn.WriteJSON(ExtractRequest{}))

	errResp := readExtractResponse(t, conn)
	assert.Equal(t, "error", errResp.Status)
	assert.Equal(t, "document_id is required", errResp.Error)
}

func TestExtractWebSocket_InvalidJSON(t *testing.T) {
	conn := dialTestWebSocket(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	errResp := readExtractResponse(t, conn)
	assert.Equal(t, "error", errResp.Status)
	assert.Contains(t, errResp.Error, "invalid request")
}

func TestExtractWebSocket_ThresholdOutOfRange(t *testing.T) {
	conn := dialTestWebSocket(t)

	bad := 2.5
	require.NoError(t, conn.WriteJSON(ExtractRequest{DocumentID: "foo", YThreshold: &bad}))

	processing := readExtractResponse(t, conn)
	assert.Equal(t, "processing", processing.Status)

	errResp := readExtractResponse(t, conn)
	assert.Equal(t, "error", errResp.Status)
	assert.Contains(t, errResp.Error, "y_threshold")
}

func TestExtractWebSocket_MultipleRequests(t *testing.T) {
	conn := dialTestWebSocket(t)

	for _, id := range []string{"foo", "bar"} {
		require.NoError(t, conn.WriteJSON(ExtractRequest{DocumentID: id}))

		processing := readExtractResponse(t, conn)
		require.Equal(t, "processing", processing.Status)

		completed := readExtractResponse(t, conn)
		require.Equal(t, "completed", completed.Status)
		require.Equal(t, id, completed.DocumentID)
	}
}

func TestExtractWebSocket_RejectsPlainHTTP(t *testing.T) {
	_, mux := newTestMux()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/ws/extract")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
