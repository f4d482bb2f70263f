package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/medreport/docapi/internal/extract"
	"github.com/medreport/docapi/internal/layout"
	"github.com/medreport/docapi/internal/store"
)

// WebSocket upgrader with reasonable defaults.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		// In production, you should check against allowed origins
		return true
	},
}

// ExtractRequest is an extraction request sent over WebSocket.
type ExtractRequest struct {
	DocumentID     string   `json:"document_id"`
	YThreshold     *float64 `json:"y_threshold,omitempty"`
	FeminineTitles *bool    `json:"feminine_titles,omitempty"`
}

// ExtractResponse is an extraction response sent over WebSocket.
type ExtractResponse struct {
	Type          string `json:"type"`
	Status        string `json:"status"` // "processing", "completed", "error"
	DocumentID    string `json:"document_id,omitempty"`
	ExtractedName string `json:"extracted_name,omitempty"`
	WordCount     int    `json:"word_count,omitempty"`
	Error         string `json:"error,omitempty"`
}

// extractWebSocketHandler handles WebSocket connections for streaming
// patient-name extraction across many documents.
func (s *Server) extractWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade connection to WebSocket", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	slog.Info("WebSocket connection established", "remote_addr", r.RemoteAddr)

	s.handleWebSocketConnection(conn)
}

// handleWebSocketConnection processes messages from a WebSocket connection.
func (s *Server) handleWebSocketConnection(conn *websocket.Conn) {
	// Set read deadline to prevent hanging connections
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// Send ping messages to keep connection alive
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket error", "error", err)
			}
			break
		}

		websocketMessagesTotal.WithLabelValues("received").Inc()

		if messageType == websocket.TextMessage {
			s.handleExtractMessage(conn, data)
		}
	}
}

// handleExtractMessage processes a single extraction request message.
func (s *Server) handleExtractMessage(conn *websocket.Conn, data []byte) {
	var req ExtractRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendWebSocketResponse(conn, ExtractResponse{
			Type:   "extraction",
			Status: "error",
			Error:  "invalid request: " + err.Error(),
		})
		return
	}

	if req.DocumentID == "" {
		s.sendWebSocketResponse(conn, ExtractResponse{
			Type:   "extraction",
			Status: "error",
			Error:  "document_id is required",
		})
		return
	}

	s.sendWebSocketResponse(conn, ExtractResponse{
		Type:       "extraction",
		Status:     "processing",
		DocumentID: req.DocumentID,
	})

	yThreshold := s.yThreshold
	if req.YThreshold != nil {
		if *req.YThreshold < 0 || *req.YThreshold > 1 {
			s.sendWebSocketResponse(conn, ExtractResponse{
				Type:       "extraction",
				Status:     "error",
				DocumentID: req.DocumentID,
				Error:      "y_threshold must be between 0 and 1",
			})
			return
		}
		yThreshold = *req.YThreshold
	}

	feminineTitles := s.feminineTitles
	if req.FeminineTitles != nil {
		feminineTitles = *req.FeminineTitles
	}

	doc, err := s.store.Lookup(req.DocumentID)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			extractionsTotal.WithLabelValues("not_found").Inc()
			s.sendWebSocketResponse(conn, ExtractResponse{
				Type:       "extraction",
				Status:     "error",
				DocumentID: req.DocumentID,
				Error:      notFound.Error(),
			})
			return
		}
		s.sendWebSocketResponse(conn, ExtractResponse{
			Type:       "extraction",
			Status:     "error",
			DocumentID: req.DocumentID,
			Error:      "document lookup failed",
		})
		return
	}

	words := layout.Reconstruct(doc, yThreshold)
	name := extract.PatientName(words, feminineTitles)
	if name != "" {
		extractionsTotal.WithLabelValues("found").Inc()
	} else {
		extractionsTotal.WithLabelValues("empty").Inc()
	}

	s.sendWebSocketResponse(conn, ExtractResponse{
		Type:          "extraction",
		Status:        "completed",
		DocumentID:    req.DocumentID,
		ExtractedName: name,
		WordCount:     len(words),
	})
}

// sendWebSocketResponse marshals and sends a response over the connection.
func (s *Server) sendWebSocketResponse(conn *websocket.Conn, resp ExtractResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("Failed to marshal WebSocket response", "error", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Error("Failed to write WebSocket message", "error", err)
		return
	}
	websocketMessagesTotal.WithLabelValues("sent").Inc()
}
