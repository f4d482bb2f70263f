package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/medreport/docapi/internal/extract"
	"github.com/medreport/docapi/internal/layout"
	"github.com/medreport/docapi/internal/store"
	"github.com/medreport/docapi/internal/version"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// documentsHandler returns all documents in the store.
func (s *Server) documentsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	docs := s.store.List()
	response := DocumentsResponse{
		Documents: docs,
		Count:     len(docs),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding documents response: %v\n", err)
	}
}

// documentHandler returns a single document by id.
func (s *Server) documentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	doc, err := s.store.Lookup(r.PathValue("id"))
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			s.writeErrorResponse(w, notFound.Error(), http.StatusNotFound)
			return
		}
		s.writeErrorResponse(w, "Document lookup failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding document response: %v\n", err)
	}
}

// patientNameHandler reconstructs a document's reading order and
// extracts the patient name. The configured y-threshold and feminine
// titles flag can be overridden per request via the y_threshold and
// feminine_titles query parameters.
func (s *Server) patientNameHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	yThreshold := s.yThreshold
	if v := r.URL.Query().Get("y_threshold"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			s.writeErrorResponse(w, "Invalid y_threshold: must be a number between 0 and 1", http.StatusBadRequest)
			return
		}
		yThreshold = parsed
	}

	feminineTitles := s.feminineTitles
	if v := r.URL.Query().Get("feminine_titles"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			s.writeErrorResponse(w, "Invalid feminine_titles: must be a boolean", http.StatusBadRequest)
			return
		}
		feminineTitles = parsed
	}

	id := r.PathValue("id")
	doc, err := s.store.Lookup(id)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			extractionsTotal.WithLabelValues("not_found").Inc()
			s.writeErrorResponse(w, notFound.Error(), http.StatusNotFound)
			return
		}
		s.writeErrorResponse(w, "Document lookup failed", http.StatusInternalServerError)
		return
	}

	start := time.Now()
	words := layout.Reconstruct(doc, yThreshold)
	name := extract.PatientName(words, feminineTitles)

	extractionDuration.Observe(time.Since(start).Seconds())
	wordsReconstructed.Observe(float64(len(words)))
	if name != "" {
		extractionsTotal.WithLabelValues("found").Inc()
	} else {
		extractionsTotal.WithLabelValues("empty").Inc()
	}

	response := PatientNameResponse{
		DocumentID:    id,
		ExtractedName: name,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding patient name response: %v\n", err)
	}
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{Error: message}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error, but can't send another response
		fmt.Fprintf(os.Stderr, "Error writing error response: %v\n", err)
	}
}
