// Package server exposes the document store and the patient-name
// extraction pipeline over HTTP and WebSocket.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medreport/docapi/internal/document"
	"github.com/medreport/docapi/internal/store"
)

// documentStore defines the methods needed by the server from a store.
type documentStore interface {
	Lookup(id string) (*document.Document, error)
	List() []*document.Document
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	store          documentStore
	corsOrigin     string
	yThreshold     float64
	feminineTitles bool
	rateLimiter    *RateLimiter
}

// Config holds server configuration.
type Config struct {
	Host            string
	Port            int
	CORSOrigin      string
	TimeoutSec      int
	YThreshold      float64
	FeminineTitles  bool
	RateLimit       RateLimitConfig
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	RequestsPerHour   int
	MaxRequestsPerDay int
}

// Response types for API endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

type DocumentsResponse struct {
	Documents []*document.Document `json:"documents"`
	Count     int                  `json:"count"`
}

type PatientNameResponse struct {
	DocumentID    string `json:"document_id"`
	ExtractedName string `json:"extracted_name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a new document API server backed by the fixture
// store.
func NewServer(config Config) *Server {
	return NewServerWithStore(config, store.New())
}

// NewServerWithStore creates a server backed by the given store.
func NewServerWithStore(config Config, st documentStore) *Server {
	s := &Server{
		store:          st,
		corsOrigin:     config.CORSOrigin,
		yThreshold:     config.YThreshold,
		feminineTitles: config.FeminineTitles,
	}
	if config.RateLimit.Enabled {
		s.rateLimiter = NewRateLimiter(
			config.RateLimit.RequestsPerMinute,
			config.RateLimit.RequestsPerHour,
			config.RateLimit.MaxRequestsPerDay,
		)
	}
	return s
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/documents", s.corsMiddleware(s.documentsHandler))
	mux.HandleFunc("/documents/{id}", s.corsMiddleware(s.documentHandler))
	mux.HandleFunc("/documents/{id}/patient-name", s.corsMiddleware(s.rateLimitMiddleware(s.patientNameHandler)))
	mux.HandleFunc("/ws/extract", s.extractWebSocketHandler)
}
