package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/jinx/internal/service"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, analysis *service.AnalysisService, predictions *service.PredictionService) *Server {
	handler := NewHandler(analysis, predictions)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check and metrics
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/schedule", handler.GetSchedule).Methods("GET")
	api.HandleFunc("/games/{gameID}/analysis", handler.GetAnalysis).Methods("GET")
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/standings", handler.GetStandings).Methods("GET")
	api.HandleFunc("/predictions", handler.GetPredictions).Methods("GET")
	api.HandleFunc("/predictions", handler.SavePrediction).Methods("POST")
	api.HandleFunc("/export/predictions.csv", handler.ExportPredictions).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
