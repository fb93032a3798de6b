package rest

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/fortuna/jinx/internal/export"
	"github.com/fortuna/jinx/internal/nfl"
	"github.com/fortuna/jinx/internal/service"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	analysis    *service.AnalysisService
	predictions *service.PredictionService
}

// NewHandler creates a new handler
func NewHandler(analysis *service.AnalysisService, predictions *service.PredictionService) *Handler {
	return &Handler{
		analysis:    analysis,
		predictions: predictions,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "jinx",
		"version": "2.0.0",
	})
}

// GetSchedule returns the current scoreboard snapshot
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.analysis.Schedule(r.Context()))
}

// GetAnalysis returns the full matchup analysis for one game
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["gameID"]

	analysis, err := h.analysis.Analyze(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

// GetTeams returns the league's team dataset
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams := make([]nfl.Team, 0, len(nfl.Teams))
	for _, seeded := range nfl.Teams {
		teams = append(teams, seeded.Team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Abbreviation < teams[j].Abbreviation })
	respondJSON(w, http.StatusOK, teams)
}

// GetStandings regrades all saved picks against recorded finals
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	picks, err := h.predictions.Load(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load predictions", err)
		return
	}

	results, err := h.predictions.Results(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load results", err)
		return
	}

	respondJSON(w, http.StatusOK, service.GradeStandings(picks, results))
}

// GetPredictions returns all saved picks keyed by game id
func (h *Handler) GetPredictions(w http.ResponseWriter, r *http.Request) {
	picks, err := h.predictions.Load(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load predictions", err)
		return
	}

	respondJSON(w, http.StatusOK, picks)
}

// SavePrediction persists one pick, overwriting any earlier pick for the game
func (h *Handler) SavePrediction(w http.ResponseWriter, r *http.Request) {
	var pick nfl.UserPrediction
	if err := json.NewDecoder(r.Body).Decode(&pick); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid prediction payload", err)
		return
	}
	if pick.GameID == "" {
		respondError(w, http.StatusBadRequest, "Missing game_id", nil)
		return
	}

	if err := h.predictions.Save(r.Context(), pick); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save prediction", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Prediction saved",
		"game_id": pick.GameID,
	})
}

// ExportPredictions streams the prediction sheet as CSV
func (h *Handler) ExportPredictions(w http.ResponseWriter, r *http.Request) {
	picks, err := h.predictions.Load(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load predictions", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="predictions.csv"`)

	if err := export.WritePredictions(w, h.analysis.Schedule(r.Context()), picks); err != nil {
		// Headers are already out; all we can do is log via the middleware path.
		return
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
