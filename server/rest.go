package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/podscope/pkg/budget"
	"github.com/umputun/podscope/pkg/domain"
)

// intelligenceResponse is the JSON shape for one extraction record
type intelligenceResponse struct {
	ID                    int64     `json:"id"`
	EpisodeID             int64     `json:"episode_id"`
	Headline              string    `json:"headline_takeaway"`
	ExecutiveSummary      string    `json:"executive_summary"`
	BottomLine            string    `json:"bottom_line"`
	GuestExpertise        string    `json:"guest_expertise"`
	StrategicImplications []string  `json:"strategic_implications"`
	RiskFactors           []string  `json:"risk_factors"`
	QuantifiedImpact      []string  `json:"quantified_impact"`
	TechnicalDevelopments []string  `json:"technical_developments"`
	Predictions           []string  `json:"predictions"`
	MarketDynamics        []string  `json:"market_dynamics"`
	CompaniesMentioned    []string  `json:"companies_mentioned"`
	KeyPeople             []string  `json:"key_people"`
	ActionableInsights    []string  `json:"actionable_insights"`
	ImportanceScore       int       `json:"importance_score"`
	CostUSD               float64   `json:"cost_usd"`
	ProcessingSeconds     float64   `json:"processing_seconds"`
	ModelID               string    `json:"model_id"`
	EpisodeURL            string    `json:"episode_url"`
	ProcessedAt           time.Time `json:"processed_at"`
}

func toIntelligenceResponse(intel *domain.Intelligence) intelligenceResponse {
	return intelligenceResponse{
		ID:                    intel.ID,
		EpisodeID:             intel.EpisodeID,
		Headline:              intel.Headline,
		ExecutiveSummary:      intel.ExecutiveSummary,
		BottomLine:            intel.BottomLine,
		GuestExpertise:        intel.GuestExpertise,
		StrategicImplications: intel.StrategicImplications,
		RiskFactors:           intel.RiskFactors,
		QuantifiedImpact:      intel.QuantifiedImpact,
		TechnicalDevelopments: intel.TechnicalDevelopments,
		Predictions:           intel.Predictions,
		MarketDynamics:        intel.MarketDynamics,
		CompaniesMentioned:    intel.CompaniesMentioned,
		KeyPeople:             intel.KeyPeople,
		ActionableInsights:    intel.ActionableInsights,
		ImportanceScore:       intel.ImportanceScore,
		CostUSD:               intel.CostUSD,
		ProcessingSeconds:     intel.ProcessingSeconds,
		ModelID:               intel.ModelID,
		EpisodeURL:            intel.EpisodeURL,
		ProcessedAt:           intel.ProcessedAt,
	}
}

// statusHandler returns server status with episode and extraction counts
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalEpisodes, processedEpisodes, err := s.db.CountEpisodes(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to count episodes: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	totalIntel, highImportance, err := s.db.CountIntelligence(ctx, 8)
	if err != nil {
		log.Printf("[ERROR] failed to count intelligence: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"episodes": map[string]int64{
			"total":     totalEpisodes,
			"processed": processedEpisodes,
			"pending":   totalEpisodes - processedEpisodes,
		},
		"intelligence": map[string]int64{
			"total":           totalIntel,
			"high_importance": highImportance,
		},
	}
	renderJSON(w, r, http.StatusOK, status)
}

// recentHandler returns extraction records from the trailing window, newest first
func (s *Server) recentHandler(w http.ResponseWriter, r *http.Request) {
	daysBack := queryInt(r, "days", 7)
	limit := queryInt(r, "limit", 50)

	records, err := s.db.GetRecentIntelligence(r.Context(), daysBack, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get recent intelligence: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := make([]intelligenceResponse, len(records))
	for i, rec := range records {
		resp[i] = toIntelligenceResponse(rec)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// topHandler returns high-importance extraction records, highest score first
func (s *Server) topHandler(w http.ResponseWriter, r *http.Request) {
	daysBack := queryInt(r, "days", 7)
	minScore := queryInt(r, "min_score", 8)

	records, err := s.db.GetHighImportance(r.Context(), daysBack, minScore)
	if err != nil {
		log.Printf("[ERROR] failed to get high importance intelligence: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := make([]intelligenceResponse, len(records))
	for i, rec := range records {
		resp[i] = toIntelligenceResponse(rec)
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// spendingHandler returns spend against the daily and weekly limits
func (s *Server) spendingHandler(w http.ResponseWriter, r *http.Request) {
	daysBack := queryInt(r, "days", 30)

	summary, err := s.spending.SpendingSummary(r.Context(), daysBack)
	if err != nil {
		log.Printf("[ERROR] failed to get spending summary: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, summary)
}

// processHandler triggers a processing run on demand. A budget-denied run
// maps to 429, everything else to 500.
func (s *Server) processHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.runner.Run(r.Context())
	if err != nil {
		if errors.Is(err, budget.ErrBudgetExceeded) {
			renderError(w, r, err, http.StatusTooManyRequests)
			return
		}
		log.Printf("[ERROR] processing run failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// queryInt reads an integer query parameter with a default
func queryInt(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
