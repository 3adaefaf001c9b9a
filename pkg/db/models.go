package db

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"log"
	"time"

	"github.com/umputun/podscope/pkg/domain"
)

// episodeSQL is the database representation of a domain.Episode
type episodeSQL struct {
	ID              int64        `db:"id"`
	SourceName      string       `db:"source_name"`
	Title           string       `db:"title"`
	GUID            string       `db:"guid"`
	Description     string       `db:"description"`
	AudioURL        string       `db:"audio_url"`
	PageURL         string       `db:"page_url"`
	Published       sql.NullTime `db:"published"`
	DurationMinutes int          `db:"duration_minutes"`
	Processed       bool         `db:"processed"`
	Attempts        int          `db:"attempts"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

func (e *episodeSQL) toDomain() *domain.Episode {
	ep := &domain.Episode{
		ID:              e.ID,
		SourceName:      e.SourceName,
		Title:           e.Title,
		GUID:            e.GUID,
		Description:     e.Description,
		AudioURL:        e.AudioURL,
		PageURL:         e.PageURL,
		DurationMinutes: e.DurationMinutes,
		Processed:       e.Processed,
		Attempts:        e.Attempts,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Published.Valid {
		ep.Published = e.Published.Time
	}
	return ep
}

func episodeFromDomain(ep *domain.Episode) *episodeSQL {
	e := &episodeSQL{
		ID:              ep.ID,
		SourceName:      ep.SourceName,
		Title:           ep.Title,
		GUID:            ep.GUID,
		Description:     ep.Description,
		AudioURL:        ep.AudioURL,
		PageURL:         ep.PageURL,
		DurationMinutes: ep.DurationMinutes,
		Processed:       ep.Processed,
		Attempts:        ep.Attempts,
	}
	if !ep.Published.IsZero() {
		e.Published = sql.NullTime{Time: ep.Published, Valid: true}
	}
	return e
}

// intelligenceSQL is the database representation of a domain.Intelligence
type intelligenceSQL struct {
	ID                    int64      `db:"id"`
	EpisodeID             int64      `db:"episode_id"`
	Headline              string     `db:"headline"`
	ExecutiveSummary      string     `db:"executive_summary"`
	BottomLine            string     `db:"bottom_line"`
	GuestExpertise        string     `db:"guest_expertise"`
	StrategicImplications stringList `db:"strategic_implications"`
	RiskFactors           stringList `db:"risk_factors"`
	QuantifiedImpact      stringList `db:"quantified_impact"`
	TechnicalDevelopments stringList `db:"technical_developments"`
	Predictions           stringList `db:"predictions"`
	MarketDynamics        stringList `db:"market_dynamics"`
	CompaniesMentioned    stringList `db:"companies_mentioned"`
	KeyPeople             stringList `db:"key_people"`
	ActionableInsights    stringList `db:"actionable_insights"`
	ImportanceScore       int        `db:"importance_score"`
	CostUSD               float64    `db:"cost_usd"`
	ProcessingSeconds     float64    `db:"processing_seconds"`
	ModelID               string     `db:"model_id"`
	EpisodeURL            string     `db:"episode_url"`
	ProcessedAt           time.Time  `db:"processed_at"`
}

func (i *intelligenceSQL) toDomain() *domain.Intelligence {
	return &domain.Intelligence{
		ID:                    i.ID,
		EpisodeID:             i.EpisodeID,
		Headline:              i.Headline,
		ExecutiveSummary:      i.ExecutiveSummary,
		BottomLine:            i.BottomLine,
		GuestExpertise:        i.GuestExpertise,
		StrategicImplications: i.StrategicImplications,
		RiskFactors:           i.RiskFactors,
		QuantifiedImpact:      i.QuantifiedImpact,
		TechnicalDevelopments: i.TechnicalDevelopments,
		Predictions:           i.Predictions,
		MarketDynamics:        i.MarketDynamics,
		CompaniesMentioned:    i.CompaniesMentioned,
		KeyPeople:             i.KeyPeople,
		ActionableInsights:    i.ActionableInsights,
		ImportanceScore:       i.ImportanceScore,
		CostUSD:               i.CostUSD,
		ProcessingSeconds:     i.ProcessingSeconds,
		ModelID:               i.ModelID,
		EpisodeURL:            i.EpisodeURL,
		ProcessedAt:           i.ProcessedAt,
	}
}

func intelligenceFromDomain(intel *domain.Intelligence) *intelligenceSQL {
	return &intelligenceSQL{
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
	}
}

// stringList is a JSON array of strings for SQL operations
type stringList []string

// Value implements driver.Valuer for database storage
func (s stringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval. A row with an
// undecodable list column degrades to an empty list instead of failing
// the whole read.
func (s *stringList) Scan(value interface{}) error {
	if value == nil {
		*s = stringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*s = stringList{}
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Printf("[WARN] failed to decode list column, using empty list: %v", err)
		*s = stringList{}
		return nil
	}

	*s = parsed
	return nil
}
