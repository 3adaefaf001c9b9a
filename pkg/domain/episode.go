package domain

import "time"

// Episode represents a single podcast feed entry. Identity is defined by
// (SourceName, Title), not GUID - two entries with the same title for the
// same source are treated as one logical episode.
type Episode struct {
	ID              int64
	SourceName      string
	Title           string
	GUID            string
	Description     string
	AudioURL        string
	PageURL         string
	Published       time.Time // zero value means the feed had no parseable date
	DurationMinutes int       // 0 means unknown, any positive duration is at least 1
	Processed       bool
	Attempts        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Intelligence is the structured extraction result for one episode,
// produced by a single LLM call and immutable once saved.
type Intelligence struct {
	ID        int64
	EpisodeID int64

	// narrative fields
	Headline         string
	ExecutiveSummary string
	BottomLine       string
	GuestExpertise   string

	// list fields, stored JSON-encoded
	StrategicImplications []string
	RiskFactors           []string
	QuantifiedImpact      []string
	TechnicalDevelopments []string
	Predictions           []string
	MarketDynamics        []string
	CompaniesMentioned    []string
	KeyPeople             []string
	ActionableInsights    []string

	// documented range is 1-10 but stored verbatim, see processor
	ImportanceScore int

	// audit trail
	CostUSD           float64
	ProcessingSeconds float64
	ModelID           string
	EpisodeURL        string
	ProcessedAt       time.Time
}
