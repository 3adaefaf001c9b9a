package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/umputun/podscope/pkg/domain"
)

// ErrIntelligenceNotFound returned when an intelligence lookup matches no row
var ErrIntelligenceNotFound = errors.New("intelligence not found")

// SaveIntelligence inserts an extraction result, list fields are JSON-encoded
// on write. Returns the new row id.
func (db *DB) SaveIntelligence(ctx context.Context, intel *domain.Intelligence) (int64, error) {
	rec := intelligenceFromDomain(intel)

	query := `
		INSERT INTO intelligence (
			episode_id, headline, executive_summary, bottom_line, guest_expertise,
			strategic_implications, risk_factors, quantified_impact,
			technical_developments, predictions, market_dynamics,
			companies_mentioned, key_people, actionable_insights,
			importance_score, cost_usd, processing_seconds, model_id, episode_url
		) VALUES (
			:episode_id, :headline, :executive_summary, :bottom_line, :guest_expertise,
			:strategic_implications, :risk_factors, :quantified_impact,
			:technical_developments, :predictions, :market_dynamics,
			:companies_mentioned, :key_people, :actionable_insights,
			:importance_score, :cost_usd, :processing_seconds, :model_id, :episode_url
		)
	`

	var id int64
	retrier := newRetrier()
	err := retrier.Do(ctx, func() error {
		result, e := db.conn.NamedExecContext(ctx, query, rec)
		if e != nil {
			if isLockError(e) {
				return e
			}
			return fmt.Errorf("%w: %v", errNonRetryable, e)
		}
		id, e = result.LastInsertId()
		if e != nil {
			return fmt.Errorf("%w: %v", errNonRetryable, e)
		}
		return nil
	}, errNonRetryable)
	if err != nil {
		return 0, fmt.Errorf("insert intelligence: %w", err)
	}

	intel.ID = id
	return id, nil
}

// GetIntelligenceByEpisode retrieves the extraction result for an episode
func (db *DB) GetIntelligenceByEpisode(ctx context.Context, episodeID int64) (*domain.Intelligence, error) {
	var rec intelligenceSQL
	err := db.conn.GetContext(ctx, &rec, "SELECT * FROM intelligence WHERE episode_id = ?", episodeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIntelligenceNotFound
		}
		return nil, fmt.Errorf("get intelligence by episode: %w", err)
	}
	return rec.toDomain(), nil
}

// GetRecentIntelligence retrieves extraction results from the trailing
// daysBack window, newest first
func (db *DB) GetRecentIntelligence(ctx context.Context, daysBack, limit int) ([]*domain.Intelligence, error) {
	cutoff := time.Now().AddDate(0, 0, -daysBack)

	var recs []intelligenceSQL
	query := `
		SELECT * FROM intelligence
		WHERE processed_at >= ?
		ORDER BY processed_at DESC
		LIMIT ?
	`
	if err := db.conn.SelectContext(ctx, &recs, query, cutoff, limit); err != nil {
		return nil, fmt.Errorf("get recent intelligence: %w", err)
	}

	result := make([]*domain.Intelligence, len(recs))
	for i := range recs {
		result[i] = recs[i].toDomain()
	}
	return result, nil
}

// GetHighImportance retrieves extraction results at or above minScore in the
// trailing window, highest score first, then newest
func (db *DB) GetHighImportance(ctx context.Context, daysBack, minScore int) ([]*domain.Intelligence, error) {
	cutoff := time.Now().AddDate(0, 0, -daysBack)

	var recs []intelligenceSQL
	query := `
		SELECT * FROM intelligence
		WHERE processed_at >= ? AND importance_score >= ?
		ORDER BY importance_score DESC, processed_at DESC
	`
	if err := db.conn.SelectContext(ctx, &recs, query, cutoff, minScore); err != nil {
		return nil, fmt.Errorf("get high importance intelligence: %w", err)
	}

	result := make([]*domain.Intelligence, len(recs))
	for i := range recs {
		result[i] = recs[i].toDomain()
	}
	return result, nil
}

// TotalCost sums extraction cost over the trailing daysBack window, or
// all-time for daysBack <= 0. No matching rows gives 0, never an error.
func (db *DB) TotalCost(ctx context.Context, daysBack int) (float64, error) {
	var total sql.NullFloat64
	var err error

	if daysBack > 0 {
		cutoff := time.Now().AddDate(0, 0, -daysBack)
		err = db.conn.GetContext(ctx, &total, "SELECT SUM(cost_usd) FROM intelligence WHERE processed_at >= ?", cutoff)
	} else {
		err = db.conn.GetContext(ctx, &total, "SELECT SUM(cost_usd) FROM intelligence")
	}

	if err != nil {
		return 0, fmt.Errorf("total cost: %w", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}

// CountIntelligence returns total extraction results and how many are at or
// above the high-importance threshold
func (db *DB) CountIntelligence(ctx context.Context, minScore int) (total, highImportance int64, err error) {
	if err = db.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM intelligence"); err != nil {
		return 0, 0, fmt.Errorf("count intelligence: %w", err)
	}
	if err = db.conn.GetContext(ctx, &highImportance, "SELECT COUNT(*) FROM intelligence WHERE importance_score >= ?", minScore); err != nil {
		return 0, 0, fmt.Errorf("count high importance: %w", err)
	}
	return total, highImportance, nil
}
