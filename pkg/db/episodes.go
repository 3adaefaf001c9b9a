package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/umputun/podscope/pkg/domain"
)

// ErrEpisodeNotFound returned when an episode lookup matches no row
var ErrEpisodeNotFound = errors.New("episode not found")

// SaveEpisode inserts an episode if no row with the same (source_name, title)
// exists and returns the row id either way. An existing row is left untouched,
// the feed snapshot at first sight is authoritative.
func (db *DB) SaveEpisode(ctx context.Context, ep *domain.Episode) (int64, error) {
	rec := episodeFromDomain(ep)

	insert := `
		INSERT INTO episodes (
			source_name, title, guid, description, audio_url, page_url,
			published, duration_minutes, processed, attempts
		) VALUES (
			:source_name, :title, :guid, :description, :audio_url, :page_url,
			:published, :duration_minutes, :processed, :attempts
		)
		ON CONFLICT(source_name, title) DO NOTHING
	`

	retrier := newRetrier()
	err := retrier.Do(ctx, func() error {
		if _, e := db.conn.NamedExecContext(ctx, insert, rec); e != nil {
			if isLockError(e) {
				return e
			}
			return fmt.Errorf("%w: %v", errNonRetryable, e)
		}
		return nil
	}, errNonRetryable)
	if err != nil {
		return 0, fmt.Errorf("insert episode: %w", err)
	}

	var id int64
	query := `SELECT id FROM episodes WHERE source_name = ? AND title = ?`
	if err := db.conn.GetContext(ctx, &id, query, ep.SourceName, ep.Title); err != nil {
		return 0, fmt.Errorf("get episode id: %w", err)
	}

	ep.ID = id
	return id, nil
}

// GetEpisode retrieves an episode by ID
func (db *DB) GetEpisode(ctx context.Context, id int64) (*domain.Episode, error) {
	var rec episodeSQL
	err := db.conn.GetContext(ctx, &rec, "SELECT * FROM episodes WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("get episode: %w", err)
	}
	return rec.toDomain(), nil
}

// GetUnprocessedEpisodes retrieves episodes not yet processed, newest first
// with undated episodes last. Optional sourceName narrows to one feed.
func (db *DB) GetUnprocessedEpisodes(ctx context.Context, sourceName string, limit int) ([]*domain.Episode, error) {
	var recs []episodeSQL
	var err error

	if sourceName != "" {
		query := `
			SELECT * FROM episodes
			WHERE processed = 0 AND source_name = ?
			ORDER BY published IS NULL, published DESC
			LIMIT ?
		`
		err = db.conn.SelectContext(ctx, &recs, query, sourceName, limit)
	} else {
		query := `
			SELECT * FROM episodes
			WHERE processed = 0
			ORDER BY published IS NULL, published DESC
			LIMIT ?
		`
		err = db.conn.SelectContext(ctx, &recs, query, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("get unprocessed episodes: %w", err)
	}

	episodes := make([]*domain.Episode, len(recs))
	for i := range recs {
		episodes[i] = recs[i].toDomain()
	}
	return episodes, nil
}

// MarkEpisodeProcessed flips the episode to processed, one-way transition
func (db *DB) MarkEpisodeProcessed(ctx context.Context, id int64) error {
	query := `
		UPDATE episodes
		SET processed = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	retrier := newRetrier()
	err := retrier.Do(ctx, func() error {
		if _, e := db.conn.ExecContext(ctx, query, id); e != nil {
			if isLockError(e) {
				return e
			}
			return fmt.Errorf("%w: %v", errNonRetryable, e)
		}
		return nil
	}, errNonRetryable)
	if err != nil {
		return fmt.Errorf("mark episode processed: %w", err)
	}
	return nil
}

// IncrementEpisodeAttempts bumps the processing attempt counter. Called
// before the extraction call so a crash mid-extraction still leaves the
// attempt recorded.
func (db *DB) IncrementEpisodeAttempts(ctx context.Context, id int64) error {
	query := `
		UPDATE episodes
		SET attempts = attempts + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	retrier := newRetrier()
	err := retrier.Do(ctx, func() error {
		if _, e := db.conn.ExecContext(ctx, query, id); e != nil {
			if isLockError(e) {
				return e
			}
			return fmt.Errorf("%w: %v", errNonRetryable, e)
		}
		return nil
	}, errNonRetryable)
	if err != nil {
		return fmt.Errorf("increment episode attempts: %w", err)
	}
	return nil
}

// CountEpisodes returns total and processed episode counts
func (db *DB) CountEpisodes(ctx context.Context) (total, processed int64, err error) {
	if err = db.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM episodes"); err != nil {
		return 0, 0, fmt.Errorf("count episodes: %w", err)
	}
	if err = db.conn.GetContext(ctx, &processed, "SELECT COUNT(*) FROM episodes WHERE processed = 1"); err != nil {
		return 0, 0, fmt.Errorf("count processed episodes: %w", err)
	}
	return total, processed, nil
}
