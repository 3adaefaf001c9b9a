package processor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/podscope/pkg/budget"
	"github.com/umputun/podscope/pkg/config"
	"github.com/umputun/podscope/pkg/domain"
	"github.com/umputun/podscope/pkg/llm"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate

// Fetcher retrieves recent episodes from a podcast feed
type Fetcher interface {
	FetchRecent(ctx context.Context, sourceName, feedURL string, lookbackDays, maxEpisodes int) ([]*domain.Episode, error)
}

// Store persists episodes and extraction results
type Store interface {
	SaveEpisode(ctx context.Context, ep *domain.Episode) (int64, error)
	GetEpisode(ctx context.Context, id int64) (*domain.Episode, error)
	GetUnprocessedEpisodes(ctx context.Context, sourceName string, limit int) ([]*domain.Episode, error)
	IncrementEpisodeAttempts(ctx context.Context, id int64) error
	MarkEpisodeProcessed(ctx context.Context, id int64) error
	SaveIntelligence(ctx context.Context, intel *domain.Intelligence) (int64, error)
}

// Extractor runs one LLM extraction call
type Extractor interface {
	Extract(ctx context.Context, req llm.Request) (*llm.Result, error)
}

// Gate is the pre-flight spending check
type Gate interface {
	CanProceed(ctx context.Context) (ok bool, reason string, err error)
}

// RunStats aggregates the outcome of one processing run
type RunStats struct {
	Fetched          int      `json:"fetched"`
	Processed        int      `json:"processed"`
	AlreadyProcessed int      `json:"already_processed"`
	Failed           int      `json:"failed"`
	TotalCostUSD     float64  `json:"total_cost_usd"`
	ElapsedSeconds   float64  `json:"elapsed_seconds"`
	Errors           []string `json:"errors,omitempty"`
}

// Processor runs the fetch-extract-persist pipeline over all active feeds.
// One run is sequential, failures are isolated: a failing feed or episode
// is recorded and skipped, never aborts the run. Only the budget gate can
// abort a run, and only before any work starts.
type Processor struct {
	fetcher   Fetcher
	store     Store
	extractor Extractor
	gate      Gate
	cfg       *config.Config
}

// New creates a processor with all pipeline dependencies
func New(fetcher Fetcher, store Store, extractor Extractor, gate Gate, cfg *config.Config) *Processor {
	return &Processor{
		fetcher:   fetcher,
		store:     store,
		extractor: extractor,
		gate:      gate,
		cfg:       cfg,
	}
}

// Run executes one full processing cycle: budget gate, then per-feed fetch
// and per-episode extraction. Returns budget.ErrBudgetExceeded when the gate
// denies, partial stats otherwise. The gate is checked once up-front, so a
// run can overshoot the ceiling by the episodes it has in flight.
func (p *Processor) Run(ctx context.Context) (*RunStats, error) {
	start := time.Now()
	stats := &RunStats{}

	ok, reason, err := p.gate.CanProceed(ctx)
	if err != nil {
		return nil, fmt.Errorf("budget check: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", budget.ErrBudgetExceeded, reason)
	}
	log.Printf("[INFO] starting processing run, %s", reason)

	feeds := p.cfg.ActiveFeeds()
	if len(feeds) == 0 {
		log.Printf("[WARN] no active feeds configured")
	}

	for _, feed := range feeds {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		p.processFeed(ctx, feed, stats)
	}

	stats.ElapsedSeconds = time.Since(start).Seconds()
	log.Printf("[INFO] run complete: fetched %d, processed %d, skipped %d, failed %d, cost $%.4f, took %.1fs",
		stats.Fetched, stats.Processed, stats.AlreadyProcessed, stats.Failed, stats.TotalCostUSD, stats.ElapsedSeconds)
	return stats, nil
}

// processFeed fetches and persists one feed's recent episodes, then runs
// extraction over the feed's pending set. Working off the pending set, not
// the fetch result, retries episodes left unprocessed by earlier runs.
func (p *Processor) processFeed(ctx context.Context, feed config.FeedConfig, stats *RunStats) {
	episodes, err := p.fetcher.FetchRecent(ctx, feed.Name, feed.URL,
		p.cfg.System.LookbackDays, p.cfg.System.MaxEpisodesPerFeed)
	if err != nil {
		log.Printf("[WARN] failed to fetch feed %q: %v", feed.Name, err)
		stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", feed.Name, err))
		return
	}

	stats.Fetched += len(episodes)

	for _, ep := range episodes {
		if ctx.Err() != nil {
			return
		}
		id, err := p.store.SaveEpisode(ctx, ep)
		if err != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %s: %v", feed.Name, ep.Title, err))
			continue
		}
		// the row may predate this run, re-read for the processed flag
		stored, err := p.store.GetEpisode(ctx, id)
		if err != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %s: %v", feed.Name, ep.Title, err))
			continue
		}
		if stored.Processed {
			log.Printf("[DEBUG] episode %q already processed, skipping", ep.Title)
			stats.AlreadyProcessed++
		}
	}

	pending, err := p.store.GetUnprocessedEpisodes(ctx, feed.Name, p.cfg.System.MaxEpisodesPerFeed)
	if err != nil {
		log.Printf("[WARN] failed to get pending episodes for %q: %v", feed.Name, err)
		stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", feed.Name, err))
		return
	}

	for _, ep := range pending {
		if ctx.Err() != nil {
			return
		}
		if err := p.extractEpisode(ctx, feed, ep, stats); err != nil {
			log.Printf("[WARN] failed to process episode %q from %q: %v", ep.Title, feed.Name, err)
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %s: %v", feed.Name, ep.Title, err))
		}
	}
}

// extractEpisode runs one extraction and persists the result
func (p *Processor) extractEpisode(ctx context.Context, feed config.FeedConfig, ep *domain.Episode, stats *RunStats) error {
	// record the attempt before the call so a crash mid-extraction is visible
	if err := p.store.IncrementEpisodeAttempts(ctx, ep.ID); err != nil {
		return fmt.Errorf("increment attempts: %w", err)
	}

	result, err := p.extractor.Extract(ctx, llm.Request{
		Text:         ep.Description,
		SourceName:   feed.Name,
		EpisodeTitle: ep.Title,
		FocusTag:     feed.Focus,
		Emphasis:     p.cfg.ExtractionEmphasis(feed.Focus),
	})
	if err != nil {
		return fmt.Errorf("extract intelligence: %w", err)
	}

	if result.ParsingError {
		log.Printf("[WARN] degraded extraction for %q, raw response preserved in summary", ep.Title)
	}

	intel := resultToIntelligence(result, ep)
	if _, err := p.store.SaveIntelligence(ctx, intel); err != nil {
		return fmt.Errorf("save intelligence: %w", err)
	}

	if err := p.store.MarkEpisodeProcessed(ctx, ep.ID); err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}

	stats.Processed++
	stats.TotalCostUSD += result.CostUSD
	return nil
}

// resultToIntelligence maps an extraction result onto the persisted record.
// ImportanceScore is stored verbatim, even out of the documented 1-10 range.
func resultToIntelligence(r *llm.Result, ep *domain.Episode) *domain.Intelligence {
	episodeURL := ep.AudioURL
	if episodeURL == "" {
		episodeURL = ep.PageURL
	}

	return &domain.Intelligence{
		EpisodeID:             ep.ID,
		Headline:              r.Headline,
		ExecutiveSummary:      r.ExecutiveSummary,
		BottomLine:            r.BottomLine,
		GuestExpertise:        r.GuestExpertise,
		StrategicImplications: r.StrategicImplications,
		RiskFactors:           r.RiskFactors,
		QuantifiedImpact:      r.QuantifiedImpact,
		TechnicalDevelopments: r.TechnicalDevelopments,
		Predictions:           r.Predictions,
		MarketDynamics:        r.MarketDynamics,
		CompaniesMentioned:    r.CompaniesMentioned,
		KeyPeople:             r.KeyPeople,
		ActionableInsights:    r.ActionableInsights,
		ImportanceScore:       r.ImportanceScore,
		CostUSD:               r.CostUSD,
		ProcessingSeconds:     r.Seconds,
		ModelID:               r.ModelID,
		EpisodeURL:            episodeURL,
	}
}
