package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/podscope/pkg/budget"
	"github.com/umputun/podscope/pkg/config"
	"github.com/umputun/podscope/pkg/domain"
	"github.com/umputun/podscope/pkg/llm"
	"github.com/umputun/podscope/pkg/processor/mocks"
)

func testConfig(feeds ...config.FeedConfig) *config.Config {
	cfg := &config.Config{Feeds: feeds}
	cfg.System.LookbackDays = 7
	cfg.System.MaxEpisodesPerFeed = 5
	cfg.FocusAreas = map[string]string{"technology": "Focus on technical depth"}
	return cfg
}

func openGate() *mocks.GateMock {
	return &mocks.GateMock{
		CanProceedFunc: func(ctx context.Context) (bool, string, error) {
			return true, "daily: $5.00 remaining, weekly: $20.00 remaining", nil
		},
	}
}

// inMemoryStore emulates the episode dedup and processed bookkeeping the
// pipeline relies on
type inMemoryStore struct {
	mocks.StoreMock
	episodes []*domain.Episode
	nextID   int64
	saved    []*domain.Intelligence
}

func newInMemoryStore() *inMemoryStore {
	s := &inMemoryStore{nextID: 1}
	s.SaveEpisodeFunc = func(_ context.Context, ep *domain.Episode) (int64, error) {
		for _, existing := range s.episodes {
			if existing.SourceName == ep.SourceName && existing.Title == ep.Title {
				ep.ID = existing.ID
				return existing.ID, nil
			}
		}
		stored := *ep
		stored.ID = s.nextID
		s.nextID++
		s.episodes = append(s.episodes, &stored)
		ep.ID = stored.ID
		return stored.ID, nil
	}
	s.GetEpisodeFunc = func(_ context.Context, id int64) (*domain.Episode, error) {
		for _, ep := range s.episodes {
			if ep.ID == id {
				return ep, nil
			}
		}
		return nil, errors.New("not found")
	}
	s.GetUnprocessedEpisodesFunc = func(_ context.Context, sourceName string, limit int) ([]*domain.Episode, error) {
		var pending []*domain.Episode
		for _, ep := range s.episodes {
			if ep.Processed {
				continue
			}
			if sourceName != "" && ep.SourceName != sourceName {
				continue
			}
			pending = append(pending, ep)
			if len(pending) >= limit {
				break
			}
		}
		return pending, nil
	}
	s.IncrementEpisodeAttemptsFunc = func(_ context.Context, id int64) error {
		for _, ep := range s.episodes {
			if ep.ID == id {
				ep.Attempts++
			}
		}
		return nil
	}
	s.MarkEpisodeProcessedFunc = func(_ context.Context, id int64) error {
		for _, ep := range s.episodes {
			if ep.ID == id {
				ep.Processed = true
			}
		}
		return nil
	}
	s.SaveIntelligenceFunc = func(_ context.Context, intel *domain.Intelligence) (int64, error) {
		s.saved = append(s.saved, intel)
		return int64(len(s.saved)), nil
	}
	return s
}

func TestProcessor_Run(t *testing.T) {
	fetcher := &mocks.FetcherMock{
		FetchRecentFunc: func(_ context.Context, sourceName, _ string, _, _ int) ([]*domain.Episode, error) {
			return []*domain.Episode{
				{SourceName: sourceName, Title: "ep1", Description: "text one", AudioURL: "https://example.com/1.mp3"},
				{SourceName: sourceName, Title: "ep2", Description: "text two", PageURL: "https://example.com/2"},
			}, nil
		},
	}
	store := newInMemoryStore()
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			return &llm.Result{
				Headline:        "headline for " + req.EpisodeTitle,
				ImportanceScore: 7,
				CostUSD:         0.002,
				ModelID:         "gpt-4o-mini",
			}, nil
		},
	}

	cfg := testConfig(config.FeedConfig{Name: "test-pod", URL: "https://example.com/feed", Focus: "technology", Active: true})
	p := New(fetcher, store, extractor, openGate(), cfg)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Fetched)
	assert.Equal(t, 2, stats.Processed)
	assert.Zero(t, stats.AlreadyProcessed)
	assert.Zero(t, stats.Failed)
	assert.InEpsilon(t, 0.004, stats.TotalCostUSD, 0.000001)
	assert.Empty(t, stats.Errors)

	// extraction got the focus emphasis from config
	calls := extractor.ExtractCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "Focus on technical depth", calls[0].Req.Emphasis)
	assert.Equal(t, "technology", calls[0].Req.FocusTag)

	// intelligence records carry the episode audio url, page url as fallback
	require.Len(t, store.saved, 2)
	assert.Equal(t, "https://example.com/1.mp3", store.saved[0].EpisodeURL)
	assert.Equal(t, "https://example.com/2", store.saved[1].EpisodeURL)

	// episodes marked processed with one attempt each
	for _, ep := range store.episodes {
		assert.True(t, ep.Processed)
		assert.Equal(t, 1, ep.Attempts)
	}
}

func TestProcessor_RunSkipsProcessed(t *testing.T) {
	fetcher := &mocks.FetcherMock{
		FetchRecentFunc: func(_ context.Context, sourceName, _ string, _, _ int) ([]*domain.Episode, error) {
			return []*domain.Episode{
				{SourceName: sourceName, Title: "seen before", Description: "text"},
				{SourceName: sourceName, Title: "brand new", Description: "text"},
			}, nil
		},
	}
	store := newInMemoryStore()
	// pre-seed an already processed episode
	_, err := store.SaveEpisode(context.Background(), &domain.Episode{SourceName: "test-pod", Title: "seen before"})
	require.NoError(t, err)
	require.NoError(t, store.MarkEpisodeProcessed(context.Background(), 1))

	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			return &llm.Result{CostUSD: 0.001}, nil
		},
	}

	cfg := testConfig(config.FeedConfig{Name: "test-pod", URL: "https://example.com/feed", Active: true})
	p := New(fetcher, store, extractor, openGate(), cfg)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Fetched)
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 1, stats.AlreadyProcessed)
	assert.Len(t, extractor.ExtractCalls(), 1, "no extraction for the processed episode")
}

func TestProcessor_RunBudgetDenied(t *testing.T) {
	gate := &mocks.GateMock{
		CanProceedFunc: func(ctx context.Context) (bool, string, error) {
			return false, "daily limit reached: $5.00 / $5.00", nil
		},
	}
	fetcher := &mocks.FetcherMock{}

	cfg := testConfig(config.FeedConfig{Name: "test-pod", URL: "https://example.com/feed", Active: true})
	p := New(fetcher, newInMemoryStore(), &mocks.ExtractorMock{}, gate, cfg)

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, budget.ErrBudgetExceeded)
	assert.Contains(t, err.Error(), "daily limit reached")
	assert.Empty(t, fetcher.FetchRecentCalls(), "no fetching after a denied gate")
}

func TestProcessor_RunFeedFailureIsolated(t *testing.T) {
	fetcher := &mocks.FetcherMock{
		FetchRecentFunc: func(_ context.Context, sourceName, _ string, _, _ int) ([]*domain.Episode, error) {
			if sourceName == "broken-pod" {
				return nil, fmt.Errorf("connection refused")
			}
			return []*domain.Episode{{SourceName: sourceName, Title: "ep", Description: "text"}}, nil
		},
	}
	store := newInMemoryStore()
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			return &llm.Result{CostUSD: 0.001}, nil
		},
	}

	cfg := testConfig(
		config.FeedConfig{Name: "broken-pod", URL: "https://broken.example.com/feed", Active: true},
		config.FeedConfig{Name: "good-pod", URL: "https://example.com/feed", Active: true},
	)
	p := New(fetcher, store, extractor, openGate(), cfg)

	stats, err := p.Run(context.Background())
	require.NoError(t, err, "a failing feed never fails the run")

	assert.Equal(t, 1, stats.Fetched)
	assert.Equal(t, 1, stats.Processed)
	require.Len(t, stats.Errors, 1)
	assert.Contains(t, stats.Errors[0], "broken-pod")
	assert.Contains(t, stats.Errors[0], "connection refused")
}

func TestProcessor_RunEpisodeFailureIsolated(t *testing.T) {
	fetcher := &mocks.FetcherMock{
		FetchRecentFunc: func(_ context.Context, sourceName, _ string, _, _ int) ([]*domain.Episode, error) {
			return []*domain.Episode{
				{SourceName: sourceName, Title: "doomed", Description: "text"},
				{SourceName: sourceName, Title: "fine", Description: "text"},
			}, nil
		},
	}
	store := newInMemoryStore()
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			if req.EpisodeTitle == "doomed" {
				return nil, fmt.Errorf("%w: timeout", llm.ErrRequestFailed)
			}
			return &llm.Result{CostUSD: 0.001}, nil
		},
	}

	cfg := testConfig(config.FeedConfig{Name: "test-pod", URL: "https://example.com/feed", Active: true})
	p := New(fetcher, store, extractor, openGate(), cfg)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Fetched)
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 1, stats.Failed)
	require.Len(t, stats.Errors, 1)
	assert.Contains(t, stats.Errors[0], "doomed")

	// the failed episode keeps its attempt but stays unprocessed
	for _, ep := range store.episodes {
		if ep.Title == "doomed" {
			assert.False(t, ep.Processed)
			assert.Equal(t, 1, ep.Attempts)
		}
	}
	require.Len(t, store.saved, 1, "no intelligence saved for the failed episode")
}

func TestProcessor_RunRetriesLeftovers(t *testing.T) {
	// an unprocessed episode from an earlier failed run, not in the feed anymore
	store := newInMemoryStore()
	_, err := store.SaveEpisode(context.Background(), &domain.Episode{
		SourceName: "test-pod", Title: "leftover", Description: "old text", Attempts: 1})
	require.NoError(t, err)

	fetcher := &mocks.FetcherMock{
		FetchRecentFunc: func(_ context.Context, sourceName, _ string, _, _ int) ([]*domain.Episode, error) {
			return []*domain.Episode{{SourceName: sourceName, Title: "fresh", Description: "text"}}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, req llm.Request) (*llm.Result, error) {
			return &llm.Result{CostUSD: 0.001}, nil
		},
	}

	cfg := testConfig(config.FeedConfig{Name: "test-pod", URL: "https://example.com/feed", Active: true})
	p := New(fetcher, store, extractor, openGate(), cfg)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Fetched)
	assert.Equal(t, 2, stats.Processed, "the leftover is picked up alongside the fresh episode")

	for _, ep := range store.episodes {
		assert.True(t, ep.Processed)
	}
}

func TestProcessor_RunInactiveFeedsSkipped(t *testing.T) {
	fetcher := &mocks.FetcherMock{
		FetchRecentFunc: func(_ context.Context, sourceName, _ string, _, _ int) ([]*domain.Episode, error) {
			return nil, nil
		},
	}

	cfg := testConfig(
		config.FeedConfig{Name: "active-pod", URL: "https://example.com/feed", Active: true},
		config.FeedConfig{Name: "inactive-pod", URL: "https://example.com/feed2", Active: false},
		config.FeedConfig{Name: "urlless-pod", Active: true},
	)
	p := New(fetcher, newInMemoryStore(), &mocks.ExtractorMock{}, openGate(), cfg)

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	calls := fetcher.FetchRecentCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "active-pod", calls[0].SourceName)
}
