package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/podscope/pkg/domain"
)

// ErrFeedUnavailable returned when a feed can't be fetched or parsed at all.
// A malformed feed that still yields entries is tolerated, best-effort.
var ErrFeedUnavailable = fmt.Errorf("feed unavailable")

// Parser fetches and parses podcast RSS/Atom feeds into episodes
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// FetchRecent fetches a feed and returns up to maxEpisodes episodes published
// within the trailing lookbackDays window. Entries without a parseable date
// are included - date-based exclusion should never be a false negative.
// Feed ordering is preserved, filtering stops once maxEpisodes matched.
func (p *Parser) FetchRecent(ctx context.Context, sourceName, feedURL string, lookbackDays, maxEpisodes int) ([]*domain.Episode, error) {
	log.Printf("[INFO] fetching episodes from %q", sourceName)

	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrFeedUnavailable, sourceName, err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrFeedUnavailable, sourceName, err)
	}

	if len(parsed.Items) == 0 {
		log.Printf("[WARN] no entries found in feed %q", sourceName)
		return []*domain.Episode{}, nil
	}

	cutoff := time.Now().AddDate(0, 0, -lookbackDays)

	// over-fetch candidates, entries near the lookback boundary may be
	// excluded and feed order isn't guaranteed chronological
	candidates := parsed.Items
	if len(candidates) > maxEpisodes*2 {
		candidates = candidates[:maxEpisodes*2]
	}

	episodes := make([]*domain.Episode, 0, maxEpisodes)
	for _, item := range candidates {
		ep := p.parseEntry(item, sourceName)
		if ep == nil {
			continue
		}

		if !ep.Published.IsZero() && ep.Published.Before(cutoff) {
			continue
		}

		episodes = append(episodes, ep)
		if len(episodes) >= maxEpisodes {
			break
		}
	}

	log.Printf("[INFO] found %d recent episodes for %q", len(episodes), sourceName)
	return episodes, nil
}

// parseEntry converts a single feed item to an episode, best-effort.
// Returns nil for entries that can't be used.
func (p *Parser) parseEntry(item *gofeed.Item, sourceName string) *domain.Episode {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		log.Printf("[WARN] entry missing title in feed %q, skipping", sourceName)
		return nil
	}

	guid := item.GUID
	if guid == "" {
		guid = title
	}

	ep := &domain.Episode{
		SourceName:      sourceName,
		Title:           title,
		GUID:            guid,
		Description:     strings.TrimSpace(item.Description),
		DurationMinutes: parseEntryDuration(item),
	}

	if item.PublishedParsed != nil {
		ep.Published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		ep.Published = *item.UpdatedParsed
	}

	ep.AudioURL, ep.PageURL = extractURLs(item)
	return ep
}

// extractURLs picks audio and episode page URLs with fixed priority:
// audio enclosure, then audio media:content, then link metadata, then the
// entry permalink as the page fallback. First match wins per slot.
func extractURLs(item *gofeed.Item) (audioURL, pageURL string) {
	// priority 1: enclosures with an audio media type
	for _, enc := range item.Enclosures {
		if enc != nil && strings.Contains(enc.Type, "audio") {
			audioURL = enc.URL
			break
		}
	}

	// priority 2: media:content extension with an audio type
	if audioURL == "" {
		if mediaExt, ok := item.Extensions["media"]; ok {
			for _, content := range mediaExt["content"] {
				if strings.Contains(content.Attrs["type"], "audio") {
					audioURL = content.Attrs["url"]
					break
				}
			}
		}
	}

	// priority 3: the alternate link becomes the episode page
	if item.Link != "" {
		pageURL = item.Link
	}

	// fallback: any remaining link fills the page slot
	if pageURL == "" && len(item.Links) > 0 {
		pageURL = item.Links[0]
	}

	return audioURL, pageURL
}

// durationRe matches H:MM:SS and MM:SS forms
var durationRe = regexp.MustCompile(`^(\d+):(\d+)(?::(\d+))?$`)

// parseEntryDuration extracts episode duration in whole minutes, 0 if unknown
func parseEntryDuration(item *gofeed.Item) int {
	if item.ITunesExt == nil {
		return 0
	}
	return parseDurationString(item.ITunesExt.Duration)
}

// parseDurationString converts a duration value to whole minutes. Accepts
// plain seconds ("3600"), MM:SS ("60:00") and H:MM:SS ("1:00:00") forms,
// any positive duration floors to at least 1 minute. Unparseable input
// gives 0, never a fabricated default.
func parseDurationString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// plain number of seconds
	if secs, err := strconv.Atoi(s); err == nil {
		if secs < 0 {
			return 0
		}
		return max(1, secs/60)
	}

	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	var total int
	if m[3] != "" { // H:MM:SS
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		total = hours*60 + minutes + seconds/60
	} else { // MM:SS
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		total = minutes + seconds/60
	}

	return max(1, total)
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
