package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssFeed(items string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
<channel>
<title>Test Podcast</title>
<link>https://example.com</link>
<description>test feed</description>
%s
</channel>
</rss>`, items)
}

func rssItem(title, pubDate string) string {
	return fmt.Sprintf(`<item>
<title>%s</title>
<link>https://example.com/ep</link>
<guid>guid-%s</guid>
<description>episode about %s</description>
<pubDate>%s</pubDate>
<enclosure url="https://example.com/%s.mp3" type="audio/mpeg" length="1000"/>
<itunes:duration>45:00</itunes:duration>
</item>`, title, title, title, pubDate, title)
}

func TestParser_FetchRecent(t *testing.T) {
	now := time.Now()
	recent := now.Add(-24 * time.Hour).Format(time.RFC1123Z)
	old := now.AddDate(0, 0, -30).Format(time.RFC1123Z)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFeed(
			rssItem("ep1", recent)+
				rssItem("ep2", old)+
				rssItem("ep3", recent)))
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "test-agent/1.0")
	episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
	require.NoError(t, err)

	require.Len(t, episodes, 2, "old episode excluded")
	assert.Equal(t, "ep1", episodes[0].Title)
	assert.Equal(t, "ep3", episodes[1].Title)
	assert.Equal(t, "test-pod", episodes[0].SourceName)
	assert.Equal(t, "https://example.com/ep1.mp3", episodes[0].AudioURL)
	assert.Equal(t, "https://example.com/ep", episodes[0].PageURL)
	assert.Equal(t, 45, episodes[0].DurationMinutes)
	assert.Equal(t, "guid-ep1", episodes[0].GUID)
	assert.False(t, episodes[0].Published.IsZero())
}

func TestParser_FetchRecentMaxEpisodes(t *testing.T) {
	recent := time.Now().Add(-time.Hour).Format(time.RFC1123Z)

	var items string
	for i := 0; i < 10; i++ {
		items += rssItem(fmt.Sprintf("ep%d", i), recent)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssFeed(items))
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "test-agent/1.0")
	episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 3)
	require.NoError(t, err)

	require.Len(t, episodes, 3, "stops at max episodes")
	assert.Equal(t, "ep0", episodes[0].Title, "feed order preserved")
	assert.Equal(t, "ep2", episodes[2].Title)
}

func TestParser_FetchRecentUndatedIncluded(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssFeed(`<item>
<title>undated episode</title>
<link>https://example.com/ep</link>
<description>no date here</description>
</item>`))
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "test-agent/1.0")
	episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
	require.NoError(t, err)

	require.Len(t, episodes, 1, "undated entries are never excluded by the date filter")
	assert.Equal(t, "undated episode", episodes[0].Title)
	assert.True(t, episodes[0].Published.IsZero())
	assert.Equal(t, "undated episode", episodes[0].GUID, "guid falls back to title")
}

func TestParser_FetchRecentEmptyFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssFeed(""))
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "test-agent/1.0")
	episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
	require.NoError(t, err)
	assert.Empty(t, episodes)
}

func TestParser_FetchRecentErrors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		p := NewParser(5*time.Second, "test-agent/1.0")
		_, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFeedUnavailable)
	})

	t.Run("unparseable body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "this is not a feed")
		}))
		defer ts.Close()

		p := NewParser(5*time.Second, "test-agent/1.0")
		_, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFeedUnavailable)
	})

	t.Run("unreachable host", func(t *testing.T) {
		p := NewParser(time.Second, "test-agent/1.0")
		_, err := p.FetchRecent(context.Background(), "test-pod", "http://127.0.0.1:1/feed.xml", 7, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFeedUnavailable)
	})
}

func TestParser_FetchRecentSkipsUntitled(t *testing.T) {
	recent := time.Now().Add(-time.Hour).Format(time.RFC1123Z)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssFeed(`<item>
<description>entry with no title</description>
</item>`+rssItem("good one", recent)))
	}))
	defer ts.Close()

	p := NewParser(5*time.Second, "test-agent/1.0")
	episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
	require.NoError(t, err)

	require.Len(t, episodes, 1)
	assert.Equal(t, "good one", episodes[0].Title)
}

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"plain seconds", "3600", 60},
		{"plain seconds sub-minute", "45", 1},
		{"zero seconds", "0", 1},
		{"negative seconds", "-10", 0},
		{"mm:ss", "45:00", 45},
		{"mm:ss sub-minute", "0:30", 1},
		{"mm:ss over an hour", "90:00", 90},
		{"h:mm:ss", "1:30:00", 90},
		{"h:mm:ss with seconds", "2:15:45", 135},
		{"garbage", "about an hour", 0},
		{"partial time", "12:", 0},
		{"whitespace padded", " 1800 ", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDurationString(tt.input))
		})
	}
}

func TestParser_FetchRecentURLPriority(t *testing.T) {
	recent := time.Now().Add(-time.Hour).Format(time.RFC1123Z)

	t.Run("audio enclosure wins", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, rssFeed(fmt.Sprintf(`<item>
<title>ep</title>
<link>https://example.com/page</link>
<pubDate>%s</pubDate>
<enclosure url="https://example.com/audio.mp3" type="audio/mpeg" length="1"/>
</item>`, recent)))
		}))
		defer ts.Close()

		p := NewParser(5*time.Second, "test-agent/1.0")
		episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
		require.NoError(t, err)
		require.Len(t, episodes, 1)
		assert.Equal(t, "https://example.com/audio.mp3", episodes[0].AudioURL)
		assert.Equal(t, "https://example.com/page", episodes[0].PageURL)
	})

	t.Run("non-audio enclosure ignored", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, rssFeed(fmt.Sprintf(`<item>
<title>ep</title>
<link>https://example.com/page</link>
<pubDate>%s</pubDate>
<enclosure url="https://example.com/cover.jpg" type="image/jpeg" length="1"/>
</item>`, recent)))
		}))
		defer ts.Close()

		p := NewParser(5*time.Second, "test-agent/1.0")
		episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
		require.NoError(t, err)
		require.Len(t, episodes, 1)
		assert.Empty(t, episodes[0].AudioURL)
		assert.Equal(t, "https://example.com/page", episodes[0].PageURL)
	})

	t.Run("media content audio fallback", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
<title>Test</title>
<item>
<title>ep</title>
<media:content url="https://example.com/media.mp3" type="audio/mpeg"/>
</item>
</channel>
</rss>`)
		}))
		defer ts.Close()

		p := NewParser(5*time.Second, "test-agent/1.0")
		episodes, err := p.FetchRecent(context.Background(), "test-pod", ts.URL, 7, 5)
		require.NoError(t, err)
		require.Len(t, episodes, 1)
		assert.Equal(t, "https://example.com/media.mp3", episodes[0].AudioURL)
	})
}
