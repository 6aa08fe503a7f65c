package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"yt-service/domain/model"
	"yt-service/domain/repository"
	"yt-service/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

const watchURL = "https://www.youtube.com/watch?v="

// userAgents are rotated across retry attempts; YouTube throttles repeated
// caption requests from a single agent string.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 OPR/112.0.0.0",
}

// Client fetches video transcripts from YouTube's timedtext endpoint. Track
// discovery goes through the watch page, which embeds the caption track list.
type Client struct {
	httpClient *http.Client
	maxRetries int
}

// NewClient creates a transcript client with the given retry budget and
// per-request timeout.
func NewClient(maxRetries int, timeout time.Duration) repository.ITranscript {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
	}
}

// captionTrack mirrors the track descriptors embedded in the watch page.
type captionTrack struct {
	BaseURL        string `json:"baseUrl"`
	LanguageCode   string `json:"languageCode"`
	Kind           string `json:"kind"` // "asr" marks auto-generated tracks
	IsTranslatable bool   `json:"isTranslatable"`
}

// timedtextOptions are the query parameters appended to a track's base URL.
type timedtextOptions struct {
	Fmt   string `url:"fmt"`
	TLang string `url:"tlang,omitempty"`
}

// Fetch retrieves the transcript for videoID, preferring a track in
// targetLanguage, then an English or any other track translated to
// targetLanguage. When translation is unavailable the original language is
// returned instead of failing.
func (c *Client) Fetch(ctx context.Context, videoID, targetLanguage string) (*model.Transcript, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		ua := userAgents[attempt%len(userAgents)]
		transcript, err := c.fetchOnce(ctx, videoID, targetLanguage, ua)
		if err == nil {
			return transcript, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		logger.GetLogger().WithFields(map[string]interface{}{
			"video_id": videoID,
			"attempt":  attempt + 1,
			"error":    err,
		}).Warn("Transcript fetch attempt failed")
		if attempt < c.maxRetries-1 {
			time.Sleep(time.Second)
		}
	}
	return nil, fmt.Errorf("%w: %v", model.ErrTranscriptUnavailable, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, videoID, targetLanguage, userAgent string) (*model.Transcript, error) {
	tracks, err := c.listTracks(ctx, videoID, userAgent)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no caption tracks for video %s", videoID)
	}

	track := pickTrack(tracks, targetLanguage)
	actualLanguage := targetLanguage

	opts := timedtextOptions{Fmt: "json3"}
	if track.LanguageCode != targetLanguage {
		if track.IsTranslatable {
			opts.TLang = targetLanguage
		} else {
			actualLanguage = track.LanguageCode
		}
	}

	segments, err := c.fetchSegments(ctx, track.BaseURL, opts, userAgent)
	if err != nil && opts.TLang != "" {
		// Translation rejected; fall back to the track's own language.
		logger.GetLogger().WithFields(map[string]interface{}{
			"video_id": videoID,
			"language": track.LanguageCode,
		}).Info("Translation unavailable, returning original language")
		opts.TLang = ""
		actualLanguage = track.LanguageCode
		segments, err = c.fetchSegments(ctx, track.BaseURL, opts, userAgent)
	}
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("empty transcript for video %s", videoID)
	}

	return &model.Transcript{
		VideoID:  videoID,
		Language: actualLanguage,
		Segments: segments,
	}, nil
}

var captionTracksRe = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

// listTracks scrapes the caption track descriptors from the watch page.
func (c *Client) listTracks(ctx context.Context, videoID, userAgent string) ([]captionTrack, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL+videoID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	m := captionTracksRe.FindSubmatch(body)
	if m == nil {
		return nil, nil
	}
	var tracks []captionTrack
	if err := json.Unmarshal(m[1], &tracks); err != nil {
		return nil, fmt.Errorf("failed to parse caption tracks: %w", err)
	}
	return tracks, nil
}

// pickTrack prefers a manual track in lang, then a generated one, then the
// English equivalents, then whatever comes first.
func pickTrack(tracks []captionTrack, lang string) captionTrack {
	preferences := []func(t captionTrack) bool{
		func(t captionTrack) bool { return t.LanguageCode == lang && t.Kind != "asr" },
		func(t captionTrack) bool { return t.LanguageCode == lang },
		func(t captionTrack) bool { return t.LanguageCode == "en" && t.Kind != "asr" },
		func(t captionTrack) bool { return t.LanguageCode == "en" },
	}
	for _, match := range preferences {
		for _, t := range tracks {
			if match(t) {
				return t
			}
		}
	}
	return tracks[0]
}

// timedtextResponse mirrors the json3 timedtext payload.
type timedtextResponse struct {
	Events []struct {
		StartMs    int64 `json:"tStartMs"`
		DurationMs int64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

func (c *Client) fetchSegments(ctx context.Context, baseURL string, opts timedtextOptions, userAgent string) ([]model.TranscriptSegment, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+sep+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timedtext: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}

	var payload timedtextResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse timedtext: %w", err)
	}

	segments := make([]model.TranscriptSegment, 0, len(payload.Events))
	for _, event := range payload.Events {
		var sb strings.Builder
		for _, seg := range event.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " "))
		if text == "" {
			continue
		}
		segments = append(segments, model.TranscriptSegment{
			Text:     text,
			Start:    float64(event.StartMs) / 1000,
			Duration: float64(event.DurationMs) / 1000,
		})
	}
	return segments, nil
}
