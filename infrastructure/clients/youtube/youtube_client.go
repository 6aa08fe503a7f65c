package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"yt-service/domain/model"
	"yt-service/domain/repository"
	"yt-service/infrastructure/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// apiPageSize is the hard per-call cap of the YouTube Data API search endpoint.
const apiPageSize = 50

// Client wraps the YouTube Data API v3 as the upstream search provider.
// One Search call fetches up to batchSize results by following API page
// tokens, so the rest of the service never needs the provider again for the
// same query while the cache entry lives.
type Client struct {
	service   *youtube.Service
	batchSize int
}

// Config represents YouTube API credentials. APIKey alone is enough for
// read-only search; OAuth fields enable the authenticated mode.
type Config struct {
	APIKey       string `json:"api_key"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewSearchClient creates a search client in API-key mode when no OAuth
// tokens are configured, otherwise in OAuth2 mode with automatic refresh.
func NewSearchClient(ctx context.Context, config *Config, batchSize int) (repository.IVideoSearch, error) {
	if batchSize <= 0 {
		batchSize = apiPageSize
	}

	if (config.AccessToken == "" || config.RefreshToken == "") && config.APIKey != "" {
		service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
		}
		return &Client{service: service, batchSize: batchSize}, nil
	}

	oauth2Config := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes:       []string{youtube.YoutubeReadonlyScope},
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-1 * time.Minute), // force refresh on first use
	}
	httpClient := oauth2Config.Client(ctx, token)
	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service, batchSize: batchSize}, nil
}

// Search returns the ordered result set for query, up to the configured
// batch size.
func (c *Client) Search(ctx context.Context, query string) ([]model.Video, error) {
	videos := make([]model.Video, 0, c.batchSize)
	pageToken := ""

	for len(videos) < c.batchSize {
		remaining := c.batchSize - len(videos)
		if remaining > apiPageSize {
			remaining = apiPageSize
		}

		call := c.service.Search.List([]string{"id", "snippet"}).
			Q(query).
			Type("video").
			MaxResults(int64(remaining)).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to search videos: %w", err)
		}

		var ids []string
		for _, item := range response.Items {
			if item.Id != nil && item.Id.VideoId != "" {
				ids = append(ids, item.Id.VideoId)
			}
		}
		if len(ids) == 0 {
			break
		}

		details, err := c.videoDetails(ctx, ids)
		if err != nil {
			return nil, err
		}
		// Preserve search order; the details call may reorder items.
		for _, id := range ids {
			if v, ok := details[id]; ok {
				videos = append(videos, v)
			}
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"query": query,
		"count": len(videos),
	}).Debug("Upstream search completed")
	return videos, nil
}

// videoDetails resolves durations and view counts for the given IDs.
func (c *Client) videoDetails(ctx context.Context, ids []string) (map[string]model.Video, error) {
	response, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}

	details := make(map[string]model.Video, len(response.Items))
	for _, item := range response.Items {
		details[item.Id] = c.convertVideo(item)
	}
	return details, nil
}

func (c *Client) convertVideo(video *youtube.Video) model.Video {
	var seconds int64
	if video.ContentDetails != nil {
		seconds = parseISODuration(video.ContentDetails.Duration)
	}
	thumbnail := ""
	if video.Snippet.Thumbnails != nil && video.Snippet.Thumbnails.High != nil {
		thumbnail = video.Snippet.Thumbnails.High.Url
	}
	if thumbnail == "" {
		thumbnail = fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", video.Id)
	}

	var views int64
	if video.Statistics != nil {
		views = int64(video.Statistics.ViewCount)
	}

	return model.Video{
		VideoID:         video.Id,
		Title:           video.Snippet.Title,
		Channel:         video.Snippet.ChannelTitle,
		Duration:        formatDuration(seconds),
		DurationSeconds: seconds,
		Views:           views,
		Thumbnail:       thumbnail,
		URL:             fmt.Sprintf("https://www.youtube.com/watch?v=%s", video.Id),
	}
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISODuration converts an ISO 8601 duration like "PT1H2M3S" to seconds.
func parseISODuration(iso string) int64 {
	m := isoDurationRe.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	var total int64
	for i, mult := range []int64{3600, 60, 1} {
		if m[i+1] != "" {
			n, _ := strconv.ParseInt(m[i+1], 10, 64)
			total += n * mult
		}
	}
	return total
}

// formatDuration renders seconds as "H:MM:SS" or "M:SS", or "N/A" when the
// duration is unknown (live streams report none).
func formatDuration(seconds int64) string {
	if seconds <= 0 {
		return "N/A"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
