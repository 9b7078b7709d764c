package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	youtube "github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog/log"

	"euplay-bot/pkg/retrylimit"
)

var videoPattern = regexp.MustCompile(`"url":"/watch\?v=([a-zA-Z0-9_-]{11})`)

// YouTube resolves queries against YouTube: direct video links are cleaned
// and used as-is, anything else goes through a first-result title search.
type YouTube struct {
	BaseURL string
	Client  *http.Client

	yt  *youtube.Client
	lim *retrylimit.AdaptiveLimiter
}

func NewYouTube() *YouTube {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	return &YouTube{
		BaseURL: "https://www.youtube.com",
		Client:  httpClient,
		yt:      &youtube.Client{HTTPClient: httpClient},
		lim:     retrylimit.NewAdaptiveLimiter(5, 1, 10, 1, 0.5),
	}
}

func (r *YouTube) Resolve(ctx context.Context, query string) (*Track, error) {
	query = strings.TrimSpace(query)

	var watchURL string
	if isURL(query) {
		if !isYouTubeVideoURL(query) {
			return nil, fmt.Errorf("%w: only YouTube links are supported", ErrNotFound)
		}
		watchURL = cleanVideoURL(query)
	} else {
		found, err := r.searchFirstVideoURL(ctx, query)
		if err != nil {
			return nil, err
		}
		watchURL = found
	}

	video, err := r.yt.GetVideoContext(ctx, watchURL)
	if err != nil {
		return nil, fmt.Errorf("fetch video metadata: %w", err)
	}

	formats := video.Formats.Type("audio")
	if len(formats) == 0 {
		formats = video.Formats
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: video has no playable formats", ErrNotFound)
	}
	formats.Sort()

	streamURL, err := r.yt.GetStreamURLContext(ctx, video, &formats[0])
	if err != nil {
		return nil, fmt.Errorf("fetch stream URL: %w", err)
	}

	log.Debug().Str("title", video.Title).Str("url", watchURL).Msg("resolved track")

	return &Track{
		Title:     video.Title,
		URL:       watchURL,
		StreamURL: streamURL,
		Duration:  video.Duration,
	}, nil
}

// searchFirstVideoURL scrapes the search results page and returns the first
// video's watch URL. Retried with the adaptive limiter since YouTube throttles
// scrapes aggressively.
func (r *YouTube) searchFirstVideoURL(ctx context.Context, query string) (string, error) {
	searchURL := fmt.Sprintf("%s/results?search_query=%s", r.BaseURL, url.QueryEscape(query))

	var watchURL string
	err := retrylimit.WithRetryMax(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
		if err != nil {
			return &retrylimit.FatalError{Err: err}
		}

		resp, err := r.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("search failed with status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		matches := videoPattern.FindStringSubmatch(string(body))
		if len(matches) < 2 {
			return &retrylimit.FatalError{Err: ErrNotFound}
		}

		watchURL = fmt.Sprintf("%s/watch?v=%s", r.BaseURL, matches[1])
		return nil
	}, r.lim, 3)
	if err != nil {
		var fatal *retrylimit.FatalError
		if errors.As(err, &fatal) {
			return "", fatal.Err
		}
		return "", fmt.Errorf("search for %q: %w", query, err)
	}

	return watchURL, nil
}
