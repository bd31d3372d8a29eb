package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

const responseOK = "True"

// maxBody caps how much of an OMDb reply is read.
const maxBody = 1 << 20

// MetadataClient is what the services need from the metadata source. Every
// method returns nil when no data is available; failures are logged, never
// returned.
type MetadataClient interface {
	FetchByTitle(ctx context.Context, title string) *Movie
	FetchByIMDbID(ctx context.Context, imdbID string) *Movie
	Search(ctx context.Context, term string) []SearchResult
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.OMDbConfig, log *zap.Logger) *Client {
	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log.With(zap.String("client", "omdb")),
	}
}

// FetchByTitle looks up the full record for a free-text title.
func (c *Client) FetchByTitle(ctx context.Context, title string) *Movie {
	params := url.Values{}
	params.Set("t", title)
	params.Set("plot", "full")
	return c.fetchMovie(ctx, params)
}

// FetchByIMDbID looks up the full record for an IMDb id such as tt1375666.
func (c *Client) FetchByIMDbID(ctx context.Context, imdbID string) *Movie {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")
	return c.fetchMovie(ctx, params)
}

// Search returns short entries for movies matching term.
func (c *Client) Search(ctx context.Context, term string) []SearchResult {
	params := url.Values{}
	params.Set("s", term)
	params.Set("type", "movie")

	body := c.get(ctx, params)
	if body == nil {
		return nil
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.log.Warn("Failed to decode search response", zap.Error(err), zap.String("term", term))
		return nil
	}
	if result.Response != responseOK {
		c.log.Debug("No search results", zap.String("term", term), zap.String("reason", result.Error))
		return nil
	}

	return result.Search
}

func (c *Client) fetchMovie(ctx context.Context, params url.Values) *Movie {
	body := c.get(ctx, params)
	if body == nil {
		return nil
	}

	var movie Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		c.log.Warn("Failed to decode movie response", zap.Error(err))
		return nil
	}
	if movie.Response != responseOK {
		c.log.Debug("Movie not found", zap.String("query", redact(params)))
		return nil
	}

	return &movie
}

// get performs a single attempt and returns the body of a 200 reply, or nil.
func (c *Client) get(ctx context.Context, params url.Values) []byte {
	if c.apiKey == "" {
		return nil
	}

	safeQuery := redact(params)
	params.Set("apikey", c.apiKey)
	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		c.log.Warn("Failed to build OMDb request", zap.Error(err), zap.String("query", safeQuery))
		return nil
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("OMDb request failed", zap.Error(err), zap.String("query", safeQuery))
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		c.log.Warn("Failed to read OMDb response", zap.Error(err), zap.String("query", safeQuery))
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("OMDb API error",
			zap.Int("status", resp.StatusCode),
			zap.String("query", safeQuery),
		)
		return nil
	}

	c.log.Debug("OMDb API response",
		zap.String("query", safeQuery),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)
	return body
}

// redact encodes params without the API key.
func redact(params url.Values) string {
	safe := url.Values{}
	for k, v := range params {
		if k == "apikey" {
			continue
		}
		safe[k] = v
	}
	return safe.Encode()
}
