package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kova98/redditgrow.api/analysis"
	"github.com/kova98/redditgrow.api/config"
	"github.com/kova98/redditgrow.api/metrics"
	"github.com/kova98/redditgrow.api/models"
)

const (
	threadCommentLimit = 50
	threadCommentSort  = "top"
)

type RedditClient struct {
	logger     *slog.Logger
	httpClient *http.Client
	metrics    *metrics.Metrics
	baseURL    string
}

func NewRedditClient(logger *slog.Logger, httpClient *http.Client, m *metrics.Metrics) *RedditClient {
	return &RedditClient{
		logger:     logger,
		httpClient: withUserAgent(httpClient, config.Config.RedditUserAgent),
		metrics:    m,
		baseURL:    strings.TrimRight(config.Config.RedditBaseURL, "/"),
	}
}

// FetchThread makes a single attempt; retrying is up to the caller.
func (c *RedditClient) FetchThread(ctx context.Context, subreddit, threadID string) ([]models.RedditListing, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(threadCommentLimit))
	query.Set("sort", threadCommentSort)
	u := fmt.Sprintf("%s/r/%s/comments/%s.json?%s",
		c.baseURL, url.PathEscape(subreddit), url.PathEscape(threadID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &analysis.UpstreamError{Reason: analysis.ReasonRequestFailed, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching thread", "url", u)
	ts := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream("thread", 0, time.Since(ts))
		return nil, &analysis.UpstreamError{Reason: analysis.ReasonRequestFailed, Err: err}
	}
	defer resp.Body.Close()
	c.metrics.ObserveUpstream("thread", resp.StatusCode, time.Since(ts))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		c.logger.Warn("reddit returned error status", "status", resp.StatusCode, "body", string(body))
		return nil, &analysis.UpstreamError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	var listings []models.RedditListing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, &analysis.UpstreamError{Reason: analysis.ReasonMalformedResponse, Err: err}
	}
	if len(listings) < 2 {
		return nil, &analysis.UpstreamError{Reason: analysis.ReasonMalformedResponse}
	}

	return listings, nil
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
