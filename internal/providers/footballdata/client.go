package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"prode-service/internal/domain"
	"prode-service/internal/providers"
)

const requestTimeout = 10 * time.Second

// Config controls how the client reaches the football-data API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches matches from the football-data v4 API and maps them to
// domain games.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a football-data client with the provided
// configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchGames retrieves matches for the given date (YYYY-MM-DD, empty
// means today) in the given competition.
func (c *Client) FetchGames(ctx context.Context, date string, league string) ([]domain.Game, error) {
	req, err := c.buildRequest(ctx, date, league)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimitError(resp)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("footballdata: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload matchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("footballdata: decode response: %w", err)
	}

	games := make([]domain.Game, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		games = append(games, mapMatch(m))
	}
	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, date string, league string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/matches", nil)
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = c.now().UTC().Format("2006-01-02")
	}
	q := req.URL.Query()
	q.Set("dateFrom", date)
	q.Set("dateTo", date)
	if league != "" {
		q.Set("competitions", league)
	}
	req.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		req.Header.Set("X-Auth-Token", c.apiKey)
	}
	return req, nil
}

func rateLimitError(resp *http.Response) error {
	retryAfter := time.Duration(0)
	if raw := resp.Header.Get("Retry-After"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			retryAfter = time.Duration(secs) * time.Second
		}
	}
	return &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		RetryAfter: retryAfter,
		Remaining:  resp.Header.Get("X-Requests-Available-Minute"),
	}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		return "https://api.football-data.org/v4"
	}
	return strings.TrimRight(raw, "/")
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: requestTimeout}
}
