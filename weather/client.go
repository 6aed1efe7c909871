package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"

	"skycast/config"
)

// maxBodySize caps how much of a response we are willing to read.
const maxBodySize = 4 * 1024 * 1024

// Client talks to the OpenWeatherMap current-weather and icon endpoints.
// Every call is a fresh round trip: no retries and no caching.
type Client struct {
	apiKey     string
	weatherURL string
	iconURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *RateLimiter
}

// NewClient builds a client from the application configuration.
func NewClient(cfg *config.Config) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		weatherURL: cfg.WeatherURL,
		iconURL:    cfg.IconURL,
		userAgent:  config.UserAgent(),
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout, Jar: jar},
		limiter:    NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
	}, nil
}

// get performs a GET and returns the decoded body and the status code.
// A non-nil error means no usable response was received.
func (c *Client) get(ctx context.Context, target string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", "gzip, br")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error prints the full request URL, appid included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.redact(urlErr.URL)
		}
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	body, err := decompressBody(raw, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decompress response body: %w", err)
	}

	log.Printf("[Weather] GET %s -> %d (%d bytes, %v)",
		c.redact(target), resp.StatusCode, len(body), time.Since(start).Round(time.Millisecond))

	return body, resp.StatusCode, nil
}

// redact hides the API key before a URL is written to the log.
func (c *Client) redact(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("appid") {
		q.Set("appid", "***")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
