// Package fetch retrieves product pages and resolves short links.
// It implements the domain.PageFetcher and domain.URLResolver interfaces.
package fetch

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/linklens/backend/internal/domain"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds timeouts for the fetch client
type Config struct {
	ResolveTimeout time.Duration
	PageTimeout    time.Duration
	RequestsPerSec float64
}

// Client fetches e-commerce pages over HTTP with browser-like headers
// and a shared rate limiter
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter

	resolveTimeout time.Duration
	pageTimeout    time.Duration
}

// NewClient creates a fetch client
func NewClient(config Config) *Client {
	if config.ResolveTimeout <= 0 {
		config.ResolveTimeout = 10 * time.Second
	}
	if config.PageTimeout <= 0 {
		config.PageTimeout = 15 * time.Second
	}
	if config.RequestsPerSec <= 0 {
		config.RequestsPerSec = 5
	}

	return &Client{
		httpClient:     &http.Client{},
		rateLimiter:    rate.NewLimiter(rate.Limit(config.RequestsPerSec), 10),
		resolveTimeout: config.ResolveTimeout,
		pageTimeout:    config.PageTimeout,
	}
}

// newRequest creates a request with browser-like headers; several of the
// supported storefronts serve bot traffic an empty shell without them
func (c *Client) newRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	return req, nil
}

// Resolve follows redirects to a short link's final destination. It
// probes with HEAD first to avoid downloading the body, retries with GET
// on failure, and returns the input unchanged when both attempts fail.
func (c *Client) Resolve(ctx context.Context, rawURL string) string {
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		reqCtx, cancel := context.WithTimeout(ctx, c.resolveTimeout)

		req, err := c.newRequest(reqCtx, method, rawURL)
		if err != nil {
			cancel()
			return rawURL
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[FETCH] %s resolve failed for %s: %v", method, rawURL, err)
			cancel()
			continue
		}

		resp.Body.Close()
		cancel()
		return resp.Request.URL.String()
	}

	return rawURL
}

// Fetch retrieves the page at the given URL and parses it into a
// queryable document
func (c *Client) Fetch(ctx context.Context, rawURL string) (*goquery.Document, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.pageTimeout)
	defer cancel()

	req, err := c.newRequest(reqCtx, http.MethodGet, rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return doc, nil
}
