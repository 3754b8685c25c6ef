// Package newznab implements the search side of the Newznab indexer API.
package newznab

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TVCategories are the standard Newznab TV categories.
var TVCategories = []int{5000, 5010, 5020, 5030, 5040, 5045, 5050, 5070}

// Query describes a TV search. Zero fields are omitted from the request.
type Query struct {
	Text       string
	TVDBID     int64
	Season     int // 0 means any season
	Categories []int
	Limit      int
}

// Release is one search hit.
type Release struct {
	Title       string
	GUID        string
	DownloadURL string
	Size        int64
	PublishDate time.Time
	Indexer     string
}

// Client searches one indexer.
type Client struct {
	name    string
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.log = l } }

// New creates a client for the indexer at baseURL.
func New(name, baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "newznab", "indexer", name)
	return c
}

// Name is the configured indexer name.
func (c *Client) Name() string { return c.name }

// Search runs a tvsearch request.
func (c *Client) Search(ctx context.Context, q Query) ([]Release, error) {
	start := time.Now()
	params := url.Values{"t": {"tvsearch"}, "apikey": {c.apiKey}}
	if q.Text != "" {
		params.Set("q", q.Text)
	}
	if q.TVDBID > 0 {
		params.Set("tvdbid", strconv.FormatInt(q.TVDBID, 10))
	}
	if q.Season > 0 {
		params.Set("season", strconv.Itoa(q.Season))
	}
	cats := q.Categories
	if len(cats) == 0 {
		cats = TVCategories
	}
	ids := make([]string, len(cats))
	for i, cat := range cats {
		ids[i] = strconv.Itoa(cat)
	}
	params.Set("cat", strings.Join(ids, ","))
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.name, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", c.name, resp.StatusCode)
	}

	var doc feed
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: parse feed: %w", c.name, err)
	}
	if doc.Error != nil {
		return nil, fmt.Errorf("%s: api error %s: %s", c.name, doc.Error.Code, doc.Error.Description)
	}

	out := make([]Release, 0, len(doc.Channel.Items))
	for _, it := range doc.Channel.Items {
		out = append(out, it.release(c.name))
	}
	c.log.Debug("search complete", "query", q.Text, "season", q.Season, "results", len(out), "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}
