package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://api4.thetvdb.com/v4"
	// maxPages bounds episode pagination.
	maxPages = 100
)

// Client talks to the TVDB v4 API. It logs in lazily and re-authenticates
// once when the bearer token is rejected.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *slog.Logger

	mu    sync.Mutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.log = l } }

// New creates a client for apiKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "tvdb")
	return c
}

// SeriesByID fetches a series.
func (c *Client) SeriesByID(ctx context.Context, id int64) (*Series, error) {
	var env envelope[seriesData]
	if err := c.get(ctx, "/series/"+strconv.FormatInt(id, 10), nil, &env); err != nil {
		return nil, fmt.Errorf("series %d: %w", id, err)
	}
	d := env.Data
	s := &Series{
		ID:         d.ID,
		Name:       d.Name,
		Slug:       d.Slug,
		Status:     d.Status.Name,
		FirstAired: parseDate(d.FirstAired),
	}
	s.Year, _ = strconv.Atoi(d.Year)
	if s.Year == 0 && s.FirstAired != nil {
		s.Year = s.FirstAired.Year()
	}
	return s, nil
}

// EpisodesBySeries lists every episode of a series in the default (aired)
// order, following pagination.
func (c *Client) EpisodesBySeries(ctx context.Context, id int64) ([]Episode, error) {
	start := time.Now()
	var out []Episode
	page := 0
	for ; page < maxPages; page++ {
		var env envelope[episodesPage]
		q := url.Values{"page": {strconv.Itoa(page)}}
		if err := c.get(ctx, fmt.Sprintf("/series/%d/episodes/default", id), q, &env); err != nil {
			return nil, fmt.Errorf("episodes of series %d: %w", id, err)
		}
		for _, e := range env.Data.Episodes {
			out = append(out, Episode{
				ID:      e.ID,
				Season:  e.SeasonNumber,
				Number:  e.Number,
				Name:    e.Name,
				Aired:   parseDate(e.Aired),
				Runtime: e.Runtime,
			})
		}
		if env.Links.Next == nil || *env.Links.Next == "" {
			break
		}
	}
	if page == maxPages {
		c.log.Warn("episode pagination truncated", "series_id", id, "pages", page)
	}
	c.log.Debug("fetched episodes", "series_id", id, "count", len(out), "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

// Search finds series by name.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	var env envelope[[]searchData]
	q := url.Values{"query": {query}, "type": {"series"}}
	if err := c.get(ctx, "/search", q, &env); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	results := make([]SearchResult, 0, len(env.Data))
	for _, d := range env.Data {
		id, err := strconv.ParseInt(d.TVDBID, 10, 64)
		if err != nil {
			continue
		}
		year, _ := strconv.Atoi(d.Year)
		results = append(results, SearchResult{ID: id, Name: d.Name, Year: year, Network: d.Network})
	}
	return results, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	target := c.baseURL + endpoint
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	token, err := c.bearer(ctx, false)
	if err != nil {
		return err
	}
	resp, err := c.send(ctx, target, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close()
		c.log.Debug("token rejected, logging in again")
		if token, err = c.bearer(ctx, true); err != nil {
			return err
		}
		if resp, err = c.send(ctx, target, token); err != nil {
			return err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp.StatusCode, endpoint); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, target, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	return resp, nil
}

// bearer returns the cached token, logging in when there is none or when
// refresh is set.
func (c *Client) bearer(ctx context.Context, refresh bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && !refresh {
		return c.token, nil
	}

	body, err := json.Marshal(map[string]string{"apikey": c.apiKey})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp.StatusCode, "/login"); err != nil {
		return "", err
	}
	var env envelope[loginData]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("decode login: %w", err)
	}
	if env.Data.Token == "" {
		return "", fmt.Errorf("login: empty token: %w", ErrUnauthorized)
	}
	c.token = env.Data.Token
	c.log.Debug("logged in")
	return c.token, nil
}

func statusError(code int, endpoint string) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &APIError{StatusCode: code, Endpoint: endpoint}
	}
}
