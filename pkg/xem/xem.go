// Package xem reads scene numbering mappings from TheXEM.
package xem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://thexem.de"

// ErrNoMapping is returned when TheXEM has no entry for a show.
var ErrNoMapping = errors.New("xem: no mapping for show")

// Numbering is one side of a mapping.
type Numbering struct {
	Season   int `json:"season"`
	Episode  int `json:"episode"`
	Absolute int `json:"absolute"`
}

// Mapping links the TVDB numbering of an episode to its scene numbering.
type Mapping struct {
	TVDB  Numbering `json:"tvdb"`
	Scene Numbering `json:"scene"`
}

type response struct {
	Result  string          `json:"result"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client queries TheXEM.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New creates a client. An empty baseURL selects the public service.
func New(baseURL string, hc *http.Client, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc, log: log.With("component", "xem")}
}

// Mappings returns the scene mappings of a TVDB show.
// A show TheXEM does not know yields ErrNoMapping.
func (c *Client) Mappings(ctx context.Context, tvdbID int64) ([]Mapping, error) {
	q := url.Values{"id": {strconv.FormatInt(tvdbID, 10)}, "origin": {"tvdb"}}
	var out []Mapping
	if err := c.get(ctx, "/map/all", q, &out); err != nil {
		return nil, fmt.Errorf("mappings for %d: %w", tvdbID, err)
	}
	return out, nil
}

// MappedShows lists the TVDB ids TheXEM has mappings for.
func (c *Client) MappedShows(ctx context.Context) ([]int64, error) {
	var raw []string
	if err := c.get(ctx, "/map/havemap", url.Values{"origin": {"tvdb"}}, &raw); err != nil {
		return nil, fmt.Errorf("mapped shows: %w", err)
	}
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.log.Debug("skipping malformed show id", "value", s)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if r.Result != "success" {
		if strings.Contains(strings.ToLower(r.Message), "no show") {
			return ErrNoMapping
		}
		return fmt.Errorf("%s failed: %s", path, r.Message)
	}
	if err := json.Unmarshal(r.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", path, err)
	}
	return nil
}
