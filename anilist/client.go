// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/log"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/network"
	"github.com/anihelper/anihelper/source"
)

// Client issues single GraphQL calls against the Anilist API. It holds no
// per-request state and is safe for concurrent use.
type Client struct {
	endpoint string
	http     *http.Client
}

// New returns a client bound to the public Anilist endpoint and the shared HTTP client.
func New() *Client {
	return NewWith(constant.AnilistEndpoint, network.Client)
}

// NewWith returns a client bound to a custom endpoint and HTTP client.
// Tests point this at a local httptest server.
func NewWith(endpoint string, httpClient *http.Client) *Client {
	return &Client{endpoint: endpoint, http: httpClient}
}

// Tag returns the provider identifier.
func (c *Client) Tag() media.SourceTag {
	return media.TagAnilist
}

// Supports reports operation support. Anilist implements every operation for both kinds.
func (c *Client) Supports(source.Operation, media.Kind) bool {
	return true
}

// gqlResponse is the outer GraphQL response envelope.
type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"errors"`
}

// gql executes one GraphQL query and returns the raw data document.
// Every failure leaves this method already classified.
func (c *Client) gql(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, fault.New(media.TagAnilist, fault.Internal, "encode request: %s", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fault.New(media.TagAnilist, fault.Internal, "build request: %s", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fault.FromTransport(media.TagAnilist, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("Anilist returned status code %d", resp.StatusCode)
		return nil, fault.FromStatus(media.TagAnilist, resp.StatusCode)
	}

	var response gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fault.New(media.TagAnilist, fault.NormalizeError, "decode response: %s", err.Error())
	}

	if len(response.Errors) > 0 {
		first := response.Errors[0]
		if first.Status == http.StatusNotFound {
			return nil, fault.New(media.TagAnilist, fault.NotFound, "%s", first.Message)
		}
		return nil, fault.New(media.TagAnilist, fault.Upstream4xx, "%s", first.Message)
	}

	return response.Data, nil
}

// Search discovers media matching the given text, returning provider-shaped items.
func (c *Client) Search(ctx context.Context, kind media.Kind, text string, limit int) ([]json.RawMessage, error) {
	log.Infof("Searching anilist for %s %q", kind, text)

	data, err := c.gql(ctx, searchQuery, map[string]any{
		"query":   text,
		"type":    kind,
		"perPage": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("anilist search: %w", err)
	}

	return decodePage(data)
}

// FetchByID retrieves a single media item by its Anilist identifier.
func (c *Client) FetchByID(ctx context.Context, kind media.Kind, id int) (json.RawMessage, error) {
	log.Infof("Fetching anilist %s with id %d", kind, id)

	data, err := c.gql(ctx, detailsQuery, map[string]any{
		"id":   id,
		"type": kind,
	})
	if err != nil {
		return nil, fmt.Errorf("anilist fetch: %w", err)
	}

	var page struct {
		Media json.RawMessage `json:"Media"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fault.New(media.TagAnilist, fault.NormalizeError, "decode media: %s", err.Error())
	}

	if isNull(page.Media) {
		return nil, fault.New(media.TagAnilist, fault.NotFound, "no %s with id %d on anilist", kind, id)
	}

	return page.Media, nil
}

// Trending retrieves the currently trending media, optionally restricted to formats.
func (c *Client) Trending(ctx context.Context, kind media.Kind, limit int, formats []string) ([]json.RawMessage, error) {
	log.Infof("Fetching anilist trending %s", kind)

	data, err := c.gql(ctx, trendingQuery, map[string]any{
		"type":    kind,
		"perPage": limit,
		"formats": formatsVar(formats),
	})
	if err != nil {
		return nil, fmt.Errorf("anilist trending: %w", err)
	}

	return decodePage(data)
}

// SeasonTop retrieves the top anime of a single season. Season filtering only
// exists for ANIME; callers degrade MANGA to Trending.
func (c *Client) SeasonTop(ctx context.Context, season string, year int, sort string, limit int, formats []string) ([]json.RawMessage, error) {
	log.Infof("Fetching anilist %s %d season top", season, year)

	data, err := c.gql(ctx, seasonQuery, map[string]any{
		"season":  season,
		"year":    year,
		"perPage": limit,
		"sort":    []string{sort},
		"formats": formatsVar(formats),
	})
	if err != nil {
		return nil, fmt.Errorf("anilist season top: %w", err)
	}

	return decodePage(data)
}

// decodePage extracts the media items of a Page document without interpreting them.
func decodePage(data json.RawMessage) ([]json.RawMessage, error) {
	var page struct {
		Page struct {
			Media []json.RawMessage `json:"media"`
		} `json:"Page"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fault.New(media.TagAnilist, fault.NormalizeError, "decode page: %s", err.Error())
	}

	log.Infof("Got response from Anilist, found %d results", len(page.Page.Media))
	return page.Page.Media, nil
}

// formatsVar maps an empty format filter to a null GraphQL variable.
func formatsVar(formats []string) any {
	if len(formats) == 0 {
		return nil
	}
	return formats
}

// isNull reports whether a raw JSON document is absent or the null literal.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
