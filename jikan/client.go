// Package jikan provides a client for the Jikan REST API, an unauthenticated MyAnimeList mirror.
package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/key"
	"github.com/anihelper/anihelper/log"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/network"
	"github.com/anihelper/anihelper/source"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// Client issues single REST calls against the Jikan API. The embedded rate
// limiter is the only state shared across invocations and is internally
// synchronized; everything else is call-scoped.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

// New returns a client bound to the public Jikan endpoint and the shared HTTP
// client, rate limited per configuration.
func New() *Client {
	perSec := viper.GetInt(key.JikanRatePerSec)
	if perSec <= 0 {
		perSec = 3
	}
	return NewWith(constant.JikanEndpoint, network.Client, perSec)
}

// NewWith returns a client bound to a custom endpoint, HTTP client and rate.
// Tests point this at a local httptest server.
func NewWith(base string, httpClient *http.Client, ratePerSec int) *Client {
	return &Client{
		base:    base,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
	}
}

// Tag returns the provider identifier.
func (c *Client) Tag() media.SourceTag {
	return media.TagJikan
}

// Supports reports operation support. Jikan has no trending endpoint.
func (c *Client) Supports(op source.Operation, _ media.Kind) bool {
	return op != source.OpTrending
}

// kindPath maps a canonical kind to Jikan's URL path segment.
func kindPath(kind media.Kind) string {
	if kind == media.Manga {
		return "manga"
	}
	return "anime"
}

// get executes one rate-limited GET request and decodes the data document into out.
// Every failure leaves this method already classified.
func (c *Client) get(ctx context.Context, u string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fault.FromTransport(media.TagJikan, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fault.New(media.TagJikan, fault.Internal, "build request: %s", err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fault.FromTransport(media.TagJikan, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("Jikan returned status code %d", resp.StatusCode)
		return fault.FromStatus(media.TagJikan, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fault.New(media.TagJikan, fault.NormalizeError, "decode response: %s", err.Error())
	}

	return nil
}

// Search discovers media matching the given text, returning provider-shaped items.
func (c *Client) Search(ctx context.Context, kind media.Kind, text string, limit int) ([]json.RawMessage, error) {
	log.Infof("Searching jikan for %s %q", kind, text)

	q := url.Values{}
	q.Set("q", text)
	q.Set("limit", strconv.Itoa(limit))

	var response struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("%s/%s?%s", c.base, kindPath(kind), q.Encode()), &response); err != nil {
		return nil, fmt.Errorf("jikan search: %w", err)
	}

	log.Infof("Got response from Jikan, found %d results", len(response.Data))
	return response.Data, nil
}

// FetchByID retrieves a single media item by its MyAnimeList identifier.
func (c *Client) FetchByID(ctx context.Context, kind media.Kind, id int) (json.RawMessage, error) {
	log.Infof("Fetching jikan %s with id %d", kind, id)

	var response struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("%s/%s/%d", c.base, kindPath(kind), id), &response); err != nil {
		return nil, fmt.Errorf("jikan fetch: %w", err)
	}

	if len(response.Data) == 0 || string(response.Data) == "null" {
		return nil, fault.New(media.TagJikan, fault.NotFound, "no %s with id %d on jikan", kind, id)
	}

	return response.Data, nil
}

// Trending is not implemented by Jikan; Supports already reports this, so a
// direct call is a local misuse rather than an upstream failure.
func (c *Client) Trending(context.Context, media.Kind, int, []string) ([]json.RawMessage, error) {
	return nil, fault.New(media.TagJikan, fault.InvalidArg, "trending is not supported by jikan")
}
