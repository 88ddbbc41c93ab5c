// Package tool implements the outward tool surface consumed by a host process.
//
// Every operation validates its input shape before any network call, resolves
// it through the fallback selector and normalizer, and returns an envelope
// value. Operations never return a Go error: every failure leaves as a
// well-formed error envelope.
package tool

import (
	"context"
	"strings"
	"time"

	"github.com/anihelper/anihelper/anilist"
	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/envelope"
	"github.com/anihelper/anihelper/fallback"
	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/jikan"
	"github.com/anihelper/anihelper/key"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/normalize"
	"github.com/anihelper/anihelper/retry"
	"github.com/anihelper/anihelper/source"
	"github.com/anihelper/anihelper/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Config carries the process-wide limits threaded through the dispatcher
// rather than read from mutable global state on every call.
type Config struct {
	// Preferred is the source tried first when the caller does not pick one.
	Preferred media.SourceTag
	// MaxPerPage caps the per-request result limit; larger requests are clamped.
	MaxPerPage int
	// Timeout bounds each upstream call and the aggregate retry budget.
	Timeout time.Duration
}

// FromConfig builds a Config from the global configuration.
func FromConfig() Config {
	return Config{
		Preferred:  media.SourceTag(viper.GetString(key.SourcesPreferred)),
		MaxPerPage: viper.GetInt(key.SearchMaxPerPage),
		Timeout:    time.Duration(viper.GetInt(key.HTTPTimeoutSec)) * time.Second,
	}
}

// Dispatcher is the outward-facing tool surface. It holds no per-call state
// and is safe for concurrent invocations.
type Dispatcher struct {
	cfg      Config
	policy   retry.Policy
	anilist  *anilist.Client
	selector *fallback.Selector
	now      func() time.Time
}

// New builds a Dispatcher over the Anilist client and the secondary adapter.
func New(cfg Config, policy retry.Policy, al *anilist.Client, secondary source.Source) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		policy:   policy,
		anilist:  al,
		selector: fallback.NewSelector(policy, al, secondary),
		now:      time.Now,
	}
}

// Default builds a Dispatcher from the global configuration and the real upstream clients.
func Default() *Dispatcher {
	return New(FromConfig(), retry.FromConfig(), anilist.New(), jikan.New())
}

// SearchArgs is the input shape of search_media.
type SearchArgs struct {
	// Query is the free-text title to search for.
	Query string `json:"query" jsonschema:"description=Free-text title to search for."`
	// Kind selects between anime and manga. Defaults to ANIME.
	Kind string `json:"kind,omitempty" jsonschema:"enum=ANIME,enum=MANGA,default=ANIME"`
	// Source picks the provider tried first. Defaults to the configured preference.
	Source string `json:"source,omitempty" jsonschema:"enum=anilist,enum=jikan,default=anilist"`
	// Limit caps the number of results. Values above the configured maximum are clamped.
	Limit int `json:"limit,omitempty" jsonschema:"default=5,minimum=1"`
}

// SearchMedia searches for media by title on the preferred source with fallback.
func (d *Dispatcher) SearchMedia(ctx context.Context, args SearchArgs) any {
	if strings.TrimSpace(args.Query) == "" {
		return invalid("query must not be empty")
	}
	kind, err := kindOrDefault(args.Kind)
	if err != nil {
		return envelope.Fail(err)
	}
	preferred, err := d.sourceOrDefault(args.Source)
	if err != nil {
		return envelope.Fail(err)
	}
	limit := util.Clamp(orDefault(args.Limit, 5), 1, d.cfg.MaxPerPage)

	ctx, cancel := d.callContext(ctx)
	defer cancel()

	raws, used, err := d.selector.Search(ctx, kind, args.Query, limit, preferred)
	if err != nil {
		return envelope.Fail(err)
	}

	hits, err := normalize.Hits(kind, raws, used)
	if err != nil {
		return envelope.Fail(err)
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}

	return envelope.NewSearch(args.Query, kind, used, hits)
}

// DetailsArgs is the input shape of media_details.
type DetailsArgs struct {
	// Source names the provider whose identifier namespace ID belongs to.
	Source string `json:"source" jsonschema:"enum=anilist,enum=jikan"`
	// ID is the provider-native identifier.
	ID int `json:"id" jsonschema:"minimum=1"`
	// Kind selects between anime and manga. Defaults to ANIME.
	Kind string `json:"kind,omitempty" jsonschema:"enum=ANIME,enum=MANGA,default=ANIME"`
}

// MediaDetails retrieves the full normalized record of a single media item.
func (d *Dispatcher) MediaDetails(ctx context.Context, args DetailsArgs) any {
	preferred, err := media.ParseTag(args.Source)
	if err != nil {
		return invalid("%s", err.Error())
	}
	if args.ID <= 0 {
		return invalid("id must be a positive integer")
	}
	kind, err := kindOrDefault(args.Kind)
	if err != nil {
		return envelope.Fail(err)
	}

	ctx, cancel := d.callContext(ctx)
	defer cancel()

	raw, used, err := d.selector.FetchByID(ctx, kind, args.ID, preferred)
	if err != nil {
		return envelope.Fail(err)
	}

	details, err := normalize.Details(kind, raw, used)
	if err != nil {
		return envelope.Fail(err)
	}

	return envelope.NewDetails(details)
}

// TrendingArgs is the input shape of trending.
type TrendingArgs struct {
	// Kind selects between anime and manga. Defaults to ANIME.
	Kind string `json:"kind,omitempty" jsonschema:"enum=ANIME,enum=MANGA,default=ANIME"`
	// Limit caps the number of results. Values above the configured maximum are clamped.
	Limit int `json:"limit,omitempty" jsonschema:"default=10,minimum=1"`
	// FormatIn optionally restricts results to release formats, e.g. MOVIE or TV.
	FormatIn []string `json:"formatIn,omitempty" jsonschema:"description=Optional release format filter (MOVIE, TV, OVA, ONA, SPECIAL)."`
}

// Trending lists the currently trending media. Only Anilist implements
// trending, so the preferred source is fixed and there is no fallback path.
func (d *Dispatcher) Trending(ctx context.Context, args TrendingArgs) any {
	kind, err := kindOrDefault(args.Kind)
	if err != nil {
		return envelope.Fail(err)
	}
	limit := util.Clamp(orDefault(args.Limit, 10), 1, d.cfg.MaxPerPage)
	formats := upperAll(args.FormatIn)

	ctx, cancel := d.callContext(ctx)
	defer cancel()

	raws, used, err := d.selector.Trending(ctx, kind, limit, formats, media.TagAnilist)
	if err != nil {
		return envelope.Fail(err)
	}

	hits, err := normalize.Hits(kind, raws, used)
	if err != nil {
		return envelope.Fail(err)
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}

	return envelope.NewTrending(kind, formats, hits)
}

// Health reports the configured sources without probing upstream reachability.
func (d *Dispatcher) Health(context.Context) any {
	return envelope.NewHealth(lo.Map(media.Tags(), func(tag media.SourceTag, _ int) string {
		return string(tag)
	}))
}

// About reports process metadata from static configuration. No network call.
func (d *Dispatcher) About(context.Context) any {
	return envelope.NewAbout(
		constant.Anihelper,
		constant.Version,
		envelope.Endpoints{Anilist: constant.AnilistEndpoint, Jikan: constant.JikanEndpoint},
		envelope.Limits{MaxPerPage: d.cfg.MaxPerPage, TimeoutSec: int(d.cfg.Timeout.Seconds())},
	)
}

// callContext bounds one tool invocation. The same deadline acts as the
// adapter-level call timeout and backstops the retry budget.
func (d *Dispatcher) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.cfg.Timeout)
}

// sourceOrDefault parses a provider tag, falling back to the configured preference.
func (d *Dispatcher) sourceOrDefault(s string) (media.SourceTag, error) {
	if s == "" {
		if d.cfg.Preferred != "" {
			return d.cfg.Preferred, nil
		}
		return media.TagAnilist, nil
	}
	tag, err := media.ParseTag(s)
	if err != nil {
		return "", fault.New(media.TagLocal, fault.InvalidArg, "%s", err.Error())
	}
	return tag, nil
}

// kindOrDefault parses a media kind, defaulting to ANIME.
func kindOrDefault(s string) (media.Kind, error) {
	if s == "" {
		return media.Anime, nil
	}
	kind, err := media.ParseKind(s)
	if err != nil {
		return "", fault.New(media.TagLocal, fault.InvalidArg, "%s", err.Error())
	}
	return kind, nil
}

// invalid builds an INVALID_ARG error envelope attributed to the local layer.
func invalid(format string, args ...any) envelope.Failure {
	return envelope.Fail(fault.New(media.TagLocal, fault.InvalidArg, format, args...))
}

func orDefault(v, fallbackValue int) int {
	if v == 0 {
		return fallbackValue
	}
	return v
}

func upperAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	return lo.Map(items, func(s string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(s))
	})
}
