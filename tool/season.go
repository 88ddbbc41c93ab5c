package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/anihelper/anihelper/envelope"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/normalize"
	"github.com/anihelper/anihelper/util"
	"github.com/samber/lo"
)

// seasons is the closed set of Anilist season identifiers.
var seasons = []string{"WINTER", "SPRING", "SUMMER", "FALL"}

// SeasonTopArgs is the input shape of season_top.
type SeasonTopArgs struct {
	// Kind selects between anime and manga. Defaults to ANIME.
	Kind string `json:"kind,omitempty" jsonschema:"enum=ANIME,enum=MANGA,default=ANIME"`
	// Season names the season to rank. Defaults to the current season.
	Season string `json:"season,omitempty" jsonschema:"enum=WINTER,enum=SPRING,enum=SUMMER,enum=FALL"`
	// Year is the season year. Defaults to the current year.
	Year int `json:"year,omitempty"`
	// Sort is the Anilist ranking order. Defaults to TRENDING_DESC.
	Sort string `json:"sort,omitempty" jsonschema:"default=TRENDING_DESC"`
	// Limit caps the number of results. Values above the configured maximum are clamped.
	Limit int `json:"limit,omitempty" jsonschema:"default=10,minimum=1"`
	// FormatIn optionally restricts results to release formats, e.g. MOVIE.
	FormatIn []string `json:"formatIn,omitempty"`
}

// SeasonTop ranks the media of a single season. Anilist has no season concept
// for MANGA, so that kind degrades to plain trending with no season metadata.
func (d *Dispatcher) SeasonTop(ctx context.Context, args SeasonTopArgs) any {
	kind, err := kindOrDefault(args.Kind)
	if err != nil {
		return envelope.Fail(err)
	}
	limit := util.Clamp(orDefault(args.Limit, 10), 1, d.cfg.MaxPerPage)
	formats := upperAll(args.FormatIn)
	sort := args.Sort
	if sort == "" {
		sort = "TRENDING_DESC"
	}

	ctx, cancel := d.callContext(ctx)
	defer cancel()

	if kind == media.Manga {
		raws, used, err := d.selector.Trending(ctx, kind, limit, formats, media.TagAnilist)
		if err != nil {
			return envelope.Fail(err)
		}
		hits, err := normalize.Hits(kind, raws, used)
		if err != nil {
			return envelope.Fail(err)
		}
		return envelope.NewSeasonTop(kind, nil, nil, "TRENDING_DESC", formats, hits)
	}

	now := d.now().UTC()
	season := args.Season
	if season == "" {
		season = seasonOf(now.Month())
	} else if !lo.Contains(seasons, season) {
		return invalid("unknown season %q", season)
	}
	year := args.Year
	if year == 0 {
		year = now.Year()
	}

	var raws []json.RawMessage
	err = d.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		raws, err = d.anilist.SeasonTop(ctx, season, year, sort, limit, formats)
		return err
	})
	if err != nil {
		return envelope.Fail(err)
	}

	hits, err := normalize.Hits(kind, raws, media.TagAnilist)
	if err != nil {
		return envelope.Fail(err)
	}

	return envelope.NewSeasonTop(kind, &season, &year, sort, formats, hits)
}

// seasonOf maps a month to its anime season.
func seasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "WINTER"
	case time.March, time.April, time.May:
		return "SPRING"
	case time.June, time.July, time.August:
		return "SUMMER"
	default:
		return "FALL"
	}
}
