package tool

import (
	"context"
	"strings"

	"github.com/anihelper/anihelper/anilist"
	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/envelope"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/normalize"
	"github.com/anihelper/anihelper/util"
	"github.com/samber/lo"
)

// AiringStatusArgs is the input shape of airing_status. Exactly one of
// AnilistID and Query is required; the identifier wins when both are given.
type AiringStatusArgs struct {
	// AnilistID is the Anilist identifier of the anime.
	AnilistID int `json:"anilistId,omitempty" jsonschema:"minimum=1"`
	// Query resolves the anime by title when no identifier is given.
	Query string `json:"query,omitempty"`
}

// AiringStatus reports the last aired and next airing episode of an anime.
func (d *Dispatcher) AiringStatus(ctx context.Context, args AiringStatusArgs) any {
	if args.AnilistID <= 0 && strings.TrimSpace(args.Query) == "" {
		return invalid("provide anilistId or query")
	}

	ctx, cancel := d.callContext(ctx)
	defer cancel()

	id := args.AnilistID
	if id <= 0 {
		err := d.policy.Do(ctx, func(ctx context.Context) error {
			var err error
			id, err = d.anilist.ResolveFirstID(ctx, args.Query)
			return err
		})
		if err != nil {
			return envelope.Fail(err)
		}
	}

	var status *anilist.AiringMedia
	err := d.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		status, err = d.anilist.AiringStatus(ctx, id)
		return err
	})
	if err != nil {
		return envelope.Fail(err)
	}

	titles := media.Title{
		Romaji:  status.Title.Romaji,
		English: status.Title.English,
		Native:  status.Title.Native,
	}

	var last *media.AiringEpisode
	if len(status.AiringSchedule.Nodes) > 0 {
		node := status.AiringSchedule.Nodes[0]
		last = &media.AiringEpisode{Episode: node.Episode, AiringAt: node.AiringAt}
	}
	var next *media.AiringEpisode
	if status.NextAiringEpisode != nil {
		next = &media.AiringEpisode{Episode: status.NextAiringEpisode.Episode, AiringAt: status.NextAiringEpisode.AiringAt}
	}

	return envelope.NewAiringStatus(status.ID, titles, status.SiteURL, last, next)
}

// AiringCalendarArgs is the input shape of airing_calendar.
type AiringCalendarArgs struct {
	// Days is the size of the lookahead window. Defaults to 7, capped at 30.
	Days int `json:"days,omitempty" jsonschema:"default=7,minimum=1,maximum=30"`
	// PerPage caps the number of schedule entries. Defaults to 50.
	PerPage int `json:"perPage,omitempty" jsonschema:"default=50,minimum=1,maximum=50"`
}

// AiringCalendar lists episodes airing within the next few days, ordered by time.
func (d *Dispatcher) AiringCalendar(ctx context.Context, args AiringCalendarArgs) any {
	days := util.Clamp(orDefault(args.Days, 7), 1, constant.MaxCalendarDays)
	perPage := util.Clamp(orDefault(args.PerPage, constant.MaxCalendarPerPage), 1, constant.MaxCalendarPerPage)

	ctx, cancel := d.callContext(ctx)
	defer cancel()

	from := d.now().UTC().Unix()
	to := from + int64(days)*86400

	var entries []anilist.AiringEntry
	err := d.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		entries, err = d.anilist.AiringCalendar(ctx, from, to, perPage)
		return err
	})
	if err != nil {
		return envelope.Fail(err)
	}

	items := lo.Map(entries, func(entry anilist.AiringEntry, _ int) media.AiringItem {
		return media.AiringItem{
			When:    entry.AiringAt,
			Episode: entry.Episode,
			Media:   normalize.FromAnilist(media.Anime, &entry.Media),
		}
	})

	return envelope.NewAiringCalendar(days, items)
}
