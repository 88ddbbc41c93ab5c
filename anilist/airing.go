// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/log"
	"github.com/anihelper/anihelper/media"
)

// ResolveFirstID resolves free text to the single best matching anime identifier.
func (c *Client) ResolveFirstID(ctx context.Context, text string) (int, error) {
	data, err := c.gql(ctx, firstIDQuery, map[string]any{"query": text})
	if err != nil {
		return 0, fmt.Errorf("anilist resolve: %w", err)
	}

	var page struct {
		Page struct {
			Media []struct {
				ID int `json:"id"`
			} `json:"media"`
		} `json:"Page"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return 0, fault.New(media.TagAnilist, fault.NormalizeError, "decode page: %s", err.Error())
	}

	if len(page.Page.Media) == 0 {
		return 0, fault.New(media.TagAnilist, fault.NotFound, "no anime matching %q on anilist", text)
	}

	return page.Page.Media[0].ID, nil
}

// AiringStatus retrieves the last aired and next airing episode of an anime.
func (c *Client) AiringStatus(ctx context.Context, id int) (*AiringMedia, error) {
	log.Infof("Fetching anilist airing status for id %d", id)

	data, err := c.gql(ctx, airingStatusQuery, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("anilist airing status: %w", err)
	}

	var response struct {
		Media *AiringMedia `json:"Media"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fault.New(media.TagAnilist, fault.NormalizeError, "decode media: %s", err.Error())
	}

	if response.Media == nil {
		return nil, fault.New(media.TagAnilist, fault.NotFound, "no anime with id %d on anilist", id)
	}

	return response.Media, nil
}

// AiringCalendar retrieves episodes airing between the from and to unix timestamps.
func (c *Client) AiringCalendar(ctx context.Context, from, to int64, perPage int) ([]AiringEntry, error) {
	log.Infof("Fetching anilist airing calendar between %d and %d", from, to)

	data, err := c.gql(ctx, airingCalendarQuery, map[string]any{
		"from":    from,
		"to":      to,
		"perPage": perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("anilist airing calendar: %w", err)
	}

	var response struct {
		Page struct {
			AiringSchedules []AiringEntry `json:"airingSchedules"`
		} `json:"Page"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fault.New(media.TagAnilist, fault.NormalizeError, "decode schedules: %s", err.Error())
	}

	return response.Page.AiringSchedules, nil
}
