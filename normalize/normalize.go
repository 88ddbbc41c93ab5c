// Package normalize maps provider-shaped payloads onto the canonical schema.
//
// All provider shape knowledge outside the adapters lives here. Normalization
// never fails silently: absent or malformed fields become nil/empty, and only
// an unparseable top-level item raises a NORMALIZE_ERROR classified failure.
package normalize

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/anihelper/anihelper/anilist"
	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/jikan"
	"github.com/anihelper/anihelper/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Hit maps one raw search-result item onto the canonical lightweight record.
func Hit(kind media.Kind, raw json.RawMessage, tag media.SourceTag) (media.Hit, error) {
	switch tag {
	case media.TagAnilist:
		var m anilist.Media
		if err := json.Unmarshal(raw, &m); err != nil {
			return media.Hit{}, fault.New(tag, fault.NormalizeError, "unparseable anilist item: %s", err.Error())
		}
		return anilistHit(kind, &m), nil

	case media.TagJikan:
		var m jikan.Media
		if err := json.Unmarshal(raw, &m); err != nil {
			return media.Hit{}, fault.New(tag, fault.NormalizeError, "unparseable jikan item: %s", err.Error())
		}
		return jikanHit(kind, &m), nil
	}

	return media.Hit{}, fault.New(media.TagLocal, fault.NormalizeError, "no normalizer for source %q", tag)
}

// Hits maps a raw item list, preserving order.
func Hits(kind media.Kind, raws []json.RawMessage, tag media.SourceTag) ([]media.Hit, error) {
	hits := make([]media.Hit, 0, len(raws))
	for _, raw := range raws {
		hit, err := Hit(kind, raw, tag)
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Details maps one raw detail item onto the canonical full record.
func Details(kind media.Kind, raw json.RawMessage, tag media.SourceTag) (media.Details, error) {
	switch tag {
	case media.TagAnilist:
		var m anilist.Media
		if err := json.Unmarshal(raw, &m); err != nil {
			return media.Details{}, fault.New(tag, fault.NormalizeError, "unparseable anilist item: %s", err.Error())
		}
		return anilistDetails(kind, &m), nil

	case media.TagJikan:
		var m jikan.Media
		if err := json.Unmarshal(raw, &m); err != nil {
			return media.Details{}, fault.New(tag, fault.NormalizeError, "unparseable jikan item: %s", err.Error())
		}
		return jikanDetails(kind, &m), nil
	}

	return media.Details{}, fault.New(media.TagLocal, fault.NormalizeError, "no normalizer for source %q", tag)
}

// FromAnilist converts an already-decoded Anilist record into a canonical hit.
// Airing calendar entries arrive embedded in the schedule payload, so there is
// no raw message to route through Hit.
func FromAnilist(kind media.Kind, m *anilist.Media) media.Hit {
	return anilistHit(kind, m)
}

func anilistHit(kind media.Kind, m *anilist.Media) media.Hit {
	return media.Hit{
		Source: media.TagAnilist,
		ID:     m.ID,
		IDMal:  m.IDMal,
		Titles: media.Title{
			Romaji:  m.Title.Romaji,
			English: m.Title.English,
			Native:  m.Title.Native,
		},
		Year:     lo.CoalesceOrEmpty(m.SeasonYear, m.StartDate.Year),
		Format:   m.Format,
		Episodes: forKind(kind, media.Anime, m.Episodes),
		Chapters: forKind(kind, media.Manga, m.Chapters),
		Score:    m.AverageScore,
		URL:      m.SiteURL,
	}
}

func anilistDetails(kind media.Kind, m *anilist.Media) media.Details {
	recommendations := make([]media.Hit, 0, len(m.Recommendations.Nodes))
	for _, node := range m.Recommendations.Nodes {
		if node.MediaRecommendation == nil {
			continue
		}
		if len(recommendations) == constant.MaxRecommendations {
			break
		}
		recommendations = append(recommendations, anilistHit(kind, node.MediaRecommendation))
	}

	external := make([]media.ExternalLink, 0, len(m.ExternalLinks))
	for _, link := range m.ExternalLinks {
		external = append(external, media.ExternalLink{
			Site: lo.FromPtr(lo.CoalesceOrEmpty(link.Site, link.Type)),
			URL:  lo.FromPtr(link.URL),
		})
	}

	return media.Details{
		Hit:             anilistHit(kind, m),
		Status:          m.Status,
		Genres:          orEmpty(m.Genres),
		Tags:            orEmpty(m.TagNames()),
		Scores:          media.Score{Anilist: m.AverageScore},
		Synopsis:        StripMarkup(lo.FromPtr(m.Description)),
		External:        external,
		Recommendations: recommendations,
	}
}

func jikanHit(kind media.Kind, m *jikan.Media) media.Hit {
	return media.Hit{
		Source: media.TagJikan,
		ID:     m.MalID,
		// Jikan's native identifier is the MAL identifier.
		IDMal: lo.ToPtr(m.MalID),
		Titles: media.Title{
			Romaji:  m.Title,
			English: m.TitleEnglish,
			Native:  m.TitleJapanese,
		},
		Year:     m.Year,
		Format:   upper(m.Type),
		Episodes: forKind(kind, media.Anime, m.Episodes),
		Chapters: forKind(kind, media.Manga, m.Chapters),
		Score:    CanonicalScore(m.Score).ToPointer(),
		URL:      m.URL,
	}
}

func jikanDetails(kind media.Kind, m *jikan.Media) media.Details {
	var external []media.ExternalLink
	if m.URL != nil {
		external = append(external, media.ExternalLink{Site: "MyAnimeList", URL: *m.URL})
	}

	return media.Details{
		Hit:             jikanHit(kind, m),
		Status:          upper(m.Status),
		Genres:          orEmpty(m.GenreNames()),
		Tags:            orEmpty(m.TagNames()),
		Scores:          media.Score{Mal: CanonicalScore(m.Score).ToPointer()},
		Synopsis:        StripMarkup(lo.FromPtr(m.Synopsis)),
		External:        orEmpty(external),
		Recommendations: []media.Hit{},
	}
}

// CanonicalScore rescales MyAnimeList's 0-10 decimal score onto the canonical
// 0-100 integer scale. Anilist scores are already canonical and pass through
// untouched, making re-normalization idempotent.
func CanonicalScore(score *float64) mo.Option[int] {
	if score == nil {
		return mo.None[int]()
	}
	return mo.Some(int(math.Round(*score * 10)))
}

// forKind gates the episode/chapter counters on the relevant kind: the
// irrelevant counter is always nil regardless of what the provider returned.
func forKind(kind, want media.Kind, value *int) *int {
	if kind != want {
		return nil
	}
	return value
}

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	return lo.ToPtr(strings.ToUpper(*s))
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
