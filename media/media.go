// Package media defines the canonical value objects shared by every upstream provider.
//
// No type in this package carries provider-specific fields; provider shape
// knowledge lives entirely inside the adapter packages and the normalizer.
package media

import "fmt"

// Kind discriminates between the two supported media categories.
type Kind string

const (
	Anime Kind = "ANIME"
	Manga Kind = "MANGA"
)

// ParseKind validates and canonicalizes a kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Anime, Manga:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown media kind %q", s)
}

// SourceTag identifies one of the two upstream providers, or the local layer itself.
type SourceTag string

const (
	TagAnilist SourceTag = "anilist"
	TagJikan   SourceTag = "jikan"

	// TagLocal marks failures produced before any upstream was contacted.
	TagLocal SourceTag = "local"
)

// ParseTag validates and canonicalizes a provider tag.
func ParseTag(s string) (SourceTag, error) {
	switch SourceTag(s) {
	case TagAnilist, TagJikan:
		return SourceTag(s), nil
	}
	return "", fmt.Errorf("unknown source %q", s)
}

// Tags lists the configured upstream providers in preference-independent order.
func Tags() []SourceTag {
	return []SourceTag{TagAnilist, TagJikan}
}

// Title holds the language variants of a media title. Absent variants stay nil;
// a variant is never fabricated from another.
type Title struct {
	Romaji  *string `json:"romaji" jsonschema:"description=Romanized title."`
	English *string `json:"english" jsonschema:"description=English title."`
	Native  *string `json:"native" jsonschema:"description=Native title. Usually in kanji."`
}

// Hit is the canonical lightweight search-result record.
//
// Invariant: for a given Kind exactly one of Episodes/Chapters is meaningful;
// the other is always nil regardless of what the provider returned.
type Hit struct {
	// Source is the tag of the provider that actually served this record.
	Source SourceTag `json:"source" jsonschema:"enum=anilist,enum=jikan"`
	// ID is the native identifier on the source actually used.
	ID int `json:"id" jsonschema:"description=Native identifier on the serving source."`
	// IDMal is the MyAnimeList cross-reference identifier, when the provider supplies one.
	IDMal *int `json:"idMal" jsonschema:"description=MyAnimeList cross-reference identifier."`
	// Titles holds the known language variants of the title.
	Titles Title `json:"titles"`
	// Year is the release year, when known.
	Year *int `json:"year"`
	// Format is the provider's release format, e.g. TV, MOVIE, OVA, MANGA, ONE_SHOT.
	Format *string `json:"format"`
	// Episodes is the episode count. Only meaningful for ANIME.
	Episodes *int `json:"episodes"`
	// Chapters is the chapter count. Only meaningful for MANGA.
	Chapters *int `json:"chapters"`
	// Score is the aggregate community score on a 0-100 integer scale.
	Score *int `json:"score" jsonschema:"description=Aggregate score on a 0-100 integer scale."`
	// URL points at the media page on the serving source.
	URL *string `json:"url"`
}

// Score keeps each provider's rating in its own slot. The two values are
// different measurements and are never merged or allowed to overwrite one
// another.
type Score struct {
	Anilist *int `json:"anilist"`
	Mal     *int `json:"mal"`
}

// ExternalLink is a reference to a related page outside the serving source.
type ExternalLink struct {
	Site string `json:"site"`
	URL  string `json:"url"`
}

// Details is the canonical full-detail record for a single media item.
type Details struct {
	Hit
	// Status is the release status, e.g. RELEASING, FINISHED, NOT_YET_RELEASED.
	Status *string `json:"status"`
	// Genres is the provider's genre vocabulary, order preserved, no cross-provider mapping.
	Genres []string `json:"genres"`
	// Tags is the provider's tag vocabulary, order preserved.
	Tags []string `json:"tags"`
	// Scores holds per-provider ratings on the 0-100 integer scale.
	Scores Score `json:"score"`
	// Synopsis is the plot summary with provider markup stripped to plain text.
	Synopsis string `json:"synopsis"`
	// External lists related pages outside the serving source.
	External []ExternalLink `json:"external"`
	// Recommendations lists related media, capped by the serving layer.
	Recommendations []Hit `json:"recommendations"`
}

// AiringEpisode is a single entry of the AniList airing schedule.
type AiringEpisode struct {
	Episode  int   `json:"episode"`
	AiringAt int64 `json:"airingAt" jsonschema:"description=Unix timestamp of the airing time."`
}

// AiringItem pairs an upcoming episode with the media it belongs to.
type AiringItem struct {
	When    int64 `json:"when" jsonschema:"description=Unix timestamp of the airing time."`
	Episode int   `json:"episode"`
	Media   Hit   `json:"media"`
}
