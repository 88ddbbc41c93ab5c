// Package anilist provides a client for the Anilist GraphQL API.
package anilist

// Media mirrors the Anilist GraphQL media selection set. It is the raw,
// provider-shaped record handed to the normalizer; nullable GraphQL fields
// stay pointers so absence survives decoding.
type Media struct {
	// ID is the unique identifier of the media on Anilist.
	ID int `json:"id"`
	// IDMal is the MyAnimeList cross-reference identifier.
	IDMal *int `json:"idMal"`
	// Title is the structured title metadata of the media.
	Title struct {
		// Romaji is the romanized title.
		Romaji *string `json:"romaji"`
		// English is the english title.
		English *string `json:"english"`
		// Native is the native title. (Usually in kanji)
		Native *string `json:"native"`
	} `json:"title"`
	// SiteURL is the url of the media on Anilist.
	SiteURL *string `json:"siteUrl"`
	// Format is the release format. (TV, MOVIE, OVA, ONA, MANGA, ONE_SHOT...)
	Format *string `json:"format"`
	// Status is the release status. (FINISHED, RELEASING, NOT_YET_RELEASED, CANCELLED, HIATUS)
	Status *string `json:"status"`
	// Episodes is the total episode count, when known.
	Episodes *int `json:"episodes"`
	// Chapters is the total chapter count, when known.
	Chapters *int `json:"chapters"`
	// AverageScore is the community score on a 0-100 integer scale.
	AverageScore *int `json:"averageScore"`
	// SeasonYear is the year of the release season.
	SeasonYear *int `json:"seasonYear"`
	// StartDate carries the publication start date; only the year is selected.
	StartDate struct {
		Year *int `json:"year"`
	} `json:"startDate"`
	// Description is the plot summary in HTML format.
	Description *string `json:"description"`
	// Genres is the Anilist genre vocabulary for this media.
	Genres []string `json:"genres"`
	// Tags are metadata tags associated with the media.
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
	// ExternalLinks are related pages outside Anilist.
	ExternalLinks []struct {
		Site *string `json:"site"`
		Type *string `json:"type"`
		URL  *string `json:"url"`
	} `json:"externalLinks"`
	// Recommendations embeds related media; no further network call is needed
	// to populate them.
	Recommendations struct {
		Nodes []struct {
			MediaRecommendation *Media `json:"mediaRecommendation"`
		} `json:"nodes"`
	} `json:"recommendations"`
}

// TagNames returns the ordered tag names.
func (m *Media) TagNames() []string {
	names := make([]string, 0, len(m.Tags))
	for _, t := range m.Tags {
		names = append(names, t.Name)
	}
	return names
}

// AiringNode is a single airing schedule entry.
type AiringNode struct {
	Episode  int   `json:"episode"`
	AiringAt int64 `json:"airingAt"`
}

// AiringMedia is the provider-shaped selection set used by airing status lookups.
type AiringMedia struct {
	ID      int     `json:"id"`
	SiteURL *string `json:"siteUrl"`
	Title   struct {
		Romaji  *string `json:"romaji"`
		English *string `json:"english"`
		Native  *string `json:"native"`
	} `json:"title"`
	NextAiringEpisode *AiringNode `json:"nextAiringEpisode"`
	AiringSchedule    struct {
		Nodes []AiringNode `json:"nodes"`
	} `json:"airingSchedule"`
}

// AiringEntry pairs a scheduled episode with its provider-shaped media record.
type AiringEntry struct {
	Episode  int   `json:"episode"`
	AiringAt int64 `json:"airingAt"`
	Media    Media `json:"media"`
}
