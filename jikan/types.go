// Package jikan provides a client for the Jikan REST API, an unauthenticated MyAnimeList mirror.
package jikan

// named is the shape Jikan uses for every category entity (genres, themes, demographics).
type named struct {
	Name string `json:"name"`
}

// Media mirrors a Jikan v4 media record. It is the raw, provider-shaped record
// handed to the normalizer; nullable REST fields stay pointers so absence
// survives decoding.
type Media struct {
	// MalID is the MyAnimeList identifier, which doubles as Jikan's native identifier.
	MalID int `json:"mal_id"`
	// URL is the MyAnimeList page of the media.
	URL *string `json:"url"`
	// Title is the default (romanized) title.
	Title *string `json:"title"`
	// TitleEnglish is the english title.
	TitleEnglish *string `json:"title_english"`
	// TitleJapanese is the native title.
	TitleJapanese *string `json:"title_japanese"`
	// Type is the release format. (TV, Movie, OVA, Manga, ...)
	Type *string `json:"type"`
	// Status is the release status. (Finished Airing, Currently Airing, Publishing, ...)
	Status *string `json:"status"`
	// Episodes is the total episode count, when known.
	Episodes *int `json:"episodes"`
	// Chapters is the total chapter count, when known.
	Chapters *int `json:"chapters"`
	// Score is the community score on a 0-10 decimal scale.
	Score *float64 `json:"score"`
	// Year is the release year, when known.
	Year *int `json:"year"`
	// Synopsis is the plot summary in plain text with occasional markup artifacts.
	Synopsis *string `json:"synopsis"`
	// Genres is the MyAnimeList genre vocabulary for this media.
	Genres []named `json:"genres"`
	// Themes are thematic categories beyond genres.
	Themes []named `json:"themes"`
	// Demographics are the target audience categories.
	Demographics []named `json:"demographics"`
}

// GenreNames returns the ordered genre names.
func (m *Media) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// TagNames returns the ordered theme and demographic names, Jikan's closest
// counterpart to a tag vocabulary.
func (m *Media) TagNames() []string {
	names := make([]string, 0, len(m.Themes)+len(m.Demographics))
	for _, t := range m.Themes {
		names = append(names, t.Name)
	}
	for _, d := range m.Demographics {
		names = append(names, d.Name)
	}
	return names
}
