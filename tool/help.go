package tool

import (
	"context"

	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/envelope"
)

// Help catalogs the tool surface with replayable examples. Static content
// like Health and About: no network call.
func (d *Dispatcher) Help(context.Context) any {
	return envelope.NewHelp(
		constant.Anihelper,
		constant.Version,
		"Anime & manga lookups over Anilist (no key) with Jikan fallback.",
		[]string{
			"ask: natural language -> season_top / trending / search / details / airing_status / count / what_is",
			"search_media: title search (ANIME/MANGA)",
			"media_details: normalized record + recommendations",
			"trending(formatIn): currently trending (MOVIE/TV/OVA/ONA/SPECIAL)",
			"season_top(formatIn): top of the current season (ANIME); supports MOVIE",
			"airing_status: last/next episode (ANIME)",
			"airing_calendar: episodes airing over the next days",
			"resolve_title: canonical Anilist/MAL identifiers",
		},
		[]envelope.Example{
			{Title: "Natural language", Prompt: "¿En qué capítulo va One Piece?"},
			{Title: "Current season", Prompt: "most popular anime this season"},
			{Title: "Season movies", Prompt: `season_top {"kind":"ANIME","formatIn":["MOVIE"],"limit":5}`},
			{Title: "Trending manga", Prompt: `trending {"kind":"MANGA","limit":5}`},
			{Title: "Seven-day calendar", Prompt: `airing_calendar {"days":7}`},
			{Title: "Resolve a title", Prompt: `resolve_title {"title":"Vinland Saga"}`},
			{Title: "Direct search", Prompt: `search_media {"query":"one piece","kind":"ANIME","limit":3}`},
		},
		[]string{
			"No API key required (Anilist/Jikan). Rate limits are respected.",
			"Every response carries schemaVersion, success and error alike.",
			"Identifiers: Anilist in media_details/airing_status; use source=jikan for MAL ids.",
		},
	)
}

// HelpText is the plain-text rendition of Help for minimalist hosts.
func (d *Dispatcher) HelpText(context.Context) any {
	return envelope.NewHelpText(constant.Anihelper + " - what I can do:\n" +
		"- ask(text): natural language (ES/EN). E.g. '¿En qué capítulo va One Piece?'\n" +
		"- season_top(kind='ANIME', limit=10, formatIn=['MOVIE']): top of the season (e.g. movies).\n" +
		"- trending(kind, limit, formatIn): currently trending.\n" +
		"- search_media(query, kind): search by title.\n" +
		"- media_details(source, id, kind): full record.\n" +
		"- airing_status(query|anilistId): last/next episode.\n" +
		"- airing_calendar(days): episodes airing soon.\n" +
		"- resolve_title(title): canonical Anilist/MAL identifiers.\n")
}
