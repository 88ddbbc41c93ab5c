package tool

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/envelope"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/util"
	"github.com/samber/lo"
)

// Intent patterns understood by Ask, Spanish and English alike. Matching is
// ordered: the first pattern that fires wins, and plain search is the final
// fallback.
// RE2's \b is ASCII-only, so boundaries never sit next to accented characters
// (qué, último); those words are matched without trailing \b instead.
var (
	askProgressPattern = regexp.MustCompile(`(?i)en\s+qu[eé].*(cap[ií]tulo|episodio)|(cap[ií]tulo|episodio).*(\b(va|actual)\b|[uú]ltimo)|what\s+episode`)
	askCountPattern    = regexp.MustCompile(`(?i)cu[aá]nt[oa]s?.*(episodios|cap[ií]tulos|capitulos)|how\s+many\s+(episodes|chapters)`)
	askWhatIsPattern   = regexp.MustCompile(`(?i)qu[eé]\s+es|de\s+qu[eé]\s+trata|what\s+is`)
	askSeasonPattern   = regexp.MustCompile(`(?i)temporada.*(actual|esta)|(esta|actual).*temporada|(this|current)\s+season`)
	askTrendingPattern = regexp.MustCompile(`(?i)tendencias?|trending|populares|llamativos`)
	askDetailsPattern  = regexp.MustCompile(`(?i)detalles?|ficha|info(rmaci[oó]n)?\s+de|about`)
	askMoviesPattern   = regexp.MustCompile(`(?i)pel[ií]culas?|movies?|films?`)

	// Noise stripped from the text to recover the bare title per intent.
	askProgressNoise = regexp.MustCompile(`(?i)\ben\s+qu[eé]|cap[ií]tulo|\b(episodio|episode)s?\b|\b(va|actual)\b|[uú]ltimo|\bwhat\b|\bis\b|\bon\b|\b(de|del|la|el)\b`)
	askCountNoise    = regexp.MustCompile(`(?i)cu[aá]nt[oa]s?\s+(episodios|cap[ií]tulos|capitulos)\s+(tiene|de)\s+|(tiene|hay)\s+cu[aá]nt[oa]s?\s+(episodios|cap[ií]tulos|capitulos)\s+de\s+|how\s+many\s+(episodes|chapters)\s+(does|has|in|of)\s*|\bhave\b`)
	askWhatIsNoise   = regexp.MustCompile(`(?i)qu[eé]\s+es|de\s+qu[eé]\s+trata|what\s+is|\b(de|del|la|el)\b`)
	askDetailsNoise  = regexp.MustCompile(`(?i)detalles?|ficha|info(rmaci[oó]n)?\s+de|about|\b(de|del|la|el)\b`)

	askNumberPattern = regexp.MustCompile(`\b(\d{1,2})\b`)
	askSpaceRun      = regexp.MustCompile(`\s+`)
)

// AskArgs is the input shape of ask.
type AskArgs struct {
	// Text is the natural-language request, Spanish or English.
	Text string `json:"text" jsonschema:"description=Natural-language request (Spanish or English)."`
	// DefaultKind is used when the text names neither anime nor manga.
	DefaultKind string `json:"defaultKind,omitempty" jsonschema:"enum=ANIME,enum=MANGA,default=ANIME"`
	// DefaultLimit is used when the text carries no number.
	DefaultLimit int `json:"defaultLimit,omitempty" jsonschema:"default=5"`
}

// Ask routes a natural-language request to the matching tool and wraps that
// tool's envelope together with the detected intent and derived arguments.
func (d *Dispatcher) Ask(ctx context.Context, args AskArgs) any {
	text := strings.TrimSpace(args.Text)
	if text == "" {
		return invalid("text must not be empty")
	}

	low := strings.ToLower(text)
	kind := askKind(low, args.DefaultKind)
	limit := askLimit(low, orDefault(args.DefaultLimit, 5))

	var formats []string
	if askMoviesPattern.MatchString(low) {
		formats = []string{"MOVIE"}
	}

	switch {
	case askProgressPattern.MatchString(low):
		title := askTitle(text, askProgressNoise)
		return envelope.NewAsk("airing_status",
			map[string]any{"query": title},
			d.AiringStatus(ctx, AiringStatusArgs{Query: title}))

	case askCountPattern.MatchString(low):
		return d.askCount(ctx, text, kind)

	case askWhatIsPattern.MatchString(low):
		title := askTitle(text, askWhatIsNoise)
		return envelope.NewAsk("what_is",
			map[string]any{"query": title, "kind": kind},
			d.searchThenDetails(ctx, title, kind))

	case askSeasonPattern.MatchString(low):
		return envelope.NewAsk("season_top",
			map[string]any{"kind": "ANIME", "limit": limit, "formatIn": formats},
			d.SeasonTop(ctx, SeasonTopArgs{Kind: "ANIME", Limit: limit, FormatIn: formats}))

	case askTrendingPattern.MatchString(low):
		return envelope.NewAsk("trending",
			map[string]any{"kind": kind, "limit": limit, "formatIn": formats},
			d.Trending(ctx, TrendingArgs{Kind: kind, Limit: limit, FormatIn: formats}))

	case askDetailsPattern.MatchString(low):
		title := askTitle(text, askDetailsNoise)
		return envelope.NewAsk("search_then_details",
			map[string]any{"query": title, "kind": kind},
			d.searchThenDetails(ctx, title, kind))
	}

	return envelope.NewAsk("search",
		map[string]any{"query": text, "kind": kind, "limit": limit},
		d.SearchMedia(ctx, SearchArgs{Query: text, Kind: kind, Limit: limit}))
}

// askCount answers "how many episodes/chapters does X have" by resolving the
// canonical title first and fetching its details. When resolution finds
// nothing the raw search result is returned instead of an error.
func (d *Dispatcher) askCount(ctx context.Context, text, kind string) any {
	title := askTitle(text, askCountNoise)
	intentArgs := map[string]any{"query": title, "kind": kind}

	prefer := "TV"
	if kind == "MANGA" {
		prefer = "MANGA"
	}

	resolved, ok := d.ResolveTitle(ctx, ResolveArgs{Title: title, Kind: kind, PreferFormat: prefer}).(envelope.Resolve)
	if !ok || resolved.Best == nil {
		return envelope.NewAsk("count", intentArgs,
			d.SearchMedia(ctx, SearchArgs{Query: title, Kind: kind, Limit: 3}))
	}

	return envelope.NewAsk("count", intentArgs, d.MediaDetails(ctx, DetailsArgs{
		Source: string(resolved.Best.Source),
		ID:     resolved.Best.ID,
		Kind:   kind,
	}))
}

// searchThenDetails searches for a title and fetches the details of the best
// hit, preferring an Anilist record for its richer selection set. An empty
// search result is returned as-is.
func (d *Dispatcher) searchThenDetails(ctx context.Context, title, kind string) any {
	out := d.SearchMedia(ctx, SearchArgs{Query: title, Kind: kind, Limit: 3})
	search, ok := out.(envelope.Search)
	if !ok || len(search.Results) == 0 {
		return out
	}

	best := &search.Results[0]
	for i := range search.Results {
		if search.Results[i].Source == media.TagAnilist {
			best = &search.Results[i]
			break
		}
	}

	id := best.ID
	if best.Source == media.TagJikan {
		id = lo.FromPtrOr(best.IDMal, best.ID)
	}

	return d.MediaDetails(ctx, DetailsArgs{Source: string(best.Source), ID: id, Kind: kind})
}

// askKind reads the media kind off the text, falling back to the caller's default.
func askKind(low, fallback string) string {
	switch {
	case strings.Contains(low, "manga"):
		return "MANGA"
	case strings.Contains(low, "anime"):
		return "ANIME"
	case fallback != "":
		return strings.ToUpper(fallback)
	}
	return "ANIME"
}

// askLimit reads a small number off the text, clamped like every other limit.
func askLimit(low string, fallback int) int {
	if m := askNumberPattern.FindString(low); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return util.Clamp(n, 1, constant.MaxPerPage)
		}
	}
	return fallback
}

// askTitle recovers the bare title by dropping the intent's noise words and
// leftover punctuation.
func askTitle(text string, noise *regexp.Regexp) string {
	title := noise.ReplaceAllString(text, " ")
	title = askSpaceRun.ReplaceAllString(title, " ")
	title = strings.Trim(title, " ¿?¡!.,;:")
	if title == "" {
		return strings.Trim(text, " ¿?¡!.,;:")
	}
	return title
}
