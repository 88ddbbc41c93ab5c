package tool

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/anihelper/anihelper/envelope"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/normalize"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// resolveCandidates is the fixed page size used when resolving a title.
const resolveCandidates = 10

// ResolveArgs is the input shape of resolve_title.
type ResolveArgs struct {
	// Title is the free-text title to resolve to canonical identifiers.
	Title string `json:"title" jsonschema:"description=Free-text title to resolve to canonical Anilist/MAL identifiers."`
	// Kind selects between anime and manga. Defaults to ANIME.
	Kind string `json:"kind,omitempty" jsonschema:"enum=ANIME,enum=MANGA,default=ANIME"`
	// PreferFormat optionally biases the best pick towards a release format, e.g. MOVIE.
	PreferFormat string `json:"preferFormat,omitempty"`
}

// ResolveTitle resolves free text to the best matching canonical identifiers
// plus the candidate list it was chosen from. Anilist only: its identifiers
// carry the MAL cross-reference, so one call resolves both namespaces.
func (d *Dispatcher) ResolveTitle(ctx context.Context, args ResolveArgs) any {
	if strings.TrimSpace(args.Title) == "" {
		return invalid("title must not be empty")
	}
	kind, err := kindOrDefault(args.Kind)
	if err != nil {
		return envelope.Fail(err)
	}

	ctx, cancel := d.callContext(ctx)
	defer cancel()

	var items []json.RawMessage
	err = d.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = d.anilist.Search(ctx, kind, args.Title, resolveCandidates)
		return err
	})
	if err != nil {
		return envelope.Fail(err)
	}

	hits, err := normalize.Hits(kind, items, media.TagAnilist)
	if err != nil {
		return envelope.Fail(err)
	}

	return envelope.NewResolve(args.Title, kind, bestCandidate(hits, args.Title, args.PreferFormat), hits)
}

// bestCandidate picks the best hit for a query. An explicit format preference
// wins; otherwise candidates are ranked by edit distance against their closest
// title variant, with fuzzy subsequence matches preferred over non-matches.
func bestCandidate(hits []media.Hit, query, preferFormat string) *media.Hit {
	if len(hits) == 0 {
		return nil
	}

	if pf := strings.ToUpper(strings.TrimSpace(preferFormat)); pf != "" {
		for i := range hits {
			if hits[i].Format != nil && *hits[i].Format == pf {
				return &hits[i]
			}
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	best, bestScore := 0, math.MaxInt

	for i := range hits {
		if score := titleScore(normalized, hits[i].Titles); score < bestScore {
			best, bestScore = i, score
		}
	}

	return &hits[best]
}

// titleScore is the edit distance between the query and the closest title
// variant. Variants that do not even fuzzy-match carry a fixed penalty so a
// subsequence match always outranks a non-match of similar length.
func titleScore(query string, titles media.Title) int {
	const missPenalty = 1000

	score := math.MaxInt
	for _, variant := range []*string{titles.Romaji, titles.English, titles.Native} {
		if variant == nil {
			continue
		}

		candidate := strings.ToLower(*variant)
		distance := levenshtein.Distance(query, candidate)
		if !fuzzy.MatchNormalizedFold(query, candidate) {
			distance += missPenalty
		}
		if distance < score {
			score = distance
		}
	}
	return score
}
