// Package fallback implements preferred-then-secondary source resolution.
package fallback

import (
	"context"
	"encoding/json"

	"github.com/anihelper/anihelper/fault"
	"github.com/anihelper/anihelper/log"
	"github.com/anihelper/anihelper/media"
	"github.com/anihelper/anihelper/retry"
	"github.com/anihelper/anihelper/source"
)

// Selector tries the preferred adapter under the retry policy and, when the
// preferred source exhausts its budget with a retryable-class failure or does
// not support the operation, repeats the same logical operation once against
// the secondary adapter. Fallback is single-hop and never speculative: the
// secondary is only contacted after the preferred source is done failing.
type Selector struct {
	sources map[media.SourceTag]source.Source
	policy  retry.Policy
}

// NewSelector builds a Selector over the given adapters.
func NewSelector(policy retry.Policy, sources ...source.Source) *Selector {
	s := &Selector{
		sources: make(map[media.SourceTag]source.Source, len(sources)),
		policy:  policy,
	}
	for _, src := range sources {
		s.sources[src.Tag()] = src
	}
	return s
}

// Search resolves a search against the preferred source with fallback.
func (s *Selector) Search(ctx context.Context, kind media.Kind, text string, limit int, preferred media.SourceTag) ([]json.RawMessage, media.SourceTag, error) {
	return resolve(s, ctx, source.OpSearch, kind, preferred,
		func(ctx context.Context, src source.Source) ([]json.RawMessage, error) {
			return src.Search(ctx, kind, text, limit)
		})
}

// FetchByID resolves a detail lookup against the preferred source with fallback.
func (s *Selector) FetchByID(ctx context.Context, kind media.Kind, id int, preferred media.SourceTag) (json.RawMessage, media.SourceTag, error) {
	return resolve(s, ctx, source.OpFetchByID, kind, preferred,
		func(ctx context.Context, src source.Source) (json.RawMessage, error) {
			return src.FetchByID(ctx, kind, id)
		})
}

// Trending resolves a trending lookup. Only Anilist implements trending, so a
// failure there has no fallback path and surfaces directly.
func (s *Selector) Trending(ctx context.Context, kind media.Kind, limit int, formats []string, preferred media.SourceTag) ([]json.RawMessage, media.SourceTag, error) {
	return resolve(s, ctx, source.OpTrending, kind, preferred,
		func(ctx context.Context, src source.Source) ([]json.RawMessage, error) {
			return src.Trending(ctx, kind, limit, formats)
		})
}

// resolve implements the selection policy shared by all operations.
func resolve[T any](s *Selector, ctx context.Context, op source.Operation, kind media.Kind, preferred media.SourceTag, call func(context.Context, source.Source) (T, error)) (T, media.SourceTag, error) {
	var zero T

	primary, ok := s.sources[preferred]
	if !ok {
		return zero, preferred, fault.New(media.TagLocal, fault.InvalidArg, "unknown source %q", preferred)
	}

	attempt := func(src source.Source) (T, error) {
		var out T
		err := s.policy.Do(ctx, func(ctx context.Context) error {
			var err error
			out, err = call(ctx, src)
			return err
		})
		return out, err
	}

	if primary.Supports(op, kind) {
		out, err := attempt(primary)
		if err == nil {
			return out, primary.Tag(), nil
		}

		// Terminal failures surface as-is: fallback only covers exhausted
		// retryable failures and unsupported operations.
		if !fault.As(err).Retryable() {
			return zero, primary.Tag(), err
		}

		secondary, ok := s.secondaryFor(preferred, op, kind)
		if !ok {
			return zero, primary.Tag(), err
		}

		log.Warnf("%s %s failed on %s, falling back to %s: %s", op, kind, primary.Tag(), secondary.Tag(), err)
		out, err = attempt(secondary)
		if err != nil {
			// Most recent attempt wins: the secondary's failure is the one surfaced.
			return zero, secondary.Tag(), err
		}
		return out, secondary.Tag(), nil
	}

	secondary, ok := s.secondaryFor(preferred, op, kind)
	if !ok {
		return zero, preferred, fault.New(media.TagLocal, fault.InvalidArg, "no source supports %s for %s", op, kind)
	}

	out, err := attempt(secondary)
	if err != nil {
		return zero, secondary.Tag(), err
	}
	return out, secondary.Tag(), nil
}

// secondaryFor returns the one other adapter that supports the operation.
func (s *Selector) secondaryFor(preferred media.SourceTag, op source.Operation, kind media.Kind) (source.Source, bool) {
	for tag, src := range s.sources {
		if tag == preferred {
			continue
		}
		if src.Supports(op, kind) {
			return src, true
		}
	}
	return nil, false
}
