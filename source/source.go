// Package source defines the capability interface implemented by every upstream adapter.
package source

import (
	"context"
	"encoding/json"

	"github.com/anihelper/anihelper/media"
)

// Operation identifies one of the logical lookups an adapter may support.
type Operation string

const (
	OpSearch    Operation = "search"
	OpFetchByID Operation = "fetch_by_id"
	OpTrending  Operation = "trending"
)

// Source is the closed set of operations an upstream adapter exposes.
//
// Each call issues exactly one outbound network request and returns either the
// provider's payload items, decoded but otherwise uninterpreted, or a
// classified *fault.Fault. Adapters never retry internally and never apply
// business-level interpretation; both are concerns of the wrapping layers.
// Implementations are stateless and safe for concurrent use.
type Source interface {
	// Tag returns the unique identifier of the provider.
	Tag() media.SourceTag

	// Supports reports whether the provider implements the given operation
	// for the given kind.
	Supports(op Operation, kind media.Kind) bool

	// Search discovers matching media items for a free-text query.
	Search(ctx context.Context, kind media.Kind, text string, limit int) ([]json.RawMessage, error)

	// FetchByID retrieves a single media item by its provider-native identifier.
	FetchByID(ctx context.Context, kind media.Kind, id int) (json.RawMessage, error)

	// Trending retrieves the currently trending media items, optionally
	// restricted to the given release formats.
	Trending(ctx context.Context, kind media.Kind, limit int, formats []string) ([]json.RawMessage, error)
}
