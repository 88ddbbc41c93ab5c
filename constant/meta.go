// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Anihelper is the canonical application identifier used for filesystem paths and CLI branding.
	Anihelper = "anihelper"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// SchemaVersion is the semantic version of the outward response contract.
	// It is independent of the application Version and only changes when the
	// envelope shapes change.
	SchemaVersion = "1.0.0"

	// UserAgent is the default HTTP User-Agent string used for network requests to upstream providers.
	UserAgent = Anihelper + "/" + Version
)

// Upstream provider endpoints. Both APIs are public and unauthenticated.
const (
	AnilistEndpoint = "https://graphql.anilist.co"
	JikanEndpoint   = "https://api.jikan.moe/v4"
)

// Hard limits enforced by the tool dispatcher regardless of configuration.
const (
	// MaxPerPage is the ceiling for the per-request result limit.
	MaxPerPage = 25

	// MaxCalendarDays is the ceiling for the airing calendar window.
	MaxCalendarDays = 30

	// MaxCalendarPerPage is the ceiling for airing calendar page size.
	MaxCalendarPerPage = 50

	// MaxRecommendations caps the recommendation list embedded in media details.
	MaxRecommendations = 10
)
