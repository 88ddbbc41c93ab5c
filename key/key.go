// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider Source Selection - these keys manage which upstream is queried first.
const (
	SourcesPreferred = "sources.preferred"
)

// Search Limits - these keys bound the size of result pages.
const (
	SearchMaxPerPage = "search.max_per_page"
)

// HTTP & Retry Discipline - these keys govern upstream call timeouts and the retry policy.
const (
	HTTPTimeoutSec       = "http.timeout_sec"
	HTTPRetryAttempts    = "http.retry_attempts"
	HTTPRetryBaseDelayMs = "http.retry_base_delay_ms"
)

// Jikan Rate Limiting - Jikan's public tier enforces a small requests-per-second budget.
const (
	JikanRatePerSec = "jikan.rate_per_sec"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the command-line host behavior.
const (
	CliColored = "cli.colored"
)
