package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "grapeweb_http_requests_total"
	MetricNameHTTPRequestDuration  = "grapeweb_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "grapeweb_http_requests_in_flight"
	MetricNameHTTPRateLimited      = "grapeweb_http_rate_limited_total"
)

// Backend metric names
const (
	MetricNameBackendRequestsTotal   = "grapeweb_backend_requests_total"
	MetricNameBackendRequestDuration = "grapeweb_backend_request_duration_seconds"
	MetricNameCellCacheLookups       = "grapeweb_cell_cache_lookups_total"
)

// Business metric names
const (
	MetricNameMissionsCompleted = "grapeweb_missions_completed_total"
	MetricNameSeedsPlanted      = "grapeweb_seeds_planted_total"
	MetricNameFruitsHarvested   = "grapeweb_fruits_harvested_total"
	MetricNameReactionsAdded    = "grapeweb_reactions_added_total"
	MetricNameDuplicateActions  = "grapeweb_duplicate_actions_suppressed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of requests rejected by the per-client rate limit"
)

// Backend metric help text
const (
	HelpTextBackendRequestsTotal   = "Total number of backend API calls by endpoint and outcome"
	HelpTextBackendRequestDuration = "Backend API call latency in seconds"
	HelpTextCellCacheLookups       = "Cell list cache lookups by result"
)

// Business metric help text
const (
	HelpTextMissionsCompleted = "Total number of missions completed by mission name"
	HelpTextSeedsPlanted      = "Total number of seeds planted by kind"
	HelpTextFruitsHarvested   = "Total number of fruits harvested"
	HelpTextReactionsAdded    = "Total number of diary reactions added by emoji"
	HelpTextDuplicateActions  = "Total number of duplicate actions collapsed into an in-flight call"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
	LabelResult   = "result"
	LabelMission  = "mission"
	LabelKind     = "kind"
	LabelEmoji    = "emoji"
	LabelAction   = "action"
)

// ============================================================================
// Label Values
// ============================================================================

// Backend call outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
	OutcomeRejected  = "rejected"
)

// Cache lookup results
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Seed kinds
const (
	KindSpecial = "special"
	KindNormal  = "normal"
)

// UnmatchedRoute labels requests that did not match a route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
