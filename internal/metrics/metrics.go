package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Backend Metrics
var (
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBackendRequestsTotal,
			Help: HelpTextBackendRequestsTotal,
		},
		[]string{LabelEndpoint, LabelOutcome},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBackendRequestDuration,
			Help:    HelpTextBackendRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)

	CellCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCellCacheLookups,
			Help: HelpTextCellCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Business Metrics
var (
	MissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionsCompleted,
			Help: HelpTextMissionsCompleted,
		},
		[]string{LabelMission},
	)

	SeedsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsPlanted,
			Help: HelpTextSeedsPlanted,
		},
		[]string{LabelKind},
	)

	FruitsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFruitsHarvested,
			Help: HelpTextFruitsHarvested,
		},
	)

	ReactionsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReactionsAdded,
			Help: HelpTextReactionsAdded,
		},
		[]string{LabelEmoji},
	)

	DuplicateActionsSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateActions,
			Help: HelpTextDuplicateActions,
		},
		[]string{LabelAction},
	)
)
