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
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Farm Metrics
var (
	FarmPlants = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFarmPlants,
			Help: HelpTextFarmPlants,
		},
	)

	FarmWorkAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmWorkAttempts,
			Help: HelpTextFarmWorkAttempts,
		},
		[]string{LabelResult},
	)

	FarmHarvests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFarmHarvests,
			Help: HelpTextFarmHarvests,
		},
	)

	FarmRewardIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFarmRewardIssued,
			Help: HelpTextFarmRewardIssued,
		},
	)

	FarmBestZeros = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameFarmBestZeros,
			Help: HelpTextFarmBestZeros,
		},
	)
)

// Miner Metrics
var (
	MinerCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMinerCycles,
			Help: HelpTextMinerCycles,
		},
		[]string{LabelResult},
	)

	MinerSolveAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMinerSolveAttempts,
			Help: HelpTextMinerSolveAttempts,
		},
	)
)
