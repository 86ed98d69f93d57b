package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_builds_total",
		Help: "Total number of report builds by report type",
	}, []string{"report"})

	ReportBuildFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_build_failures_total",
		Help: "Total number of failed report builds",
	}, []string{"report", "reason"})

	ReportBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_build_duration_seconds",
		Help:    "Latency of report builds including snapshot reads",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	SnapshotReadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "snapshot_read_duration_seconds",
		Help:    "Latency of full-collection snapshot reads",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	AuthWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_waits_total",
		Help: "Total number of auth-readiness waits that had to subscribe",
	})

	AuthWaitTimeoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_wait_timeouts_total",
		Help: "Total number of auth-readiness waits that timed out",
	})

	OrdersIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_ingested_total",
		Help: "Total number of storefront orders ingested",
	})

	OrdersIngestFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_ingest_failed_total",
		Help: "Total number of failed order ingestions",
	}, []string{"reason"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
