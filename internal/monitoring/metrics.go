package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	writes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_writes_total",
			Help: "Create, update and delete operations by entity and outcome",
		},
		[]string{"entity", "operation", "outcome"},
	)

	showsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_shows_classified_total",
			Help: "Shows classified on detail pages, by bucket",
		},
		[]string{"bucket"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
)

func RecordWrite(entity, operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	writes.WithLabelValues(entity, operation, outcome).Inc()
}

func RecordClassified(past, upcoming int) {
	showsClassified.WithLabelValues("past").Add(float64(past))
	showsClassified.WithLabelValues("upcoming").Add(float64(upcoming))
}

func RecordRequest(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}
