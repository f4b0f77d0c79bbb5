package fifa

import "github.com/prometheus/client_golang/prometheus"

var (
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fifa_api_requests_total",
			Help: "The total number of upstream API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fifa_api_request_duration_seconds",
			Help: "The upstream API request latencies in seconds",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(upstreamRequests)
	prometheus.MustRegister(upstreamDuration)
}
