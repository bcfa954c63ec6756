package forum

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labelled by operation name rather than URL path to keep cardinality bounded
// (paths embed topic/post ids).
var clientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forum_client_requests_total",
		Help: "Total number of requests issued to the upstream forum API",
	},
	[]string{"op", "status"},
)

func observeRequest(op, status string) {
	clientRequestsTotal.WithLabelValues(op, status).Inc()
}
