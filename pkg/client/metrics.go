package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kuverta_client_requests_total",
		Help: "API requests dispatched, by operation and HTTP status.",
	}, []string{"operation", "status"})

	tokenRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kuverta_client_token_refresh_total",
		Help: "Token refresh attempts, by result.",
	}, []string{"result"})
)
