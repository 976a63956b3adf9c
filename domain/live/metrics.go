package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_live_sessions_active",
		Help: "Open live page sessions",
	})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_live_events_total",
		Help: "Live events handled, by type",
	}, []string{"type"})
)
