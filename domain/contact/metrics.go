package contact

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_contact_submissions_total",
		Help: "Contact form submissions by outcome",
	}, []string{"result"})

	submitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "website_contact_submit_duration_seconds",
		Help:    "Time spent delivering a contact submission",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})
)

const (
	resultDelivered   = "delivered"
	resultInvalid     = "invalid"
	resultRateLimited = "rate_limited"
	resultRejected    = "rejected"
	resultCanceled    = "canceled"
	resultError       = "error"
)
