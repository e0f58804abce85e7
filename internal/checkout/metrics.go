package checkout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "checkout_service",
		Subsystem: "checkout",
		Name:      "sessions_open",
		Help:      "Number of open checkout sessions.",
	})

	paymentOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "checkout",
		Name:      "payment_outcomes_total",
		Help:      "Payment outcomes applied to sessions.",
	}, []string{"outcome"})

	confirmationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "checkout",
		Name:      "confirmations_total",
		Help:      "Order confirmation submissions by result.",
	}, []string{"result"})

	confirmationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "checkout_service",
		Subsystem: "checkout",
		Name:      "confirmation_duration_seconds",
		Help:      "Histogram of order confirmation request durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	signalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "checkout",
		Name:      "signals_total",
		Help:      "Mailbox order signals by result.",
	}, []string{"result"})

	sharesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Subsystem: "checkout",
		Name:      "shares_total",
		Help:      "Share requests by platform and result.",
	}, []string{"platform", "result"})
)
