package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "legacy_sessions_started_total",
		Help: "Total number of wizard sessions started.",
	})

	projectsConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "legacy_projects_confirmed_total",
		Help: "Total number of confirmed legacy projects.",
	})

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legacy_exports_total",
			Help: "Total number of generated exports by format.",
		},
		[]string{"format"},
	)
)
