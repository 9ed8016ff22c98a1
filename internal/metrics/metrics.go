package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TableSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_table_saves_total",
		Help: "Full-replace saves per table.",
	}, []string{"table"})

	MirrorPushFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_mirror_push_failures_total",
		Help: "Best-effort mirror pushes that failed.",
	})

	SyncPulls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_sync_pulls_total",
		Help: "Mirror pulls by outcome.",
	}, []string{"outcome"})
)
