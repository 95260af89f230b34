package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "tick_seconds",
			Help:      "Time spent advancing the game one tick.",
		},
	)
	events = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "events_total",
			Help:      "Tick outcomes by kind.",
		},
		[]string{"event"},
	)
	restarts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "restarts_total",
			Help:      "Games restarted by the player.",
		},
	)
	snakeLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "snake_length",
			Help:      "Current number of snake segments.",
		},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(tickDuration, events, restarts, snakeLength)
}
