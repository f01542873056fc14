package channel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "channel_events_received_total",
		Help: "Push events read from the live update channel, by event name.",
	}, []string{"event"})

	eventsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "channel_events_applied_total",
		Help: "Push events that resulted in an order store mutation.",
	}, []string{"event"})
)
