package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the notification pipeline collectors.
type Metrics struct {
	Events   *prometheus.CounterVec
	Emails   *prometheus.CounterVec
	Dropped  prometheus.Counter
	InFlight prometheus.Gauge
}

// NewMetrics registers the collectors on reg. A nil reg creates unregistered
// collectors, which tests use.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "studio_notifications_events_total",
			Help: "Change events accepted for notification",
		}, []string{"kind", "operation"}),
		Emails: f.NewCounterVec(prometheus.CounterOpts{
			Name: "studio_notifications_emails_total",
			Help: "Notification emails by delivery outcome",
		}, []string{"status"}),
		Dropped: f.NewCounter(prometheus.CounterOpts{
			Name: "studio_notifications_dropped_total",
			Help: "Notification tasks dropped because the pool was full or closed",
		}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "studio_notifications_in_flight",
			Help: "Notification tasks currently running",
		}),
	}
}
