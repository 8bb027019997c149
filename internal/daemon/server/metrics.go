package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/overlearn/overlearn/internal/notification"
)

// Command results recorded in metrics and telemetry.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the daemon's Prometheus counters on a private registry.
type Metrics struct {
	registry      *prometheus.Registry
	commands      *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overlearn_commands_total",
				Help: "Total number of commands handled by command and result",
			},
			[]string{"command", "result"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overlearn_notifications_total",
				Help: "Total number of notification requests by kind and outcome",
			},
			[]string{"kind", "result"},
		),
	}
	m.registry.MustRegister(m.commands, m.notifications)
	return m
}

// ObserveCommand counts one handled command.
func (m *Metrics) ObserveCommand(command, result string) {
	m.commands.WithLabelValues(command, result).Inc()
}

// ObserveNotification counts one notification outcome. Its signature
// matches notification.Observer.
func (m *Metrics) ObserveNotification(req notification.Request, outcome string) {
	m.notifications.WithLabelValues(req.Kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
