package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_registrations_total", Help: "Total successful user registrations"},
	)
	HackathonJoins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_hackathon_joins_total", Help: "Total successful hackathon joins"},
	)
	StoreErrors = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackhub_store_errors_total", Help: "Total store or identity provider failures returned as 500s"},
	)
)

func Register() {
	prometheus.MustRegister(Registrations, HackathonJoins, StoreErrors)
}
