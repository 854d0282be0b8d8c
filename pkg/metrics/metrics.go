package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AuthRegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total number of registration attempts.",
		},
		[]string{"result"},
	)

	AuthLoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"result"},
	)

	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Total number of stored uploads by kind and backend.",
		},
		[]string{"kind", "backend", "result"},
	)

	WarrantyLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warranty_lookups_total",
			Help: "Total number of warranty lookups by outcome (active, expired, not_found).",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// MustRegister registra los colectores en el registry por defecto con la etiqueta service.
// Llamadas repetidas no tienen efecto.
func MustRegister(serviceName string) {
	registerOnce.Do(func() {
		reg := prometheus.WrapRegistererWith(prometheus.Labels{"service": serviceName}, prometheus.DefaultRegisterer)
		reg.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			AuthRegistrationsTotal,
			AuthLoginsTotal,
			UploadsTotal,
			WarrantyLookupsTotal,
		)
	})
}

// Result traduce un error en la etiqueta result.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
